package store

import "github.com/saieswarnookala/project-X/internal/models"

// GetProperty returns the property with the given id, or nil if absent.
func (s *MemStore) GetProperty(id int) *models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProperty(s.properties[id])
}

// CreateProperty assigns an id and stores the property.
func (s *MemStore) CreateProperty(ins models.InsertProperty) *models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	property := &models.Property{
		ID:            s.nextProperty,
		Address:       ins.Address,
		City:          ins.City,
		State:         ins.State,
		ZipCode:       ins.ZipCode,
		PropertyType:  ins.PropertyType,
		PurchasePrice: ins.PurchasePrice,
		SquareFootage: ins.SquareFootage,
		Bedrooms:      ins.Bedrooms,
		Bathrooms:     ins.Bathrooms,
		YearBuilt:     ins.YearBuilt,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	s.nextProperty++
	s.properties[property.ID] = property
	s.propertyOrder = append(s.propertyOrder, property.ID)
	return copyProperty(property)
}

// UpdateProperty merges the supplied fields and refreshes UpdatedAt.
// Returns nil if the id is unknown.
func (s *MemStore) UpdateProperty(id int, upd models.UpdateProperty) *models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	property, ok := s.properties[id]
	if !ok {
		return nil
	}
	if upd.Address != nil {
		property.Address = *upd.Address
	}
	if upd.City != nil {
		property.City = *upd.City
	}
	if upd.State != nil {
		property.State = *upd.State
	}
	if upd.ZipCode != nil {
		property.ZipCode = *upd.ZipCode
	}
	if upd.PropertyType != nil {
		property.PropertyType = *upd.PropertyType
	}
	if upd.PurchasePrice != nil {
		property.PurchasePrice = upd.PurchasePrice
	}
	if upd.SquareFootage != nil {
		property.SquareFootage = upd.SquareFootage
	}
	if upd.Bedrooms != nil {
		property.Bedrooms = upd.Bedrooms
	}
	if upd.Bathrooms != nil {
		property.Bathrooms = upd.Bathrooms
	}
	if upd.YearBuilt != nil {
		property.YearBuilt = upd.YearBuilt
	}
	property.UpdatedAt = now()
	return copyProperty(property)
}

// AllProperties returns every property in insertion order.
func (s *MemStore) AllProperties() []*models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	properties := make([]*models.Property, 0, len(s.propertyOrder))
	for _, id := range s.propertyOrder {
		properties = append(properties, copyProperty(s.properties[id]))
	}
	return properties
}

func copyProperty(p *models.Property) *models.Property {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
