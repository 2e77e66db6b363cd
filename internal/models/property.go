package models

import "time"

// Property represents a piece of real estate attached to transactions.
// Money fields are decimal strings to avoid float rounding on round-trips.
type Property struct {
	ID            int       `json:"id"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zipCode"`
	PropertyType  string    `json:"propertyType"`
	PurchasePrice *string   `json:"purchasePrice"`
	SquareFootage *int      `json:"squareFootage"`
	Bedrooms      *int      `json:"bedrooms"`
	Bathrooms     *int      `json:"bathrooms"`
	YearBuilt     *int      `json:"yearBuilt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// InsertProperty is the accepted shape for creating a property.
type InsertProperty struct {
	Address       string  `json:"address" binding:"required"`
	City          string  `json:"city" binding:"required"`
	State         string  `json:"state" binding:"required"`
	ZipCode       string  `json:"zipCode" binding:"required"`
	PropertyType  string  `json:"propertyType" binding:"required"`
	PurchasePrice *string `json:"purchasePrice"`
	SquareFootage *int    `json:"squareFootage"`
	Bedrooms      *int    `json:"bedrooms"`
	Bathrooms     *int    `json:"bathrooms"`
	YearBuilt     *int    `json:"yearBuilt"`
}

// UpdateProperty carries a partial update; nil fields are left untouched.
type UpdateProperty struct {
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ZipCode       *string `json:"zipCode"`
	PropertyType  *string `json:"propertyType"`
	PurchasePrice *string `json:"purchasePrice"`
	SquareFootage *int    `json:"squareFootage"`
	Bedrooms      *int    `json:"bedrooms"`
	Bathrooms     *int    `json:"bathrooms"`
	YearBuilt     *int    `json:"yearBuilt"`
}
