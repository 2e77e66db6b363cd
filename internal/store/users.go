package store

import "github.com/saieswarnookala/project-X/internal/models"

// GetUser returns the user with the given id, or nil if absent.
func (s *MemStore) GetUser(id int) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.users[id])
}

// GetUserByUsername returns the first user with an exactly matching username,
// or nil. Uniqueness is enforced at registration, not here.
func (s *MemStore) GetUserByUsername(username string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if s.users[id].Username == username {
			return copyUser(s.users[id])
		}
	}
	return nil
}

// GetUserByEmail returns the first user with an exactly matching email, or nil.
func (s *MemStore) GetUserByEmail(email string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if s.users[id].Email == email {
			return copyUser(s.users[id])
		}
	}
	return nil
}

// CreateUser assigns an id, applies defaults (role agent, isActive true) and
// stores the user. The password is stored as given; hashing is the caller's job.
func (s *MemStore) CreateUser(ins models.InsertUser) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	user := &models.User{
		ID:        s.nextUser,
		Username:  ins.Username,
		Email:     ins.Email,
		Password:  ins.Password,
		FirstName: ins.FirstName,
		LastName:  ins.LastName,
		Role:      ins.Role,
		Phone:     ins.Phone,
		Company:   ins.Company,
		IsActive:  true,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if user.Role == "" {
		user.Role = models.RoleAgent
	}
	if ins.IsActive != nil {
		user.IsActive = *ins.IsActive
	}
	s.nextUser++
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return copyUser(user)
}

// UpdateUser merges the supplied fields into the user and refreshes UpdatedAt.
// Returns nil if the id is unknown.
func (s *MemStore) UpdateUser(id int, upd models.UpdateUser) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil
	}
	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Password != nil {
		user.Password = *upd.Password
	}
	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.Phone != nil {
		user.Phone = upd.Phone
	}
	if upd.Company != nil {
		user.Company = upd.Company
	}
	if upd.IsActive != nil {
		user.IsActive = *upd.IsActive
	}
	user.UpdatedAt = now()
	return copyUser(user)
}

// AllUsers returns every user in insertion order.
func (s *MemStore) AllUsers() []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, copyUser(s.users[id]))
	}
	return users
}

// UsersByRole returns every user holding the given role, in insertion order.
func (s *MemStore) UsersByRole(role models.UserRole) []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := []*models.User{}
	for _, id := range s.userOrder {
		if s.users[id].Role == role {
			users = append(users, copyUser(s.users[id]))
		}
	}
	return users
}

// copyUser returns a detached copy so callers never alias store-owned state.
func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}
