package models

import "time"

// UserRole defines the part a user plays in a transaction.
type UserRole string

const (
	RoleAgent        UserRole = "agent"
	RoleBuyer        UserRole = "buyer"
	RoleSeller       UserRole = "seller"
	RoleLender       UserRole = "lender"
	RoleTitleCompany UserRole = "title_company"
	RoleAdmin        UserRole = "admin"
)

// User represents an account in the system.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      UserRole  `json:"role"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InsertUser is the accepted shape for registration.
// Password arrives in plaintext and is hashed before it reaches the store.
type InsertUser struct {
	Username  string   `json:"username" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required"`
	FirstName string   `json:"firstName" binding:"required"`
	LastName  string   `json:"lastName" binding:"required"`
	Role      UserRole `json:"role" binding:"omitempty,oneof=agent buyer seller lender title_company admin"`
	Phone     *string  `json:"phone"`
	Company   *string  `json:"company"`
	IsActive  *bool    `json:"isActive"`
}

// UpdateUser carries a partial update; nil fields are left untouched.
type UpdateUser struct {
	Username  *string   `json:"username"`
	Email     *string   `json:"email" binding:"omitempty,email"`
	Password  *string   `json:"password"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Role      *UserRole `json:"role" binding:"omitempty,oneof=agent buyer seller lender title_company admin"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	IsActive  *bool     `json:"isActive"`
}

// LoginRequest is the accepted shape for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
