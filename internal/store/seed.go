package store

import (
	"fmt"

	"github.com/saieswarnookala/project-X/internal/auth"
	"github.com/saieswarnookala/project-X/internal/models"
)

// SeedDemoData creates the two bootstrap accounts the dashboard expects: an
// admin and a sample agent. Passwords are hashed before storage.
func (s *MemStore) SeedDemoData(bcryptCost int) error {
	adminHash, err := auth.HashPassword("admin123", bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	agentHash, err := auth.HashPassword("password123", bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to seed agent user: %w", err)
	}

	adminPhone := "555-0100"
	adminCompany := "Project-X"
	s.CreateUser(models.InsertUser{
		Username:  "admin",
		Email:     "admin@project-x.com",
		Password:  adminHash,
		FirstName: "Admin",
		LastName:  "User",
		Role:      models.RoleAdmin,
		Phone:     &adminPhone,
		Company:   &adminCompany,
	})

	agentPhone := "555-0101"
	agentCompany := "Premier Realty"
	s.CreateUser(models.InsertUser{
		Username:  "sarah.johnson",
		Email:     "sarah@project-x.com",
		Password:  agentHash,
		FirstName: "Sarah",
		LastName:  "Johnson",
		Role:      models.RoleAgent,
		Phone:     &agentPhone,
		Company:   &agentCompany,
	})

	return nil
}
