package services

import (
	"errors"

	"github.com/saieswarnookala/project-X/internal/auth"
	"github.com/saieswarnookala/project-X/internal/models"
	"github.com/saieswarnookala/project-X/internal/store"
)

// ErrUsernameExists is returned when registering with a taken username.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned when registering with a taken email.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidCredentials is returned for an unknown username or wrong password.
// The two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInactiveAccount is returned when credentials are valid but the account
// has been deactivated.
var ErrInactiveAccount = errors.New("account is inactive")

// IAuthService defines registration and login.
// This allows for easier mocking in tests.
type IAuthService interface {
	Register(ins models.InsertUser) (*models.User, error)
	Login(username, password string) (*models.User, error)
}

// authService implements IAuthService on top of the entity store. The store
// itself does not enforce username/email uniqueness; this layer does.
type authService struct {
	store      *store.MemStore
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(st *store.MemStore, bcryptCost int) IAuthService {
	return &authService{store: st, bcryptCost: bcryptCost}
}

// Register creates a user after checking username and email uniqueness.
// The plaintext password is replaced with its bcrypt hash before storage.
func (s *authService) Register(ins models.InsertUser) (*models.User, error) {
	if s.store.GetUserByUsername(ins.Username) != nil {
		return nil, ErrUsernameExists
	}
	if s.store.GetUserByEmail(ins.Email) != nil {
		return nil, ErrEmailExists
	}

	hash, err := auth.HashPassword(ins.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	ins.Password = hash

	return s.store.CreateUser(ins), nil
}

// Login verifies the password against the stored hash and rejects inactive
// accounts. Returns the user on success; the caller must not serialize the
// password field (the model never does).
func (s *authService) Login(username, password string) (*models.User, error) {
	user := s.store.GetUserByUsername(username)
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveAccount
	}
	return user, nil
}
