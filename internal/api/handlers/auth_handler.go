package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saieswarnookala/project-X/internal/models"
	"github.com/saieswarnookala/project-X/internal/services"
)

// AuthHandler handles login and registration. No session token is issued;
// the client holds the returned user identity itself.
type AuthHandler struct {
	authService services.IAuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService services.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInactiveAccount):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Account is inactive"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var ins models.InsertUser
	if err := c.ShouldBindJSON(&ins); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	user, err := h.authService.Register(ins)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		case errors.Is(err, services.ErrEmailExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
