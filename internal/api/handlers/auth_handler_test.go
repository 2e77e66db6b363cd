package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saieswarnookala/project-X/internal/models"
)

func registerBody() map[string]any {
	return map[string]any{
		"username":  "sarah.johnson",
		"email":     "sarah@example.com",
		"password":  "password123",
		"firstName": "Sarah",
		"lastName":  "Johnson",
	}
}

func TestRegister(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User map[string]any `json:"user"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, float64(1), resp.User["id"])
	assert.Equal(t, "agent", resp.User["role"])
	assert.Equal(t, true, resp.User["isActive"])

	// The password hash must never leave the server.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterValidation(t *testing.T) {
	r, _, _ := newTestRouter(t)

	body := registerBody()
	delete(body, "email")
	w := doRequest(t, r, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request data")

	body = registerBody()
	body["role"] = "landlord"
	w = doRequest(t, r, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicates(t *testing.T) {
	r, _, _ := newTestRouter(t)

	require.Equal(t, http.StatusOK, doRequest(t, r, http.MethodPost, "/api/auth/register", registerBody()).Code)

	body := registerBody()
	body["email"] = "other@example.com"
	w := doRequest(t, r, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists")

	body = registerBody()
	body["username"] = "other"
	w = doRequest(t, r, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already exists")
}

func TestLogin(t *testing.T) {
	r, _, _ := newTestRouter(t)
	require.Equal(t, http.StatusOK, doRequest(t, r, http.MethodPost, "/api/auth/register", registerBody()).Code)

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "sarah.johnson", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User map[string]any `json:"user"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "sarah.johnson", resp.User["username"])
	assert.NotContains(t, w.Body.String(), "password123")
}

func TestLoginFailures(t *testing.T) {
	r, st, _ := newTestRouter(t)
	require.Equal(t, http.StatusOK, doRequest(t, r, http.MethodPost, "/api/auth/register", registerBody()).Code)

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "sarah.johnson", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = doRequest(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "nobody", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = doRequest(t, r, http.MethodPost, "/api/auth/login", map[string]any{"username": "sarah.johnson"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	inactive := false
	require.NotNil(t, st.UpdateUser(1, models.UpdateUser{IsActive: &inactive}))
	w = doRequest(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "sarah.johnson", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Account is inactive")
}
