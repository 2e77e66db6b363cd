package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/saieswarnookala/project-X/internal/api/handlers"
	"github.com/saieswarnookala/project-X/internal/hub"
	"github.com/saieswarnookala/project-X/internal/services"
	"github.com/saieswarnookala/project-X/internal/store"
)

func intPtr(i int) *int { return &i }

// recordingBroadcaster captures broadcast calls so tests can assert on the
// events a handler emits without a live websocket hub.
type recordingBroadcaster struct {
	events   []hub.Event
	excludes []int
}

func (b *recordingBroadcaster) Broadcast(event hub.Event, excludeUserID int) {
	b.events = append(b.events, event)
	b.excludes = append(b.excludes, excludeUserID)
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.MemStore, *recordingBroadcaster) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	b := &recordingBroadcaster{}

	authHandler := handlers.NewAuthHandler(services.NewAuthService(st, bcrypt.MinCost))
	userHandler := handlers.NewUserHandler(st)
	propertyHandler := handlers.NewPropertyHandler(st)
	transactionHandler := handlers.NewTransactionHandler(st, b)
	taskHandler := handlers.NewTaskHandler(st, b)
	documentHandler := handlers.NewDocumentHandler(st, b)
	messageHandler := handlers.NewMessageHandler(st, b)
	dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(st))

	r := gin.New()
	api := r.Group("/api")

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)

	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.GetByID)
	api.GET("/users/role/:role", userHandler.ByRole)

	api.GET("/properties", propertyHandler.List)
	api.POST("/properties", propertyHandler.Create)
	api.GET("/properties/:id", propertyHandler.GetByID)

	api.GET("/transactions", transactionHandler.List)
	api.POST("/transactions", transactionHandler.Create)
	api.GET("/transactions/:id", transactionHandler.GetByID)
	api.PATCH("/transactions/:id", transactionHandler.Update)
	api.GET("/transactions/user/:userId", transactionHandler.ByUser)
	api.GET("/transactions/status/:status", transactionHandler.ByStatus)

	api.GET("/tasks", taskHandler.List)
	api.POST("/tasks", taskHandler.Create)
	api.GET("/tasks/:id", taskHandler.GetByID)
	api.PATCH("/tasks/:id", taskHandler.Update)
	api.GET("/tasks/transaction/:transactionId", taskHandler.ByTransaction)
	api.GET("/tasks/user/:userId", taskHandler.ByUser)
	api.GET("/tasks/status/:status", taskHandler.ByStatus)

	api.GET("/documents", documentHandler.List)
	api.POST("/documents", documentHandler.Create)
	api.GET("/documents/:id", documentHandler.GetByID)
	api.PATCH("/documents/:id", documentHandler.Update)
	api.GET("/documents/transaction/:transactionId", documentHandler.ByTransaction)
	api.GET("/documents/user/:userId", documentHandler.ByUser)

	api.GET("/messages", messageHandler.List)
	api.POST("/messages", messageHandler.Create)
	api.GET("/messages/:id", messageHandler.GetByID)
	api.GET("/messages/transaction/:transactionId", messageHandler.ByTransaction)
	api.GET("/messages/user/:userId", messageHandler.ByUser)
	api.POST("/messages/:id/read", messageHandler.MarkRead)
	api.GET("/messages/:id/recipients", messageHandler.Recipients)

	api.GET("/dashboard/stats", dashboardHandler.Stats)

	return r, st, b
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
