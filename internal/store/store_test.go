package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saieswarnookala/project-X/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateAndGetRoundTrip(t *testing.T) {
	s := New()

	contract := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	closing := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	created := s.CreateTransaction(models.InsertTransaction{
		PropertyID:    intPtr(7),
		AgentID:       intPtr(2),
		BuyerID:       intPtr(3),
		Status:        models.TransactionActive,
		ContractDate:  &contract,
		ClosingDate:   &closing,
		PurchasePrice: strPtr("450000.00"),
		Notes:         strPtr("cash offer"),
	})

	got := s.GetTransaction(created.ID)
	require.NotNil(t, got)
	assert.Equal(t, created, got)
	assert.Equal(t, 7, *got.PropertyID)
	assert.Equal(t, "450000.00", *got.PurchasePrice)
	assert.Equal(t, models.TransactionActive, got.Status)
	assert.Nil(t, got.SellerID)
}

func TestIDsAreMonotonicPerKind(t *testing.T) {
	s := New()

	first := s.CreateTask(models.InsertTask{Title: "order title"})
	second := s.CreateTask(models.InsertTask{Title: "inspection"})
	third := s.CreateTask(models.InsertTask{Title: "final walkthrough"})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)

	// Counters are independent between kinds.
	property := s.CreateProperty(models.InsertProperty{
		Address: "12 Oak St", City: "Springfield", State: "IL", ZipCode: "62701", PropertyType: "single_family",
	})
	assert.Equal(t, 1, property.ID)
}

func TestCreateAppliesDefaults(t *testing.T) {
	s := New()

	user := s.CreateUser(models.InsertUser{
		Username: "jdoe", Email: "jdoe@example.com", Password: "x",
		FirstName: "Jane", LastName: "Doe",
	})
	assert.Equal(t, models.RoleAgent, user.Role)
	assert.True(t, user.IsActive)

	transaction := s.CreateTransaction(models.InsertTransaction{})
	assert.Equal(t, models.TransactionPending, transaction.Status)

	task := s.CreateTask(models.InsertTask{Title: "t"})
	assert.Equal(t, models.TaskPending, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)

	document := s.CreateDocument(models.InsertDocument{
		Name: "contract.pdf", OriginalName: "contract.pdf", Type: "application/pdf", Size: intPtr(1024), URL: "https://files/1",
	})
	assert.Equal(t, models.DocumentPending, document.Status)
	assert.False(t, document.IsSigned)

	message := s.CreateMessage(models.InsertMessage{Content: "hi"})
	assert.Equal(t, models.MessageSent, message.Status)
	assert.False(t, message.IsRead)
	assert.Nil(t, message.ReadAt)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	s := New()

	created := s.CreateTransaction(models.InsertTransaction{
		AgentID: intPtr(1),
		Notes:   strPtr("initial"),
	})

	time.Sleep(time.Millisecond) // UpdatedAt must strictly increase
	status := models.TransactionActive
	updated := s.UpdateTransaction(created.ID, models.UpdateTransaction{Status: &status})
	require.NotNil(t, updated)

	assert.Equal(t, models.TransactionActive, updated.Status)
	assert.Equal(t, 1, *updated.AgentID)
	assert.Equal(t, "initial", *updated.Notes)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateUnknownIDMutatesNothing(t *testing.T) {
	s := New()

	created := s.CreateTask(models.InsertTask{Title: "only task"})

	title := "hijacked"
	assert.Nil(t, s.UpdateTask(999, models.UpdateTask{Title: &title}))

	got := s.GetTask(created.ID)
	assert.Equal(t, "only task", got.Title)
	assert.Equal(t, created.UpdatedAt, got.UpdatedAt)
	assert.Len(t, s.AllTasks(), 1)
}

func TestUpdatePropertyMergesPartialFields(t *testing.T) {
	s := New()

	created := s.CreateProperty(models.InsertProperty{
		Address: "12 Oak St", City: "Springfield", State: "IL", ZipCode: "62701",
		PropertyType: "single_family", PurchasePrice: strPtr("325000.00"),
	})

	time.Sleep(time.Millisecond)
	updated := s.UpdateProperty(created.ID, models.UpdateProperty{
		PurchasePrice: strPtr("340000.00"),
		Bedrooms:      intPtr(4),
	})
	require.NotNil(t, updated)

	assert.Equal(t, "340000.00", *updated.PurchasePrice)
	assert.Equal(t, 4, *updated.Bedrooms)
	assert.Equal(t, "12 Oak St", updated.Address)
	assert.Equal(t, "single_family", updated.PropertyType)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	assert.Nil(t, s.UpdateProperty(999, models.UpdateProperty{Bedrooms: intPtr(2)}))
}

func TestListingsPreserveInsertionOrder(t *testing.T) {
	s := New()

	for _, address := range []string{"1 First St", "2 Second St", "3 Third St"} {
		s.CreateProperty(models.InsertProperty{
			Address: address, City: "Austin", State: "TX", ZipCode: "78701", PropertyType: "condo",
		})
	}

	properties := s.AllProperties()
	require.Len(t, properties, 3)
	assert.Equal(t, "1 First St", properties[0].Address)
	assert.Equal(t, "2 Second St", properties[1].Address)
	assert.Equal(t, "3 Third St", properties[2].Address)
}

func TestUserLookups(t *testing.T) {
	s := New()

	s.CreateUser(models.InsertUser{
		Username: "agent.one", Email: "one@example.com", Password: "x",
		FirstName: "One", LastName: "Agent",
	})
	admin := models.RoleAdmin
	s.CreateUser(models.InsertUser{
		Username: "boss", Email: "boss@example.com", Password: "x",
		FirstName: "Big", LastName: "Boss", Role: admin,
	})

	byName := s.GetUserByUsername("agent.one")
	require.NotNil(t, byName)
	assert.Equal(t, "one@example.com", byName.Email)

	assert.Nil(t, s.GetUserByUsername("nobody"))
	assert.Nil(t, s.GetUserByEmail("nobody@example.com"))

	admins := s.UsersByRole(models.RoleAdmin)
	require.Len(t, admins, 1)
	assert.Equal(t, "boss", admins[0].Username)
}

func TestTransactionsByUserMatchesAnyPartyRole(t *testing.T) {
	s := New()

	s.CreateTransaction(models.InsertTransaction{AgentID: intPtr(5)})
	s.CreateTransaction(models.InsertTransaction{LenderID: intPtr(5)})
	s.CreateTransaction(models.InsertTransaction{BuyerID: intPtr(9)})

	assert.Len(t, s.TransactionsByUser(5), 2)
	assert.Len(t, s.TransactionsByUser(9), 1)
	assert.Empty(t, s.TransactionsByUser(42))
}

func TestKindFilters(t *testing.T) {
	s := New()

	s.CreateTask(models.InsertTask{Title: "a", TransactionID: intPtr(1), AssignedToID: intPtr(2)})
	s.CreateTask(models.InsertTask{Title: "b", TransactionID: intPtr(1)})
	s.CreateTask(models.InsertTask{Title: "c", Status: models.TaskCompleted})

	assert.Len(t, s.TasksByTransaction(1), 2)
	assert.Len(t, s.TasksByAssignee(2), 1)
	assert.Len(t, s.TasksByStatus(models.TaskCompleted), 1)
	assert.Len(t, s.TasksByStatus(models.TaskPending), 2)

	s.CreateDocument(models.InsertDocument{
		Name: "d", OriginalName: "d", Type: "pdf", Size: intPtr(1), URL: "u",
		TransactionID: intPtr(3), UploadedByID: intPtr(4),
	})
	assert.Len(t, s.DocumentsByTransaction(3), 1)
	assert.Len(t, s.DocumentsByUploader(4), 1)
	assert.Empty(t, s.DocumentsByUploader(5))

	s.CreateMessage(models.InsertMessage{Content: "m1", TransactionID: intPtr(3), SenderID: intPtr(4)})
	s.CreateMessage(models.InsertMessage{Content: "m2", SenderID: intPtr(4)})
	assert.Len(t, s.MessagesByTransaction(3), 1)
	assert.Len(t, s.MessagesBySender(4), 2)
}

func TestReturnedEntitiesAreDetached(t *testing.T) {
	s := New()

	created := s.CreateTask(models.InsertTask{Title: "immutable"})
	created.Title = "mutated by caller"

	assert.Equal(t, "immutable", s.GetTask(created.ID).Title)
}
