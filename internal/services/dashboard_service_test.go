package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/saieswarnookala/project-X/internal/models"
	"github.com/saieswarnookala/project-X/internal/store"
)

func intPtr(i int) *int { return &i }

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestStatsEmptyStore(t *testing.T) {
	svc := NewDashboardService(store.New())
	assert.Equal(t, models.DashboardStats{}, svc.Stats())
}

func TestStatsCountsAndAverageCloseTime(t *testing.T) {
	st := store.New()
	svc := NewDashboardService(st)

	st.CreateTransaction(models.InsertTransaction{Status: models.TransactionActive})
	st.CreateTransaction(models.InsertTransaction{Status: models.TransactionPending})
	st.CreateTransaction(models.InsertTransaction{
		Status:       models.TransactionCompleted,
		ContractDate: datePtr(2024, time.January, 1),
		ClosingDate:  datePtr(2024, time.January, 11),
	})
	st.CreateTransaction(models.InsertTransaction{
		Status:       models.TransactionCompleted,
		ContractDate: datePtr(2024, time.March, 1),
		ClosingDate:  datePtr(2024, time.March, 21),
	})
	// Completed but missing a contract date: excluded from the average.
	st.CreateTransaction(models.InsertTransaction{
		Status:      models.TransactionCompleted,
		ClosingDate: datePtr(2024, time.April, 2),
	})

	st.CreateDocument(models.InsertDocument{Name: "a", OriginalName: "a", Type: "pdf", Size: intPtr(1), URL: "u"})
	st.CreateDocument(models.InsertDocument{Name: "b", OriginalName: "b", Type: "pdf", Size: intPtr(1), URL: "u", Status: models.DocumentSigned})

	stats := svc.Stats()
	assert.Equal(t, 1, stats.ActiveTransactions)
	assert.Equal(t, 1, stats.PendingDocuments)
	assert.Equal(t, 15, stats.AverageCloseTime) // mean of 10 and 20 days
}

func TestStatsMonthlyClosingsMatchesMonthNumberOnly(t *testing.T) {
	st := store.New()
	svc := NewDashboardService(st)

	month := time.Now().Month()

	// A completed closing from a past year still counts when the month matches.
	st.CreateTransaction(models.InsertTransaction{
		Status:      models.TransactionCompleted,
		ClosingDate: datePtr(2020, month, 15),
	})
	// Pending transactions never count, whatever the date says.
	st.CreateTransaction(models.InsertTransaction{
		Status:      models.TransactionPending,
		ClosingDate: datePtr(2020, month, 15),
	})
	otherMonth := month%12 + 1
	st.CreateTransaction(models.InsertTransaction{
		Status:      models.TransactionCompleted,
		ClosingDate: datePtr(2020, otherMonth, 15),
	})

	assert.Equal(t, 1, svc.Stats().MonthlyClosings)
}
