package services

import (
	"math"
	"time"

	"github.com/saieswarnookala/project-X/internal/models"
	"github.com/saieswarnookala/project-X/internal/store"
)

// IDashboardService computes the dashboard aggregate.
type IDashboardService interface {
	Stats() models.DashboardStats
}

// dashboardService recomputes stats from the store on every call; at this
// scale a full scan is cheaper than keeping a cache coherent.
type dashboardService struct {
	store *store.MemStore
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(st *store.MemStore) IDashboardService {
	return &dashboardService{store: st}
}

// Stats returns the dashboard counters.
//
// Monthly closings match on calendar month number only, ignoring the year.
// Average close time is the mean of (closing − contract) over completed
// transactions carrying both dates, in whole days rounded to nearest; zero
// when no such transaction exists.
func (s *dashboardService) Stats() models.DashboardStats {
	transactions := s.store.AllTransactions()
	documents := s.store.AllDocuments()

	stats := models.DashboardStats{}
	currentMonth := time.Now().Month()

	var closeTimeTotal time.Duration
	var closedCount int

	for _, t := range transactions {
		if t.Status == models.TransactionActive {
			stats.ActiveTransactions++
		}
		if t.Status != models.TransactionCompleted {
			continue
		}
		if t.ClosingDate != nil && t.ClosingDate.Month() == currentMonth {
			stats.MonthlyClosings++
		}
		if t.ContractDate != nil && t.ClosingDate != nil {
			closeTimeTotal += t.ClosingDate.Sub(*t.ContractDate)
			closedCount++
		}
	}

	if closedCount > 0 {
		days := closeTimeTotal.Hours() / 24 / float64(closedCount)
		stats.AverageCloseTime = int(math.Round(days))
	}

	for _, d := range documents {
		if d.Status == models.DocumentPending {
			stats.PendingDocuments++
		}
	}

	return stats
}
