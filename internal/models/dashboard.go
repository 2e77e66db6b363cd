package models

// DashboardStats is the aggregate returned by GET /api/dashboard/stats,
// recomputed from the store on every request.
type DashboardStats struct {
	ActiveTransactions int `json:"activeTransactions"`
	PendingDocuments   int `json:"pendingDocuments"`
	MonthlyClosings    int `json:"monthlyClosings"`
	AverageCloseTime   int `json:"averageCloseTime"` // whole days, 0 when no completed deals
}
