// internal/domain/dashboard/entity.go
package dashboard

// Stats is the dashboard summary. A zero value renders as the empty state.
type Stats struct {
	TotalCustomers int `json:"total_customers"`
	ActiveDeals    int `json:"active_deals"`
	DealsWon       int `json:"deals_won"`
	PendingTasks   int `json:"pending_tasks"`
}
