// internal/domain/task/entity.go
package task

// Task statuses as the upstream CRM reports them.
const (
	StatusTodo       = "TODO"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

type Task struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	Status           string `json:"status"`
	DueDate          string `json:"due_date,omitempty"`
	AssignedToUserID string `json:"assigned_to_user_id,omitempty"`
	DealID           string `json:"deal_id,omitempty"`
	CustomerID       string `json:"customer_id,omitempty"`
	OrganizationID   string `json:"organization_id,omitempty"`
}
