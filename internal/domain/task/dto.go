// internal/domain/task/dto.go
package task

type CreateTaskRequest struct {
	Title            string `json:"title" binding:"required,max=255"`
	Description      string `json:"description" binding:"max=2000"`
	DueDate          string `json:"due_date"`
	AssignedToUserID string `json:"assigned_to_user_id"`
	DealID           string `json:"deal_id"`
	CustomerID       string `json:"customer_id"`
}
