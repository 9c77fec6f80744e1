// internal/domain/customer/entity.go
package customer

// Customer mirrors the upstream CRM record. The gateway never owns these;
// it passes them through scoped to the active organization.
type Customer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Owner  string `json:"owner,omitempty"`
	Status string `json:"status,omitempty"`
}
