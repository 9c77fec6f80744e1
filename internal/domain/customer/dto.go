// internal/domain/customer/dto.go
package customer

type CreateCustomerRequest struct {
	Name   string `json:"name" binding:"required,max=255"`
	Email  string `json:"email" binding:"required,email,max=255"`
	Phone  string `json:"phone" binding:"required,max=20"`
	Owner  string `json:"owner" binding:"max=255"`
	Status string `json:"status" binding:"max=50"`
}

type UpdateCustomerRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=255"`
	Email  *string `json:"email" binding:"omitempty,email,max=255"`
	Phone  *string `json:"phone" binding:"omitempty,max=20"`
	Owner  *string `json:"owner" binding:"omitempty,max=255"`
	Status *string `json:"status" binding:"omitempty,max=50"`
}
