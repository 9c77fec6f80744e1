// internal/domain/deal/dto.go
package deal

type CreateDealRequest struct {
	Title             string  `json:"title" binding:"required,max=255"`
	Value             float64 `json:"value" binding:"min=0"`
	Stage             string  `json:"stage"`
	CustomerID        string  `json:"customer_id"`
	ExpectedCloseDate string  `json:"expected_close_date"`
}

type UpdateDealRequest struct {
	Title             *string  `json:"title" binding:"omitempty,max=255"`
	Value             *float64 `json:"value" binding:"omitempty,min=0"`
	Stage             *string  `json:"stage"`
	CustomerID        *string  `json:"customer_id"`
	ExpectedCloseDate *string  `json:"expected_close_date"`
}

type PatchStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}
