// internal/domain/deal/entity.go
package deal

// Pipeline stages in board order.
var Stages = []string{"Lead", "Contacted", "Proposal", "Negotiation", "Won", "Lost"}

// ValidStage reports whether stage is one of the pipeline stages.
func ValidStage(stage string) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

type Deal struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Value             float64 `json:"value"`
	Stage             string  `json:"stage"`
	CustomerID        string  `json:"customer_id,omitempty"`
	CustomerName      string  `json:"customer_name,omitempty"`
	ExpectedCloseDate string  `json:"expected_close_date,omitempty"`
	OwnerID           string  `json:"owner_id,omitempty"`
	OwnerName         string  `json:"owner_name,omitempty"`
}
