// internal/domain/org/entity.go
package org

// Organization as the upstream CRM reports it.
type Organization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Membership is one user's relationship to one organization. Role is scoped
// per membership: the same user can be ADMIN in one org and USER in another.
type Membership struct {
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	Role             string `json:"role"`
	Active           bool   `json:"active"`
}

// UnknownOrgName is the sentinel used when no shape variant carried a name.
const UnknownOrgName = "Unknown"
