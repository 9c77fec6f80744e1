// internal/domain/org/dto.go
package org

type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
}

type AddMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

type MembershipListResponse struct {
	Memberships []Membership `json:"memberships"`
	ActiveOrgID string       `json:"active_org_id,omitempty"`
}
