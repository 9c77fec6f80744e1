// internal/domain/auth/entity.go
package auth

// User is the identity slice the upstream CRM returns on login/register.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
}

// AuthResponse is the upstream login/register payload: an opaque bearer
// token plus the user it belongs to.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
