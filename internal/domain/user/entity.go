// internal/domain/user/entity.go
package user

// Profile is the current user's editable profile plus the read-only stats
// the backend derives for the settings/profile pages.
type Profile struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	JobTitle  string `json:"job_title,omitempty"`
	Location  string `json:"location,omitempty"`
	TimeZone  string `json:"time_zone,omitempty"`
	Language  string `json:"language,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`

	LastLogin      string `json:"last_login,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	DealsHandled   int    `json:"deals_handled,omitempty"`
	TasksCompleted int    `json:"tasks_completed,omitempty"`
}
