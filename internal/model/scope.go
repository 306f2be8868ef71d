package model

const (
	AnonymousUserID = "anonymous"
	RoleGuest       = "guest"
)

// Scope identifies the caller of a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
