package domain

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// AuthPayload holds the claims read from a verified bearer token
type AuthPayload struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

func (p AuthPayload) IsAdmin() bool {
	return p.Role == RoleAdmin
}
