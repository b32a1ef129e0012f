package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	AccountActive   = "active"
	AccountInactive = "inactive"
	AccountPending  = "pending"
)

// IsValidRole reports whether role is one of the assignable roles.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// IsValidAccountStatus reports whether status is a known account status.
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountActive, AccountInactive, AccountPending:
		return true
	}
	return false
}

// User models an authenticatable identity.
type User struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	Role                string     `json:"role"`
	AccountStatus       string     `json:"status"`
	LastAuthenticatedAt *time.Time `json:"last_login,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool {
	return u.AccountStatus == AccountActive
}
