package models

import (
	"database/sql"
	"time"
)

// Roles assignable to a user account. RoleUser is the default at
// registration; RoleAdmin unlocks the vacation CRUD and analytics surface.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account entity used for authentication and
// authorization. It contains identity attributes and credential-related
// data. Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// FirstName and LastName are display attributes and may be shown in UI.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is the unique login identifier, stored case-sensitive.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It MUST never contain plaintext and is excluded from JSON.
	PasswordHash string `json:"-"`

	// Role is either RoleUser or RoleAdmin.
	Role string `json:"role"`

	// Token mirrors the most recently issued session credential.
	// Token and TokenExpire are set together or both NULL — never one
	// without the other.
	Token sql.NullString `json:"-"`

	// TokenExpire is the sliding server-side expiry of the mirrored
	// session. Refreshed in place on every successful validation.
	TokenExpire sql.NullTime `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// HasActiveSession reports whether the user row currently carries a session
// mirror. It does not check whether the stored expiry has passed.
func (u User) HasActiveSession() bool {
	return u.Token.Valid && u.TokenExpire.Valid
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
