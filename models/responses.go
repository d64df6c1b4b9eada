package models

// SessionUser is the public projection of an authenticated user, returned
// by login and token validation for client-side display state. It never
// carries the email or any credential material.
type SessionUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// ValidateResponse is the body of a successful token validation.
type ValidateResponse struct {
	IsValid bool        `json:"isValid"`
	User    SessionUser `json:"user"`
}

// MessageResponse is the uniform JSON error/notice body. Every user-visible
// failure is a MessageResponse; stack traces and internal identifiers never
// reach the caller.
type MessageResponse struct {
	Message string `json:"message"`
}

// VacationCreatedResponse acknowledges an admin create with the new row id.
type VacationCreatedResponse struct {
	Message    string `json:"message"`
	VacationID int64  `json:"vacation_id"`
}

// FollowResponse acknowledges an idempotent follow.
type FollowResponse struct {
	Followed   bool  `json:"followed"`
	VacationID int64 `json:"vacationId"`
}

// UnfollowResponse acknowledges an idempotent unfollow.
type UnfollowResponse struct {
	Unfollowed bool  `json:"unfollowed"`
	VacationID int64 `json:"vacationId"`
}
