package models

import "time"

// Vacation is a bookable trip managed through the admin CRUD surface.
// The session/follow core only reads it for existence checks and
// follow-count joins.
type Vacation struct {
	VacationID  int64  `json:"vacation_id"`
	Destination string `json:"destination"`
	Description string `json:"description"`

	// StartDate and EndDate bound the trip. start ≤ end is not enforced
	// here; the data is treated as externally owned.
	StartDate Date `json:"start_date"`
	EndDate   Date `json:"end_date"`

	Price float64 `json:"price"`

	// Image is an opaque reference to the vacation's picture, served by the
	// static file layer.
	Image string `json:"image"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Vacation model.
func (v Vacation) TableName() string {
	return "vacations"
}

// VacationWithFollow is a Vacation annotated with the requesting user's
// follow state, produced by a per-row correlated existence check so the
// listing stays at one row per vacation regardless of follower count.
type VacationWithFollow struct {
	Vacation

	IsFollowed bool `json:"isFollowed"`
}

// HasRequiredFields reports whether every field the create/update surface
// requires is present.
func (v Vacation) HasRequiredFields() bool {
	return v.Destination != "" &&
		v.Description != "" &&
		!v.StartDate.IsZero() &&
		!v.EndDate.IsZero() &&
		v.Price != 0 &&
		v.Image != ""
}
