package models

import "time"

// Follow is one row of the follow ledger: a unique (user, vacation) pair.
// Repeated follows of the same pair are silent no-ops, as are unfollows of
// a pair that does not exist.
type Follow struct {
	UserID     int64 `json:"user_id"`
	VacationID int64 `json:"vacation_id"`

	// CreatedAt buckets analytics by month.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Follow model.
func (f Follow) TableName() string {
	return "followers"
}
