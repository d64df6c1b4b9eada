package models

// DestinationStat is one row of the per-destination follower report.
type DestinationStat struct {
	Destination   string `json:"destination"`
	FollowerCount int64  `json:"followerCount"`
}

// MonthlyFollowerCount is the number of follows a vacation gained in one
// calendar month ("YYYY-MM").
type MonthlyFollowerCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// VacationStats aggregates the per-vacation analytics panel.
type VacationStats struct {
	FollowerCount    int64                  `json:"followerCount"`
	TotalBookings    int64                  `json:"totalBookings"`
	AverageRating    float64                `json:"averageRating"`
	MonthlyFollowers []MonthlyFollowerCount `json:"monthlyFollowers"`
}

// PriceStats summarises the price spread across all vacations.
type PriceStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// RecentVacation is a dashboard row for a recently added trip.
type RecentVacation struct {
	Destination string `json:"destination"`
	StartDate   Date   `json:"start_date"`
}

// Dashboard is the admin analytics overview.
type Dashboard struct {
	TotalVacations  int64             `json:"totalVacations"`
	MostFollowed    []DestinationStat `json:"mostFollowed"`
	PriceStats      PriceStats        `json:"priceStats"`
	RecentVacations []RecentVacation  `json:"recentVacations"`
}
