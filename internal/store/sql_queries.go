package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/sunway-travel/vacation-booking/models"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, email, password, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, first_name, last_name, email, password, role, token, token_expire, created_at;`

	findUserByEmail = `SELECT user_id, first_name, last_name, email, password, role, token, token_expire, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, first_name, last_name, email, password, role, token, token_expire, created_at
    FROM users
    WHERE user_id = $1;`

	setSessionToken = `UPDATE users
    SET token = $1, token_expire = $2
    WHERE email = $3;`

	clearSessionByEmail = `UPDATE users
    SET token = NULL, token_expire = NULL
    WHERE email = $1;`

	clearSessionByToken = `UPDATE users
    SET token = NULL, token_expire = NULL
    WHERE token = $1;`

	sweepExpiredSessions = `UPDATE users
    SET token = NULL, token_expire = NULL
    WHERE token_expire IS NOT NULL AND token_expire < $1;`

	createVacation = `INSERT INTO vacations (destination, description, start_date, end_date, price, image)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING vacation_id, destination, description, start_date, end_date, price, image, created_at;`

	deleteVacation = `DELETE FROM vacations WHERE vacation_id = $1;`

	vacationExists = `SELECT EXISTS (SELECT 1 FROM vacations WHERE vacation_id = $1);`

	// The follow state is a correlated EXISTS so the listing stays at one
	// row per vacation regardless of follower count.
	listVacationsForUser = `SELECT
        v.vacation_id, v.destination, v.description, v.start_date, v.end_date, v.price, v.image, v.created_at,
        EXISTS (
            SELECT 1 FROM followers f
            WHERE f.vacation_id = v.vacation_id AND f.user_id = $1
        ) AS is_followed
    FROM vacations v
    ORDER BY v.start_date ASC;`

	// ON CONFLICT DO NOTHING makes a repeated follow a silent no-op.
	insertFollow = `INSERT INTO followers (user_id, vacation_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id, vacation_id) DO NOTHING;`

	deleteFollow = `DELETE FROM followers
    WHERE user_id = $1 AND vacation_id = $2;`

	destinationStats = `SELECT v.destination, COUNT(f.user_id) AS follower_count
    FROM vacations v
    LEFT JOIN followers f ON v.vacation_id = f.vacation_id
    GROUP BY v.destination
    ORDER BY follower_count DESC;`

	followerCountForVacation = `SELECT COUNT(*) FROM followers WHERE vacation_id = $1;`

	bookingCountForVacation = `SELECT COUNT(*) FROM bookings WHERE vacation_id = $1;`

	averageRatingForVacation = `SELECT COALESCE(AVG(rating), 0) FROM ratings WHERE vacation_id = $1;`

	monthlyFollowersForVacation = `SELECT to_char(created_at, 'YYYY-MM') AS month, COUNT(*) AS count
    FROM followers
    WHERE vacation_id = $1
    GROUP BY to_char(created_at, 'YYYY-MM')
    ORDER BY month ASC;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($N) placeholders. Used for the queries whose shape is assembled at run
// time rather than kept as a constant.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateVacationQuery assembles the admin UPDATE for a vacation row.
func buildUpdateVacationQuery(vacation models.Vacation) (string, []any, error) {
	return psql.Update("vacations").
		Set("destination", vacation.Destination).
		Set("description", vacation.Description).
		Set("start_date", vacation.StartDate).
		Set("end_date", vacation.EndDate).
		Set("price", vacation.Price).
		Set("image", vacation.Image).
		Where(sq.Eq{"vacation_id": vacation.VacationID}).
		ToSql()
}

// buildMostFollowedQuery returns the top-n destinations by follower count
// for the dashboard.
func buildMostFollowedQuery(limit uint64) (string, []any, error) {
	return psql.Select("v.destination", "COUNT(f.user_id) AS follower_count").
		From("vacations v").
		LeftJoin("followers f ON v.vacation_id = f.vacation_id").
		GroupBy("v.destination").
		OrderBy("follower_count DESC").
		Limit(limit).
		ToSql()
}

// buildRecentVacationsQuery returns the n most recently starting vacations
// for the dashboard.
func buildRecentVacationsQuery(limit uint64) (string, []any, error) {
	return psql.Select("destination", "start_date").
		From("vacations").
		OrderBy("start_date DESC").
		Limit(limit).
		ToSql()
}

// buildPriceStatsQuery returns the min/max/avg price aggregate. COALESCE
// keeps the dashboard shape stable when no vacations exist yet.
func buildPriceStatsQuery() (string, []any, error) {
	return psql.Select(
		"COALESCE(MIN(price), 0) AS min",
		"COALESCE(MAX(price), 0) AS max",
		"COALESCE(AVG(price), 0) AS avg",
	).From("vacations").ToSql()
}

// buildTotalVacationsQuery counts all vacations for the dashboard.
func buildTotalVacationsQuery() (string, []any, error) {
	return psql.Select("COUNT(*)").From("vacations").ToSql()
}
