package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver

	"github.com/ayoisaiah/pointage/internal/models"
	"github.com/ayoisaiah/pointage/internal/timeutil"
)

const (
	sessionQuery = `
SELECT s.id, s.title, s.kind, s.promotion, s.grp, s.option,
       s.establishment, s.city, s.date, s.timezone,
       s.pointage_start, s.start_time, s.end_time, s.tolerance_minutes
FROM attendance_sessions s
WHERE s.id = $1`

	membersQuery = `
SELECT st.id, st.first_name, st.last_name, st.matricule, st.grp, st.option,
       COALESCE(a.status, '') AS initial_status
FROM session_students ss
JOIN students st ON st.id = ss.student_id
LEFT JOIN attendances a
       ON a.session_id = ss.session_id AND a.student_id = st.id
WHERE ss.session_id = $1
ORDER BY st.last_name, st.first_name`

	locationQuery = `
SELECT EXISTS (SELECT 1 FROM device_configs WHERE location_id = $1)`
)

type sessionRow struct {
	Date          time.Time `db:"date"`
	ID            string    `db:"id"`
	Title         string    `db:"title"`
	Kind          string    `db:"kind"`
	Promotion     string    `db:"promotion"`
	Group         string    `db:"grp"`
	Option        string    `db:"option"`
	Establishment string    `db:"establishment"`
	City          string    `db:"city"`
	Timezone      string    `db:"timezone"`
	PointageStart string    `db:"pointage_start"`
	Start         string    `db:"start_time"`
	End           string    `db:"end_time"`
	Tolerance     int       `db:"tolerance_minutes"`
}

type memberRow struct {
	ID            string `db:"id"`
	FirstName     string `db:"first_name"`
	LastName      string `db:"last_name"`
	Matricule     string `db:"matricule"`
	Group         string `db:"grp"`
	Option        string `db:"option"`
	InitialStatus string `db:"initial_status"`
}

// Postgres reads sessions, rosters, and device configuration from the
// scheduling database.
type Postgres struct {
	db *sqlx.DB
}

var (
	_ RosterSource   = (*Postgres)(nil)
	_ LocationSource = (*Postgres)(nil)
)

// OpenPostgres connects to the database described by dsn.
func OpenPostgres(dsn string) (*Postgres, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errNoDSN
	}

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	return &Postgres{db: db}, nil
}

// NewPostgres wraps an existing connection.
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

// GetSessionAttendanceRoster loads session sessionID and its students.
func (p *Postgres) GetSessionAttendanceRoster(
	ctx context.Context,
	sessionID string,
) (*models.Roster, error) {
	var row sessionRow

	err := p.db.GetContext(ctx, &row, sessionQuery, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errSessionNotFound.Fmt(sessionID)
	}

	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", sessionID, err)
	}

	sess, err := row.toSession()
	if err != nil {
		return nil, err
	}

	var rows []memberRow

	err = p.db.SelectContext(ctx, &rows, membersQuery, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading roster of %s: %w", sessionID, err)
	}

	roster := &models.Roster{
		Session: sess,
		Members: make([]models.Member, len(rows)),
	}

	for i := range rows {
		roster.Members[i] = rows[i].toMember()
	}

	return roster, nil
}

// GetLocationConfig reports whether a device is configured for locationID.
func (p *Postgres) GetLocationConfig(
	ctx context.Context,
	locationID string,
) (bool, error) {
	var exists bool

	err := p.db.GetContext(ctx, &exists, locationQuery, locationID)

	return exists, err
}

func (r *sessionRow) toSession() (models.Session, error) {
	loc := time.Local

	if r.Timezone != "" {
		l, err := time.LoadLocation(r.Timezone)
		if err != nil {
			return models.Session{}, fmt.Errorf("session %s: %w", r.ID, err)
		}

		loc = l
	}

	day := timeutil.DateIn(r.Date, loc)

	s := models.Session{
		ID:            r.ID,
		Title:         r.Title,
		Kind:          r.Kind,
		Promotion:     r.Promotion,
		Group:         r.Group,
		Option:        r.Option,
		Establishment: r.Establishment,
		City:          r.City,
		Date:          day,
		Tolerance:     time.Duration(r.Tolerance) * time.Minute,
	}

	bounds := []struct {
		dst *time.Time
		raw string
	}{
		{&s.PointageStart, r.PointageStart},
		{&s.Start, r.Start},
		{&s.End, r.End},
	}

	for _, b := range bounds {
		t, err := timeutil.OnDate(day, b.raw)
		if err != nil {
			return models.Session{}, fmt.Errorf("session %s: %w", r.ID, err)
		}

		*b.dst = t
	}

	if err := s.Validate(); err != nil {
		return models.Session{}, fmt.Errorf("session %s: %w", r.ID, err)
	}

	return s, nil
}

func (r *memberRow) toMember() models.Member {
	return models.Member{
		ID:            r.ID,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Matricule:     r.Matricule,
		Group:         r.Group,
		Option:        r.Option,
		InitialStatus: models.Status(strings.ToLower(r.InitialStatus)),
	}
}
