package profilestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/internal/logging"
	"github.com/huangsam/teamdisc/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// profilesTable is the name of the table holding assessment profiles.
const profilesTable = "teamdisc_profiles"

// profileColumns lists the stored columns in scan order.
var profileColumns = []string{
	"id", "name", "email", "department", "department_key", "team_code",
	"natural_d", "natural_i", "natural_s", "natural_c",
	"adaptive_d", "adaptive_i", "adaptive_s", "adaptive_c",
	"primary_natural", "primary_adaptive", "driving_forces", "created_at",
}

// SQLStore handles durable profile storage on SQLite, MySQL, or PostgreSQL.
type SQLStore struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
}

var _ contract.ProfileRepository = &SQLStore{} // Compile-time check

// NewSQLStore opens the database, verifies the connection, and applies migrations.
func NewSQLStore(backend schema.DatabaseBackend, connStr string) (*SQLStore, error) {
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetDBFilePath()
	}
	db, err := openSQL(backend, connStr)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(db, backend, connStr); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate %s profile store: %w", backend, err)
	}
	return &SQLStore{db: db, backend: backend, connStr: connStr}, nil
}

// openSQL opens and pings a database/sql handle for a SQL backend.
func openSQL(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		if connStr == "" {
			connStr = contract.GetDBFilePath()
		}
		db, err = sql.Open("sqlite", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", connStr, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		// and to keep ":memory:" databases on one connection
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be: user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be: host=localhost port=5432 user=postgres dbname=mydb
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	default:
		return nil, fmt.Errorf("unsupported SQL backend: %s", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}
	return db, nil
}

// CreateProfile inserts a new profile row.
func (s *SQLStore) CreateProfile(ctx context.Context, p schema.Profile) error {
	args, err := profileArgs(p)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		profilesTable, strings.Join(profileColumns, ", "), s.placeholders(1, len(profileColumns)))

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %s", contract.ErrDuplicateProfile, p.ID)
		}
		logging.Log.WithError(err).WithField("backend", s.backend).Error("failed to insert profile")
		return fmt.Errorf("failed to insert profile %s: %w", p.ID, err)
	}
	return nil
}

// GetProfile returns one profile by id.
func (s *SQLStore) GetProfile(ctx context.Context, id string) (schema.Profile, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = %s",
		strings.Join(profileColumns, ", "), profilesTable, s.placeholder(1))

	p, err := scanProfile(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return schema.Profile{}, fmt.Errorf("%w: %s", contract.ErrProfileNotFound, id)
	}
	if err != nil {
		return schema.Profile{}, fmt.Errorf("failed to read profile %s: %w", id, err)
	}
	return p, nil
}

// ListProfiles returns the profiles matching the filter, oldest first.
func (s *SQLStore) ListProfiles(ctx context.Context, filter schema.ProfileFilter) ([]schema.Profile, error) {
	where, args := s.filterClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY created_at, id",
		strings.Join(profileColumns, ", "), profilesTable, where)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logging.Log.WithError(err).WithField("backend", s.backend).Error("failed to list profiles")
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	profiles := make([]schema.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}
	return profiles, nil
}

// Revision returns the profile count and the latest createdAt.
func (s *SQLStore) Revision(ctx context.Context) (schema.StoreRevision, error) {
	query := fmt.Sprintf("SELECT COUNT(*), COALESCE(MAX(created_at), 0) FROM %s", profilesTable)
	var count, latest int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&count, &latest); err != nil {
		return schema.StoreRevision{}, fmt.Errorf("failed to read store revision: %w", err)
	}
	rev := schema.StoreRevision{Count: count}
	if count > 0 {
		rev.LatestAt = fromUnixNano(latest)
	}
	return rev, nil
}

// GetStatus returns status information about the profile store.
func (s *SQLStore) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(s.backend),
		Connected: s.db != nil,
		Target:    describeTarget(s.backend, s.connStr),
	}
	if s.db == nil {
		return status, nil
	}

	var version sql.NullInt64
	versionQuery := fmt.Sprintf("SELECT version FROM %s LIMIT 1", migrationsTable)
	if err := s.db.QueryRow(versionQuery).Scan(&version); err == nil && version.Valid {
		status.SchemaVersion = uint(version.Int64)
	}

	query := fmt.Sprintf("SELECT COUNT(*), COUNT(DISTINCT department_key), COALESCE(MIN(created_at), 0), COALESCE(MAX(created_at), 0) FROM %s", profilesTable)
	var oldest, latest int64
	if err := s.db.QueryRow(query).Scan(&status.TotalProfiles, &status.Departments, &oldest, &latest); err != nil {
		return status, fmt.Errorf("failed to get profile totals: %w", err)
	}
	if status.TotalProfiles > 0 {
		status.OldestProfileAt = fromUnixNano(oldest)
		status.LatestProfileAt = fromUnixNano(latest)
	}
	return status, nil
}

// Close closes the underlying DB connection.
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// placeholder returns the n-th (1-based) parameter placeholder for the backend.
func (s *SQLStore) placeholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// placeholders returns count comma-separated placeholders starting at position start.
func (s *SQLStore) placeholders(start, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = s.placeholder(start + i)
	}
	return strings.Join(parts, ", ")
}

// filterClause renders the WHERE clause and its arguments for a filter.
func (s *SQLStore) filterClause(filter schema.ProfileFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, cond+" "+s.placeholder(len(args)))
	}

	if dept := schema.NormalizeDepartment(filter.Department); dept != "" {
		add("department_key =", dept)
	}
	if team := strings.TrimSpace(filter.TeamCode); team != "" {
		add("team_code =", team)
	}
	if !filter.From.IsZero() {
		add("created_at >=", toUnixNano(filter.From))
	}
	if !filter.To.IsZero() {
		add("created_at <=", toUnixNano(filter.To))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// profileArgs flattens a profile into insert arguments in profileColumns order.
func profileArgs(p schema.Profile) ([]any, error) {
	var forces sql.NullString
	if p.DrivingForces != nil {
		b, err := json.Marshal(p.DrivingForces)
		if err != nil {
			return nil, fmt.Errorf("failed to encode driving forces: %w", err)
		}
		forces = sql.NullString{String: string(b), Valid: true}
	}

	args := []any{
		p.ID, p.Name, p.Email, p.Department, schema.NormalizeDepartment(p.Department), p.TeamCode,
	}
	args = append(args, scoreArgs(p.Natural)...)
	args = append(args, scoreArgs(p.Adaptive)...)
	args = append(args, p.PrimaryNatural.String(), p.PrimaryAdaptive.String(), forces, toUnixNano(p.CreatedAt))
	return args, nil
}

func scoreArgs(s *schema.Scores) []any {
	out := make([]any, schema.TraitCount)
	for _, t := range schema.AllTraits {
		if s == nil {
			out[t] = sql.NullInt64{}
		} else {
			out[t] = sql.NullInt64{Int64: int64(s[t]), Valid: true}
		}
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProfile reads one row in profileColumns order. Rows with missing vectors or
// unreadable primaries are still returned so that aggregation can count them as skipped.
func scanProfile(row rowScanner) (schema.Profile, error) {
	var (
		p                  schema.Profile
		deptKey            string
		natural, adaptive  [schema.TraitCount]sql.NullInt64
		primaryN, primaryA string
		forces             sql.NullString
		created            int64
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Department, &deptKey, &p.TeamCode,
		&natural[schema.D], &natural[schema.I], &natural[schema.S], &natural[schema.C],
		&adaptive[schema.D], &adaptive[schema.I], &adaptive[schema.S], &adaptive[schema.C],
		&primaryN, &primaryA, &forces, &created,
	)
	if err != nil {
		return schema.Profile{}, err
	}

	p.Natural = scoresFromColumns(natural)
	p.Adaptive = scoresFromColumns(adaptive)
	p.PrimaryNatural = traitFromColumn(p.ID, primaryN)
	p.PrimaryAdaptive = traitFromColumn(p.ID, primaryA)
	p.CreatedAt = fromUnixNano(created)

	if forces.Valid && forces.String != "" {
		var result schema.DrivingForceResult
		if err := json.Unmarshal([]byte(forces.String), &result); err != nil {
			logging.Log.WithError(err).WithField("profile", p.ID).Warn("ignoring unreadable driving forces")
		} else {
			p.DrivingForces = &result
		}
	}
	return p, nil
}

func scoresFromColumns(cols [schema.TraitCount]sql.NullInt64) *schema.Scores {
	var s schema.Scores
	for _, t := range schema.AllTraits {
		if !cols[t].Valid {
			return nil
		}
		s[t] = int(cols[t].Int64)
	}
	return &s
}

// invalidTrait marks a stored primary that does not parse.
const invalidTrait = schema.Trait(schema.TraitCount)

func traitFromColumn(id, value string) schema.Trait {
	t, err := schema.ParseTrait(value)
	if err != nil {
		logging.Log.WithField("profile", id).Warnf("stored primary trait %q is invalid", value)
		return invalidTrait
	}
	return t
}

var (
	minUnixNanoTime = time.Unix(0, math.MinInt64).UTC()
	maxUnixNanoTime = time.Unix(0, math.MaxInt64).UTC()
)

// toUnixNano converts t to the stored created_at form, clamped to the representable range.
func toUnixNano(t time.Time) int64 {
	switch {
	case t.Before(minUnixNanoTime):
		return math.MinInt64
	case t.After(maxUnixNanoTime):
		return math.MaxInt64
	default:
		return t.UnixNano()
	}
}

func fromUnixNano(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}

// isDuplicateKey reports whether err is a primary key violation on any SQL backend.
func isDuplicateKey(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT:
			return true
		}
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// describeTarget renders the connection target without credentials.
func describeTarget(backend schema.DatabaseBackend, connStr string) string {
	switch backend {
	case schema.SQLiteBackend:
		return connStr
	case schema.MySQLBackend:
		cfg, err := mysql.ParseDSN(connStr)
		if err != nil {
			return "mysql"
		}
		return cfg.Addr + "/" + cfg.DBName
	case schema.PostgreSQLBackend:
		cfg, err := pgx.ParseConfig(connStr)
		if err != nil {
			return "postgresql"
		}
		return fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Database)
	default:
		return string(backend)
	}
}
