package storage

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"app-stats/models"
	"app-stats/utils"
)

var tableNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLSource reads a dataset from a table that holds an imported copy of a
// marketplace file. Column order is the table's column order; NULL values
// become empty strings.
type SQLSource struct {
	name  string
	table string
	db    *sql.DB
}

// OpenDB opens a database with the given driver ("postgres" or "sqlite") and
// pings it, retrying with back-off.
func OpenDB(ctx context.Context, driver, dsn string, maxRetries int, logger *utils.Logger) (*sql.DB, error) {
	switch driver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("sql: unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql: open: %w", err)
	}

	retry := &utils.RetryConfig{MaxAttempts: maxRetries, BaseDelay: 2 * time.Second, Logger: logger}
	if err := retry.Do(ctx, "sql ping", db.PingContext); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sql: %w", err)
	}
	return db, nil
}

// NewSQLSource creates a source reading every row of table.
func NewSQLSource(name string, db *sql.DB, table string) (*SQLSource, error) {
	if !tableNameRegexp.MatchString(table) {
		return nil, fmt.Errorf("sql: invalid table name %q", table)
	}
	return &SQLSource{name: name, table: table, db: db}, nil
}

func (s *SQLSource) Load(ctx context.Context) (*models.Dataset, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, s.table))
	if err != nil {
		return nil, fmt.Errorf("sql: query %s: %w", s.table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("sql: columns of %s: %w", s.table, err)
	}

	ds := &models.Dataset{Source: s.name, Header: models.Header(cols)}
	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("sql: scan row: %w", err)
		}
		rec := make(models.RawRecord, len(cols))
		for i, v := range values {
			rec[i] = v.String
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, rows.Err()
}
