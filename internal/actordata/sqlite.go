package actordata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/osse101/FishingOverhaul_Go/internal/database"
	"github.com/osse101/FishingOverhaul_Go/internal/database/migrations"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
)

// SQLite stores actor values in a local SQLite file
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies migrations.
// ":memory:" gives a private database that disappears on Close.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}

	dsn := path
	if path != memoryPath {
		path = filepath.Clean(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenSQLite, err)
		}
		dsn = path + sqliteDSNPragmas
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenSQLite, err)
	}
	// One connection; an in-memory database is per connection and SQLite has a single writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenSQLite, err)
	}
	if err := database.Migrate(ctx, db, goose.DialectSQLite3, migrations.SQLite()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, actorID, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM actor_data WHERE actor_id = ? AND data_key = ?`,
		actorID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w: %w", ErrMsgGetFailed, domain.ErrDatabaseError, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, actorID, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO actor_data (actor_id, data_key, value, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (actor_id, data_key)
		 DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		actorID, key, value, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", ErrMsgSetFailed, domain.ErrDatabaseError, err)
	}
	return nil
}

func (s *SQLite) All(ctx context.Context, actorID string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data_key, value FROM actor_data WHERE actor_id = ? ORDER BY data_key`,
		actorID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ErrMsgListFailed, domain.ErrDatabaseError, err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", ErrMsgListFailed, domain.ErrDatabaseError, err)
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ErrMsgListFailed, domain.ErrDatabaseError, err)
	}
	return values, nil
}

func (s *SQLite) Clear(ctx context.Context, actorID string) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM actor_data WHERE actor_id = ?`, actorID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", ErrMsgClearFailed, domain.ErrDatabaseError, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", ErrMsgClearFailed, domain.ErrDatabaseError, err)
	}
	return int(n), nil
}

// Ping checks the database file is still usable
func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}
