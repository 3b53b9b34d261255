package db

import (
	"context"
	"database/sql"
	_ "embed"
	"net/url"
	"time"

	"github.com/inkwell-blog/inkwell/config"
	_ "modernc.org/sqlite"
)

const (
	defaultDBDriver    = "sqlite"
	defaultPingTimeout = 5 * time.Second
)

//go:embed schema.sql
var schemaDDL string

// Open opens the SQLite database file, enabling foreign keys and a busy
// timeout so concurrent writers queue at the engine instead of failing.
func Open(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	dsn := buildDSN(cfg.Database.Path)

	db, err := sql.Open(defaultDBDriver, dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// InitSchema destructively recreates all tables from the embedded DDL.
// Existing data is discarded. Intended for first-time setup and test
// fixtures only.
func InitSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaDDL)
	return err
}

func buildDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	return "file:" + path + "?" + q.Encode()
}
