package db

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/metlab/inventory/config"
	_ "modernc.org/sqlite"
)

const (
	defaultDBDriver       = "sqlite"
	defaultPingTimeout    = 5 * time.Second
	defaultBusyTimeoutMS  = 5000
	defaultMaxOpenConns   = 1
	defaultConnMaxIdle    = 2 * time.Minute
	defaultMaxIdleConns   = 1
	inMemoryDatabasePath  = ":memory:"
	sqliteTxLockImmediate = "immediate"
)

func init() {
	sqlx.BindDriver(defaultDBDriver, sqlx.QUESTION)
}

// Open connects to the SQLite file named in cfg and makes sure every table
// exists. SQLite allows a single writer, so the pool holds one connection.
func Open(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := buildDSN(cfg.Database)

	db, err := sqlx.Open(defaultDBDriver, dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	if !isInMemory(cfg.Database.Path) {
		// An idle in-memory database would be lost when its connection closes.
		db.SetConnMaxIdleTime(defaultConnMaxIdle)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", cfg.Database.Path, err)
	}

	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// buildDSN turns the database config into a modernc sqlite DSN. Explicit
// transactions start with BEGIN IMMEDIATE so the write lock is taken before
// the first read inside them.
func buildDSN(cfg config.DatabaseConfig) string {
	busy := cfg.BusyTimeoutMS
	if busy <= 0 {
		busy = defaultBusyTimeoutMS
	}

	path := cfg.Path
	if isInMemory(path) {
		path = inMemoryDatabasePath
	}

	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busy))
	q.Add("_txlock", sqliteTxLockImmediate)

	return "file:" + path + "?" + q.Encode()
}

func isInMemory(path string) bool {
	return path == "" || path == inMemoryDatabasePath
}
