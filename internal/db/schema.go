package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Tables lists every table in the order ClearAll empties them: transactions
// reference inventory, and users go last.
var Tables = []string{
	"transactions",
	"inventory",
	"categories",
	"suppliers",
	"users",
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS inventory (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		category TEXT,
		quantity INTEGER NOT NULL,
		price REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		contact_person TEXT,
		phone TEXT,
		email TEXT,
		address TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_id INTEGER,
		transaction_type TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		date TEXT NOT NULL,
		notes TEXT,
		FOREIGN KEY (item_id) REFERENCES inventory (id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		email TEXT,
		role TEXT DEFAULT 'user',
		created_at TEXT NOT NULL
	)`,
}

// EnsureSchema creates any missing table. It never drops or alters existing ones.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
