package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/metlab/inventory/config"
	"github.com/metlab/inventory/internal/db"
	"github.com/metlab/inventory/internal/store"
	"go.uber.org/zap/zaptest"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := db.Open(context.Background(), config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "inventory.db")},
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func newTestUserService(t *testing.T, conn *sqlx.DB) *UserService {
	t.Helper()
	return NewUserService(
		store.NewUserRepository(conn),
		NewPasswordHasher(config.PasswordSchemeSHA256),
		zaptest.NewLogger(t),
	)
}

func newTestLedgerService(t *testing.T, conn *sqlx.DB) *LedgerService {
	t.Helper()
	return NewLedgerService(LedgerRepositories{
		Items:        store.NewItemRepository(conn),
		Categories:   store.NewCategoryRepository(conn),
		Suppliers:    store.NewSupplierRepository(conn),
		Transactions: store.NewTransactionRepository(conn),
		Reset:        store.NewResetRepository(conn),
	}, zaptest.NewLogger(t))
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
