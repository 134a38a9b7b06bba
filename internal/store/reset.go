package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/metlab/inventory/internal/db"
)

// ResetRepository wipes every table while keeping the schema.
type ResetRepository struct {
	db *sqlx.DB
}

func NewResetRepository(db *sqlx.DB) *ResetRepository {
	return &ResetRepository{db: db}
}

// ClearAll deletes every row of every table in db.Tables order inside one
// transaction.
func (r *ResetRepository) ClearAll(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range db.Tables {
		// Table names come from a fixed list, never from callers.
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}
