package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/metlab/inventory/types"
)

// Dates are compared as strings, so only YYYY-MM-DD values sort chronologically.
const transactionSelect = `
	SELECT t.id, t.item_id, t.transaction_type, t.quantity, t.date, t.notes,
	       i.name AS item_name
	FROM transactions t
	LEFT JOIN inventory i ON t.item_id = i.id`

// TransactionRepository handles persistence for stock movements.
type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create appends a movement. It neither checks that the item exists nor
// touches the item's quantity.
func (r *TransactionRepository) Create(ctx context.Context, entry types.TransactionEntry) (int64, error) {
	const query = `
		INSERT INTO transactions (item_id, transaction_type, quantity, date, notes)
		VALUES (:item_id, :transaction_type, :quantity, :date, :notes)`
	result, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *TransactionRepository) List(ctx context.Context) ([]types.Transaction, error) {
	const query = transactionSelect + `
	ORDER BY t.date DESC`
	transactions := []types.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *TransactionRepository) ListByItem(ctx context.Context, itemID int64) ([]types.Transaction, error) {
	const query = transactionSelect + `
	WHERE t.item_id = ?
	ORDER BY t.date DESC`
	transactions := []types.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, itemID); err != nil {
		return nil, err
	}
	return transactions, nil
}
