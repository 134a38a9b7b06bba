package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/metlab/inventory/types"
)

// ItemRepository handles persistence for inventory items.
type ItemRepository struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item types.Item) (types.Item, error) {
	const query = `
		INSERT INTO inventory (name, category, quantity, price)
		VALUES (:name, :category, :quantity, :price)`
	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return types.Item{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return types.Item{}, err
	}
	item.ID = id
	return item, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]types.Item, error) {
	const query = `
		SELECT id, name, COALESCE(category, '') AS category, quantity, price
		FROM inventory`
	items := []types.Item{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies the populated fields of u. Unset fields bind NULL and
// COALESCE keeps the stored value.
func (r *ItemRepository) Update(ctx context.Context, id int64, u types.ItemUpdate) error {
	const query = `
		UPDATE inventory
		SET name = COALESCE(?, name),
			category = COALESCE(?, category),
			quantity = COALESCE(?, quantity),
			price = COALESCE(?, price)
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.Category, u.Quantity, u.Price, id)
	return err
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM inventory WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
