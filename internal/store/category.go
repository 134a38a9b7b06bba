package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/metlab/inventory/types"
)

// CategoryRepository handles persistence for categories. Names are unique;
// a duplicate insert fails with the driver's constraint error.
type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category types.Category) (types.Category, error) {
	const query = `
		INSERT INTO categories (name, description)
		VALUES (:name, :description)`
	result, err := r.db.NamedExecContext(ctx, query, category)
	if err != nil {
		return types.Category{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return types.Category{}, err
	}
	category.ID = id
	return category, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]types.Category, error) {
	const query = `SELECT id, name, description FROM categories`
	categories := []types.Category{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, u types.CategoryUpdate) error {
	const query = `
		UPDATE categories
		SET name = COALESCE(?, name),
			description = COALESCE(?, description)
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.Description, id)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM categories WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
