package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/metlab/inventory/types"
)

// SupplierRepository handles persistence for suppliers.
type SupplierRepository struct {
	db *sqlx.DB
}

func NewSupplierRepository(db *sqlx.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(ctx context.Context, supplier types.Supplier) (types.Supplier, error) {
	const query = `
		INSERT INTO suppliers (name, contact_person, phone, email, address)
		VALUES (:name, :contact_person, :phone, :email, :address)`
	result, err := r.db.NamedExecContext(ctx, query, supplier)
	if err != nil {
		return types.Supplier{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return types.Supplier{}, err
	}
	supplier.ID = id
	return supplier, nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]types.Supplier, error) {
	const query = `
		SELECT id, name, contact_person, phone, email, address
		FROM suppliers`
	suppliers := []types.Supplier{}
	if err := r.db.SelectContext(ctx, &suppliers, query); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *SupplierRepository) Update(ctx context.Context, id int64, u types.SupplierUpdate) error {
	const query = `
		UPDATE suppliers
		SET name = COALESCE(?, name),
			contact_person = COALESCE(?, contact_person),
			phone = COALESCE(?, phone),
			email = COALESCE(?, email),
			address = COALESCE(?, address)
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.ContactPerson, u.Phone, u.Email, u.Address, id)
	return err
}

func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM suppliers WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
