package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/metlab/inventory/types"
)

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (types.User, error) {
	const query = `
		SELECT id, username, password_hash, email, COALESCE(role, 'user') AS role, created_at
		FROM users
		WHERE username = ?`
	var user types.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	const query = `SELECT COUNT(1) FROM users WHERE username = ?`
	var count int
	if err := r.db.GetContext(ctx, &count, query, username); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(1) FROM users`
	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	const query = `
		INSERT INTO users (username, password_hash, email, role, created_at)
		VALUES (:username, :password_hash, :email, :role, :created_at)`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return types.User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return types.User{}, err
	}
	user.ID = id
	return user, nil
}

// List returns every account in storage order without password digests.
func (r *UserRepository) List(ctx context.Context) ([]types.User, error) {
	const query = `
		SELECT id, username, email, COALESCE(role, 'user') AS role, created_at
		FROM users`
	users := []types.User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUnlessLastAdmin removes the user with the given id. Removing the
// only remaining admin fails with ErrLastAdmin. The role check and the
// delete share one write transaction. A missing id is not an error.
func (r *UserRepository) DeleteUnlessLastAdmin(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var role sql.NullString
	err = tx.GetContext(ctx, &role, `SELECT role FROM users WHERE id = ?`, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return err
	case role.String == types.RoleAdmin:
		var admins int
		if err := tx.GetContext(ctx, &admins,
			`SELECT COUNT(1) FROM users WHERE role = ?`, types.RoleAdmin); err != nil {
			return err
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
