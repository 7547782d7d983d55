// internal/user/repository.go
//
// SQL access for the user table.  Plain sqlx; no ORM.
package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Account statuses.  Zero means active, matching the schema default.
const (
	statusActive   = 0
	statusDisabled = 1
)

// Record is one user row.
type Record struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Status       int    `db:"status"`
}

// Repository wraps the pool for user queries.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository { return &Repository{db: db} }

// UsernameTaken reports whether a user with this username exists.
func (r *Repository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM user WHERE username = ?`, username)
	return n > 0, err
}

// EmailTaken reports whether a user with this email exists.
func (r *Repository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM user WHERE email = ?`, email)
	return n > 0, err
}

// Create inserts an active user and returns the new id.
func (r *Repository) Create(ctx context.Context, username, email, passwordHash string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO user (username, email, password_hash, status) VALUES (?, ?, ?, ?)`,
		username, email, passwordHash, statusActive)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// FindByUsernameOrEmail matches either column.  A missing user returns
// (nil, nil) so callers can map it to their own error.
func (r *Repository) FindByUsernameOrEmail(ctx context.Context, q string) (*Record, error) {
	var rec Record
	err := r.db.GetContext(ctx, &rec,
		`SELECT id, username, email, password_hash, status FROM user WHERE username = ? OR email = ? LIMIT 1`,
		q, q)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByID loads one user by primary key.  Missing users return (nil, nil).
func (r *Repository) FindByID(ctx context.Context, id int64) (*Record, error) {
	var rec Record
	err := r.db.GetContext(ctx, &rec,
		`SELECT id, username, email, password_hash, status FROM user WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
