package repository

import (
	"context"
	"errors"

	"gamefi_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetByPublicAddress retrieves a user by lowercased public address.
// Returns (nil, nil) when no user exists.
func (r *UserRepository) GetByPublicAddress(ctx context.Context, publicAddress string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, public_address, nonce, wallet_id, created_at
		FROM users
		WHERE public_address = $1
	`, publicAddress)

	var u domain.User
	var walletID *string
	if err := row.Scan(&u.ID, &u.PublicAddress, &u.Nonce, &walletID, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if walletID != nil {
		u.WalletID = *walletID
	}

	return &u, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO users (public_address, nonce, wallet_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, u.PublicAddress, u.Nonce, u.WalletID).Scan(&u.ID, &u.CreatedAt)
}

// UpdateNonce persists a freshly generated login nonce
func (r *UserRepository) UpdateNonce(ctx context.Context, id int64, nonce int) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET nonce = $2 WHERE id = $1`, id, nonce)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
