package repository

import (
	"context"

	"gamefi_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DepositRepository struct {
	db *pgxpool.Pool
}

func NewDepositRepository(db *pgxpool.Pool) *DepositRepository {
	return &DepositRepository{db: db}
}

// Create inserts a new deposit event
func (r *DepositRepository) Create(ctx context.Context, d *domain.Deposit) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO deposits (wallet_id, token_balance, token_type, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, d.WalletID, d.TokenBalance, d.TokenType, d.Status).Scan(&d.ID, &d.CreatedAt)
}

// UpdateStatusTx updates the event status inside tx
func (r *DepositRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id int64, status domain.EventStatus) error {
	_, err := tx.Exec(ctx, `UPDATE deposits SET status = $2 WHERE id = $1`, id, status)
	return err
}

// GetByWallet returns the wallet's deposits, newest first
func (r *DepositRepository) GetByWallet(ctx context.Context, walletID string, limit, offset int) ([]domain.Deposit, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, wallet_id, token_balance, token_type, status, created_at
		FROM deposits
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, walletID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		var d domain.Deposit
		if err := rows.Scan(&d.ID, &d.WalletID, &d.TokenBalance, &d.TokenType, &d.Status, &d.CreatedAt); err != nil {
			return nil, err
		}
		deposits = append(deposits, d)
	}
	return deposits, rows.Err()
}
