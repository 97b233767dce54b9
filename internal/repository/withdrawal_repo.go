package repository

import (
	"context"

	"gamefi_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WithdrawalRepository struct {
	db *pgxpool.Pool
}

func NewWithdrawalRepository(db *pgxpool.Pool) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Create inserts a new withdrawal event. The event is logged before the
// balance check runs.
func (r *WithdrawalRepository) Create(ctx context.Context, w *domain.Withdrawal) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO withdrawals (wallet_id, token_balance, token_type, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, w.WalletID, w.TokenBalance, w.TokenType, w.Status).Scan(&w.ID, &w.CreatedAt)
}

// UpdateStatusTx updates the event status inside tx
func (r *WithdrawalRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id int64, status domain.EventStatus) error {
	_, err := tx.Exec(ctx, `UPDATE withdrawals SET status = $2 WHERE id = $1`, id, status)
	return err
}

// GetByWallet returns the wallet's withdrawals, newest first
func (r *WithdrawalRepository) GetByWallet(ctx context.Context, walletID string, limit, offset int) ([]domain.Withdrawal, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, wallet_id, token_balance, token_type, status, created_at
		FROM withdrawals
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, walletID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		if err := rows.Scan(&w.ID, &w.WalletID, &w.TokenBalance, &w.TokenType, &w.Status, &w.CreatedAt); err != nil {
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}
