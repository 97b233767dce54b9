package repository

import (
	"context"

	"gamefi_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClaimRepository struct {
	db *pgxpool.Pool
}

func NewClaimRepository(db *pgxpool.Pool) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Create inserts a new claim event
func (r *ClaimRepository) Create(ctx context.Context, c *domain.Claim) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO claims (wallet_id, claim_reward_amount, claim_reward_type, claim_status, transaction_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, c.WalletID, c.ClaimRewardAmount, c.ClaimRewardType, c.ClaimStatus, c.TransactionID).Scan(&c.ID, &c.CreatedAt)
}

// UpdateStatusTx updates the claim status inside tx
func (r *ClaimRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id int64, status string) error {
	_, err := tx.Exec(ctx, `UPDATE claims SET claim_status = $2 WHERE id = $1`, id, status)
	return err
}

// GetByWallet returns the wallet's claims, newest first
func (r *ClaimRepository) GetByWallet(ctx context.Context, walletID string, limit, offset int) ([]domain.Claim, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, wallet_id, claim_reward_amount, claim_reward_type, claim_status, transaction_id, created_at
		FROM claims
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, walletID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []domain.Claim
	for rows.Next() {
		var c domain.Claim
		var txID *string
		if err := rows.Scan(&c.ID, &c.WalletID, &c.ClaimRewardAmount, &c.ClaimRewardType, &c.ClaimStatus, &txID, &c.CreatedAt); err != nil {
			return nil, err
		}
		if txID != nil {
			c.TransactionID = *txID
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}
