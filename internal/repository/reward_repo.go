package repository

import (
	"context"
	"errors"
	"time"

	"gamefi_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RewardRepository struct {
	db *pgxpool.Pool
}

func NewRewardRepository(db *pgxpool.Pool) *RewardRepository {
	return &RewardRepository{db: db}
}

const rewardColumns = `id, wallet_id, reward_type, reward_amount, reward_available, reward_withdrawn, total_exp, created_at, updated_at`

func scanReward(row pgx.Row) (*domain.Reward, error) {
	var rw domain.Reward
	if err := row.Scan(
		&rw.ID, &rw.WalletID, &rw.RewardType, &rw.RewardAmount, &rw.RewardAvailable,
		&rw.RewardWithdrawn, &rw.TotalExp, &rw.CreatedAt, &rw.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rw, nil
}

// GetByWalletAndType retrieves the single ledger row for a (wallet, type)
// pair. Returns (nil, nil) when the pair has no balance yet.
func (r *RewardRepository) GetByWalletAndType(ctx context.Context, walletID, rewardType string) (*domain.Reward, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+rewardColumns+`
		FROM rewards
		WHERE wallet_id = $1 AND reward_type = $2
	`, walletID, rewardType)
	return scanReward(row)
}

// ListByWallet returns all ledger rows owned by a wallet
func (r *RewardRepository) ListByWallet(ctx context.Context, walletID string) ([]domain.Reward, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+rewardColumns+`
		FROM rewards
		WHERE wallet_id = $1
		ORDER BY reward_type ASC
	`, walletID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		rw, err := scanReward(rows)
		if err != nil {
			return nil, err
		}
		rewards = append(rewards, *rw)
	}
	return rewards, rows.Err()
}

// TopByTypeInWindow returns the largest ledger rows of one reward type
// touched within [start, end+1day), ordered by gross amount descending.
func (r *RewardRepository) TopByTypeInWindow(ctx context.Context, rewardType string, start, end time.Time, limit int) ([]domain.Reward, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+rewardColumns+`
		FROM rewards
		WHERE reward_type = $1 AND updated_at >= $2 AND updated_at < $3
		ORDER BY reward_amount DESC, wallet_id ASC
		LIMIT $4
	`, rewardType, start, end.Add(24*time.Hour), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		rw, err := scanReward(rows)
		if err != nil {
			return nil, err
		}
		rewards = append(rewards, *rw)
	}
	return rewards, rows.Err()
}

// GetForUpdateTx locks and retrieves the ledger row inside tx.
// Returns (nil, nil) when the row does not exist; the caller decides
// whether to seed one.
func (r *RewardRepository) GetForUpdateTx(ctx context.Context, tx pgx.Tx, walletID, rewardType string) (*domain.Reward, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+rewardColumns+`
		FROM rewards
		WHERE wallet_id = $1 AND reward_type = $2
		FOR UPDATE
	`, walletID, rewardType)
	return scanReward(row)
}

// InsertTx seeds a fresh ledger row inside tx
func (r *RewardRepository) InsertTx(ctx context.Context, tx pgx.Tx, rw *domain.Reward) error {
	return tx.QueryRow(ctx, `
		INSERT INTO rewards (wallet_id, reward_type, reward_amount, reward_available, reward_withdrawn, total_exp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, rw.WalletID, rw.RewardType, rw.RewardAmount, rw.RewardAvailable, rw.RewardWithdrawn, rw.TotalExp).
		Scan(&rw.ID, &rw.CreatedAt, &rw.UpdatedAt)
}

// UpdateBalancesTx writes back a previously locked ledger row inside tx
func (r *RewardRepository) UpdateBalancesTx(ctx context.Context, tx pgx.Tx, rw *domain.Reward) error {
	return tx.QueryRow(ctx, `
		UPDATE rewards
		SET reward_amount = $2, reward_available = $3, reward_withdrawn = $4, total_exp = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, rw.ID, rw.RewardAmount, rw.RewardAvailable, rw.RewardWithdrawn, rw.TotalExp).Scan(&rw.UpdatedAt)
}
