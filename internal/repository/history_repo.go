package repository

import (
	"context"
	"strconv"
	"time"

	"gamefi_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HistoryRepository struct {
	db *pgxpool.Pool
}

func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// CreateTx inserts a play-history row inside tx, so the event and its
// ledger credit commit together.
func (r *HistoryRepository) CreateTx(ctx context.Context, tx pgx.Tx, h *domain.History) error {
	return tx.QueryRow(ctx, `
		INSERT INTO reward_histories (player_id, wallet_id, reward_number, exp_number, reward_type, activity_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, h.PlayerID, h.WalletID, h.RewardNumber, h.ExpNumber, h.RewardType, h.ActivityName).Scan(&h.ID, &h.CreatedAt)
}

// GetByWallet returns the wallet's history rows, newest first
func (r *HistoryRepository) GetByWallet(ctx context.Context, walletID string, limit, offset int) ([]domain.History, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, player_id, wallet_id, reward_number, exp_number, reward_type, activity_name, created_at
		FROM reward_histories
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, walletID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistories(rows)
}

// GetByWalletInRange returns the wallet's history rows with createdAt in
// [start, end), oldest first.
func (r *HistoryRepository) GetByWalletInRange(ctx context.Context, walletID string, start, end time.Time) ([]domain.History, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, player_id, wallet_id, reward_number, exp_number, reward_type, activity_name, created_at
		FROM reward_histories
		WHERE wallet_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at ASC
	`, walletID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistories(rows)
}

// TopRewards aggregates history rows in [start, end+1day) grouped by player,
// summing reward numbers. With an activity filter only SCORE rewards count.
// Ordered by summed reward descending, player id ascending on ties.
func (r *HistoryRepository) TopRewards(ctx context.Context, start, end time.Time, activityName string, limit int) ([]domain.TopRewardEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT h.player_id, h.wallet_id, COALESCE(p.skin_name, ''), COALESCE(p.star_number, 0),
		       SUM(h.reward_number) AS total_reward
		FROM reward_histories h
		LEFT JOIN players p ON p.id = h.player_id
		WHERE h.created_at >= $1 AND h.created_at < $2`
	args := []any{start, end.Add(24 * time.Hour)}

	if activityName != "" {
		query += ` AND h.activity_name = $3 AND h.reward_type = $4`
		args = append(args, activityName, domain.RewardTypeScore)
	}

	query += `
		GROUP BY h.player_id, h.wallet_id, p.skin_name, p.star_number
		ORDER BY total_reward DESC, h.player_id ASC
		LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.TopRewardEntry
	for rows.Next() {
		var e domain.TopRewardEntry
		if err := rows.Scan(&e.PlayerID, &e.WalletID, &e.SkinName, &e.StarNumber, &e.TotalReward); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanHistories(rows pgx.Rows) ([]domain.History, error) {
	var histories []domain.History
	for rows.Next() {
		var h domain.History
		var activity *string
		if err := rows.Scan(&h.ID, &h.PlayerID, &h.WalletID, &h.RewardNumber, &h.ExpNumber, &h.RewardType, &activity, &h.CreatedAt); err != nil {
			return nil, err
		}
		if activity != nil {
			h.ActivityName = *activity
		}
		histories = append(histories, h)
	}
	return histories, rows.Err()
}
