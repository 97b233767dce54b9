package service

import (
	"context"
	"time"

	"gamefi_backend/internal/domain"
	"gamefi_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

var ledgerMutations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reward_ledger_mutations_total",
		Help: "Reward ledger mutations by flow and outcome",
	},
	[]string{"flow", "outcome"},
)

func init() {
	prometheus.MustRegister(ledgerMutations)
}

func countMutation(flow string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "rejected"
	}
	ledgerMutations.WithLabelValues(flow, outcome).Inc()
}

// Ledger owns the reward row mutation contract. Every mutation locks the
// row (or seeds a missing one from the delta) inside the caller's
// transaction, so concurrent writers serialize on the database row instead
// of racing read-modify-write cycles.
type Ledger struct {
	db      *pgxpool.Pool
	rewards *repository.RewardRepository
}

func NewLedger(db *pgxpool.Pool) *Ledger {
	return &Ledger{db: db, rewards: repository.NewRewardRepository(db)}
}

// ApplyDeltaTx adjusts the ledger row for (walletID, rewardType) inside tx.
// A missing row is an all-zero baseline: the new row is seeded from the
// delta. The gross amount is always recomputed as available + withdrawn.
func (l *Ledger) ApplyDeltaTx(ctx context.Context, tx pgx.Tx, walletID, rewardType string, d domain.RewardDelta) (*domain.Reward, error) {
	reward, err := l.rewards.GetForUpdateTx(ctx, tx, walletID, rewardType)
	if err != nil {
		return nil, err
	}

	if reward == nil {
		reward = &domain.Reward{
			WalletID:        walletID,
			RewardType:      rewardType,
			RewardAvailable: d.Available,
			RewardWithdrawn: d.Withdrawn,
			RewardAmount:    d.Available + d.Withdrawn,
			TotalExp:        d.Exp,
		}
		if err := l.rewards.InsertTx(ctx, tx, reward); err != nil {
			return nil, err
		}
		return reward, nil
	}

	reward.RewardAvailable += d.Available
	reward.RewardWithdrawn += d.Withdrawn
	reward.RewardAmount = reward.RewardAvailable + reward.RewardWithdrawn
	reward.TotalExp += d.Exp

	if err := l.rewards.UpdateBalancesTx(ctx, tx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

// ApplyDelta runs ApplyDeltaTx in its own transaction.
func (l *Ledger) ApplyDelta(ctx context.Context, walletID, rewardType string, d domain.RewardDelta) (*domain.Reward, error) {
	tx, err := l.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	reward, err := l.ApplyDeltaTx(ctx, tx, walletID, rewardType, d)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return reward, nil
}

// GetByWalletAndType reads a single ledger row, (nil, nil) when absent
func (l *Ledger) GetByWalletAndType(ctx context.Context, walletID, rewardType string) (*domain.Reward, error) {
	return l.rewards.GetByWalletAndType(ctx, walletID, rewardType)
}

// ListByWallet reads all of a wallet's ledger rows
func (l *Ledger) ListByWallet(ctx context.Context, walletID string) ([]domain.Reward, error) {
	return l.rewards.ListByWallet(ctx, walletID)
}

// TopByType returns the largest ledger rows of one reward type touched
// within a date window.
func (l *Ledger) TopByType(ctx context.Context, rewardType string, start, end time.Time, limit int) ([]domain.Reward, error) {
	return l.rewards.TopByTypeInWindow(ctx, rewardType, start, end, limit)
}
