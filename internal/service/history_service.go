package service

import (
	"context"
	"errors"
	"time"

	"gamefi_backend/internal/domain"
	"gamefi_backend/internal/logger"
	"gamefi_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryResult is the two-phase outcome of creating a play-history record:
// the committed history row plus whether the best-effort player experience
// bump landed.
type HistoryResult struct {
	History    *domain.History `json:"history"`
	Reward     *domain.Reward  `json:"reward"`
	ExpApplied bool            `json:"exp_applied"`
	Message    string          `json:"message,omitempty"`
}

// HistoryService records play sessions and credits the reward ledger.
type HistoryService struct {
	db        *pgxpool.Pool
	histories *repository.HistoryRepository
	players   *repository.PlayerRepository
	ledger    *Ledger
}

func NewHistoryService(db *pgxpool.Pool) *HistoryService {
	return &HistoryService{
		db:        db,
		histories: repository.NewHistoryRepository(db),
		players:   repository.NewPlayerRepository(db),
		ledger:    NewLedger(db),
	}
}

// CreateHistory persists the history row and its ledger credit atomically,
// then bumps the player's experience best-effort. A missing player does not
// roll the history back; the miss is surfaced in the result.
func (s *HistoryService) CreateHistory(ctx context.Context, h *domain.History) (*HistoryResult, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := s.histories.CreateTx(ctx, tx, h); err != nil {
		countMutation("history", err)
		return nil, err
	}
	reward, err := s.ledger.ApplyDeltaTx(ctx, tx, h.WalletID, h.RewardType, domain.RewardDelta{
		Available: h.RewardNumber,
		Exp:       h.ExpNumber,
	})
	if err != nil {
		countMutation("history", err)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		countMutation("history", err)
		return nil, err
	}
	countMutation("history", nil)

	result := &HistoryResult{History: h, Reward: reward, ExpApplied: true}

	if _, err := s.players.AddExp(ctx, h.WalletID, h.PlayerID, h.ExpNumber); err != nil {
		result.ExpApplied = false
		if errors.Is(err, pgx.ErrNoRows) {
			result.Message = "player does not exist, experience not applied"
		} else {
			result.Message = "experience update failed"
			logger.Error("history exp update failed", "history_id", h.ID, "player_id", h.PlayerID, "error", err)
		}
	}

	return result, nil
}

// GetByWallet lists the wallet's history rows
func (s *HistoryService) GetByWallet(ctx context.Context, walletID string, limit, offset int) ([]domain.History, error) {
	return s.histories.GetByWallet(ctx, walletID, limit, offset)
}

// TopRewards returns the leaderboard over [start, end+1day)
func (s *HistoryService) TopRewards(ctx context.Context, start, end time.Time, activityName string, limit int) ([]domain.TopRewardEntry, error) {
	return s.histories.TopRewards(ctx, start, end, activityName, limit)
}

// GetDailyByWallet groups a wallet's history rows by UTC calendar day over
// [startDate, startDate+2days).
func (s *HistoryService) GetDailyByWallet(ctx context.Context, walletID string, startDate time.Time) ([]domain.DailyHistory, error) {
	start := startDate.UTC().Truncate(24 * time.Hour)
	entries, err := s.histories.GetByWalletInRange(ctx, walletID, start, start.Add(48*time.Hour))
	if err != nil {
		return nil, err
	}
	return GroupHistoriesByDay(entries, start, 2), nil
}

// GroupHistoriesByDay buckets history rows into days consecutive UTC
// calendar days starting at start. Days without entries still appear, with
// zero totals.
func GroupHistoriesByDay(entries []domain.History, start time.Time, days int) []domain.DailyHistory {
	grouped := make([]domain.DailyHistory, days)
	for i := range grouped {
		grouped[i].Date = start.Add(time.Duration(i) * 24 * time.Hour).Format("2006-01-02")
	}

	for _, e := range entries {
		created := e.CreatedAt.UTC()
		// integer division truncates toward zero, so entries shortly
		// before start would land in bucket 0 without this check
		if created.Before(start) {
			continue
		}
		i := int(created.Sub(start) / (24 * time.Hour))
		if i >= days {
			continue
		}
		grouped[i].TotalExp += e.ExpNumber
		grouped[i].TotalReward += e.RewardNumber
		grouped[i].Entries = append(grouped[i].Entries, e)
	}
	return grouped
}
