package service

import (
	"context"
	"errors"
	"time"

	"gamefi_backend/internal/domain"
	"gamefi_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TurnService manages the per-day action allowance and the mana refill.
type TurnService struct {
	db      *pgxpool.Pool
	turns   *repository.TurnRepository
	players *repository.PlayerRepository
	rewards *repository.RewardRepository
}

func NewTurnService(db *pgxpool.Pool) *TurnService {
	return &TurnService{
		db:      db,
		turns:   repository.NewTurnRepository(db),
		players: repository.NewPlayerRepository(db),
		rewards: repository.NewRewardRepository(db),
	}
}

// GetOrInit returns the active-window turn row for (wallet, player),
// creating one with turnNumber 0 and the tier-derived limit when the
// window has none. Repeated calls within the window return the same row.
func (s *TurnService) GetOrInit(ctx context.Context, walletID string, playerID int64) (*domain.Turn, error) {
	now := time.Now().UTC()

	turn, err := s.turns.GetActive(ctx, walletID, playerID, now)
	if err != nil {
		return nil, err
	}
	if turn != nil {
		return turn, nil
	}

	star := 0
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player != nil {
		star = player.StarNumber
	}

	turn = &domain.Turn{
		WalletID:   walletID,
		PlayerID:   playerID,
		TurnNumber: 0,
		TurnLimit:  domain.TurnLimitForStar(star),
	}
	if err := s.turns.Create(ctx, turn); err != nil {
		return nil, err
	}
	return turn, nil
}

// Update sets the consumed turn count on the active-window row. It never
// creates a row, and rejects counts outside [0, turnLimit].
func (s *TurnService) Update(ctx context.Context, walletID string, playerID int64, turnNumber int) (*domain.Turn, error) {
	now := time.Now().UTC()

	turn, err := s.turns.GetActive(ctx, walletID, playerID, now)
	if err != nil {
		return nil, err
	}
	if turn == nil {
		return nil, ErrTurnNotFound
	}
	if turnNumber < 0 || turnNumber > turn.TurnLimit {
		return nil, ErrTurnLimitExceeded
	}

	if err := s.turns.UpdateNumber(ctx, turn.ID, turnNumber); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTurnNotFound
		}
		return nil, err
	}
	turn.TurnNumber = turnNumber
	return turn, nil
}

// BootMana refills a player's mana to the tier target, charging the
// pro-rated TOC cost against the wallet's reward balance. The reward debit
// and the mana write commit together or not at all.
func (s *TurnService) BootMana(ctx context.Context, playerID int64) (*domain.Player, float64, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var player domain.Player
	err = tx.QueryRow(ctx, `
		SELECT id, wallet_id, star_number, mana FROM players WHERE id = $1 FOR UPDATE
	`, playerID).Scan(&player.ID, &player.WalletID, &player.StarNumber, &player.Mana)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, ErrPlayerNotFound
		}
		return nil, 0, err
	}

	target := domain.ManaForStar(player.StarNumber)
	manaDelta := target - player.Mana
	if manaDelta <= 0 {
		return &player, 0, nil
	}
	cost := domain.ManaBootCost(player.StarNumber, manaDelta)

	reward, err := s.rewards.GetForUpdateTx(ctx, tx, player.WalletID, domain.RewardTypeTOC)
	if err != nil {
		return nil, 0, err
	}
	if reward == nil || cost > reward.RewardAvailable {
		countMutation("boot_mana", ErrNotEnoughToUse)
		return nil, 0, ErrNotEnoughToUse
	}

	reward.RewardAvailable -= cost
	reward.RewardAmount = reward.RewardAvailable + reward.RewardWithdrawn
	if err := s.rewards.UpdateBalancesTx(ctx, tx, reward); err != nil {
		return nil, 0, err
	}

	if _, err := tx.Exec(ctx, `UPDATE players SET mana = $2 WHERE id = $1`, player.ID, target); err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		countMutation("boot_mana", err)
		return nil, 0, err
	}
	countMutation("boot_mana", nil)

	player.Mana = target
	return &player, cost, nil
}
