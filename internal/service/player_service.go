package service

import (
	"context"
	"errors"
	"math/rand"

	"gamefi_backend/internal/domain"
	"gamefi_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SummonCost is the SNCT price of rolling a new player.
const SummonCost = 1000

var summonSkins = []string{"Apples", "Bananas", "Pears"}

// PlayerService manages player records and the SNCT summon roll.
type PlayerService struct {
	db      *pgxpool.Pool
	players *repository.PlayerRepository
	rewards *repository.RewardRepository
}

func NewPlayerService(db *pgxpool.Pool) *PlayerService {
	return &PlayerService{
		db:      db,
		players: repository.NewPlayerRepository(db),
		rewards: repository.NewRewardRepository(db),
	}
}

// Create inserts a player with zeroed resources
func (s *PlayerService) Create(ctx context.Context, walletID string, starNumber int, skinName, tokenID string) (*domain.Player, error) {
	player := &domain.Player{
		WalletID:   walletID,
		StarNumber: starNumber,
		SkinName:   skinName,
		TokenID:    tokenID,
	}
	if err := s.players.Create(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Get retrieves a player by id
func (s *PlayerService) Get(ctx context.Context, id int64) (*domain.Player, error) {
	player, err := s.players.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

// ListByWallet lists a wallet's players
func (s *PlayerService) ListByWallet(ctx context.Context, walletID string, limit, offset int) ([]domain.Player, error) {
	return s.players.ListByWallet(ctx, walletID, limit, offset)
}

// Summon debits the SNCT summon cost from the wallet's reward balance and
// rolls a star tier and skin for a new player. The roll itself is returned
// to the caller; minting the token and creating the player row happen in a
// follow-up request once the token id exists.
func (s *PlayerService) Summon(ctx context.Context, walletID string) (starNumber int, skinName string, err error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	reward, err := s.rewards.GetForUpdateTx(ctx, tx, walletID, domain.RewardTypeSNCT)
	if err != nil {
		return 0, "", err
	}
	if reward == nil || reward.RewardAvailable < SummonCost {
		countMutation("summon", ErrNotEnoughToUse)
		return 0, "", ErrNotEnoughToUse
	}

	reward.RewardAvailable -= SummonCost
	reward.RewardAmount = reward.RewardAvailable + reward.RewardWithdrawn
	if err := s.rewards.UpdateBalancesTx(ctx, tx, reward); err != nil {
		return 0, "", err
	}
	if err := tx.Commit(ctx); err != nil {
		countMutation("summon", err)
		return 0, "", err
	}
	countMutation("summon", nil)

	return summonStar(), summonSkins[rand.Intn(len(summonSkins))], nil
}

// summonStar rolls a star tier. The distribution is uneven on purpose:
// tier 1 is twice as likely as the others and tier 4 never drops.
func summonStar() int {
	n := rand.Intn(5)
	switch n {
	case 0:
		return 1
	case 4:
		return 5
	default:
		return n
	}
}

// BootHP adds hit points to a player
func (s *PlayerService) BootHP(ctx context.Context, playerID int64, hpDelta int) (*domain.Player, error) {
	if _, err := s.players.AddHP(ctx, playerID, hpDelta); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return s.Get(ctx, playerID)
}
