package service

import (
	"context"

	"gamefi_backend/internal/config"
	"gamefi_backend/internal/domain"
	"gamefi_backend/internal/logger"
	"gamefi_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClaimService records off-system payout claims against the reward ledger.
// The ledger effect depends on the configured claim mode:
//
//   - mint: the net-of-fee amount is credited to the available balance
//   - transfer: the claimed amount moves from available to withdrawn,
//     without a fee (claiming re-labels already-earned reward)
//
// Either way the claim row is only marked Success after the ledger
// transaction commits; a failed ledger write leaves it Submitted.
type ClaimService struct {
	db         *pgxpool.Pool
	claims     *repository.ClaimRepository
	rewards    *repository.RewardRepository
	ledger     *Ledger
	mode       config.ClaimMode
	feePercent float64
}

func NewClaimService(db *pgxpool.Pool, mode config.ClaimMode, feePercent float64) *ClaimService {
	return &ClaimService{
		db:         db,
		claims:     repository.NewClaimRepository(db),
		rewards:    repository.NewRewardRepository(db),
		ledger:     NewLedger(db),
		mode:       mode,
		feePercent: feePercent,
	}
}

// CreateClaim logs the claim event and applies its ledger effect.
func (s *ClaimService) CreateClaim(ctx context.Context, walletID string, amount float64, rewardType, transactionID string) (*domain.Claim, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	claim := &domain.Claim{
		WalletID:          walletID,
		ClaimRewardAmount: amount,
		ClaimRewardType:   rewardType,
		ClaimStatus:       domain.ClaimStatusSubmitted,
		TransactionID:     transactionID,
	}
	if err := s.claims.Create(ctx, claim); err != nil {
		return nil, err
	}

	var err error
	if s.mode == config.ClaimModeTransfer {
		err = s.transfer(ctx, claim)
	} else {
		err = s.mint(ctx, claim)
	}
	countMutation("claim", err)
	if err != nil {
		logger.Error("claim ledger write failed", "claim_id", claim.ID, "wallet_id", walletID, "error", err)
		return claim, err
	}

	claim.ClaimStatus = domain.ClaimStatusSuccess
	return claim, nil
}

func (s *ClaimService) mint(ctx context.Context, claim *domain.Claim) error {
	net := ClaimNet(claim.ClaimRewardAmount, s.feePercent)

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := s.ledger.ApplyDeltaTx(ctx, tx, claim.WalletID, claim.ClaimRewardType, domain.RewardDelta{
		Available: net,
	}); err != nil {
		return err
	}
	if err := s.claims.UpdateStatusTx(ctx, tx, claim.ID, domain.ClaimStatusSuccess); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *ClaimService) transfer(ctx context.Context, claim *domain.Claim) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	reward, err := s.rewards.GetForUpdateTx(ctx, tx, claim.WalletID, claim.ClaimRewardType)
	if err != nil {
		return err
	}
	if reward == nil {
		return ErrNothingToClaim
	}
	if reward.RewardAvailable < claim.ClaimRewardAmount {
		return ErrInsufficientFunds
	}

	reward.RewardAvailable -= claim.ClaimRewardAmount
	reward.RewardWithdrawn += claim.ClaimRewardAmount
	reward.RewardAmount = reward.RewardAvailable + reward.RewardWithdrawn
	if err := s.rewards.UpdateBalancesTx(ctx, tx, reward); err != nil {
		return err
	}
	if err := s.claims.UpdateStatusTx(ctx, tx, claim.ID, domain.ClaimStatusSuccess); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetByWallet lists the wallet's claim events
func (s *ClaimService) GetByWallet(ctx context.Context, walletID string, limit, offset int) ([]domain.Claim, error) {
	return s.claims.GetByWallet(ctx, walletID, limit, offset)
}
