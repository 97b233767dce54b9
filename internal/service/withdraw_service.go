package service

import (
	"context"

	"gamefi_backend/internal/domain"
	"gamefi_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WithdrawService debits the reward ledger for outbound token requests.
// Settlement is external, so an accepted request stays Pending.
type WithdrawService struct {
	db          *pgxpool.Pool
	withdrawals *repository.WithdrawalRepository
	rewards     *repository.RewardRepository
	feePercent  float64
}

func NewWithdrawService(db *pgxpool.Pool, feePercent float64) *WithdrawService {
	return &WithdrawService{
		db:          db,
		withdrawals: repository.NewWithdrawalRepository(db),
		rewards:     repository.NewRewardRepository(db),
		feePercent:  feePercent,
	}
}

// CreateWithdraw logs the withdrawal event, then debits the fee-adjusted
// amount from the ledger row under a row lock. Insufficient balance leaves
// the event row Fail and returns ErrInsufficientFunds; on success the row
// becomes Pending in the same transaction as the debit.
func (s *WithdrawService) CreateWithdraw(ctx context.Context, walletID string, tokenBalance float64, tokenType string) (*domain.Withdrawal, error) {
	if tokenBalance <= 0 {
		return nil, ErrInvalidAmount
	}

	withdrawal := &domain.Withdrawal{
		WalletID:     walletID,
		TokenBalance: tokenBalance,
		TokenType:    tokenType,
		Status:       domain.EventStatusFail,
	}
	if err := s.withdrawals.Create(ctx, withdrawal); err != nil {
		return nil, err
	}

	err := s.debit(ctx, withdrawal)
	countMutation("withdraw", err)
	if err != nil {
		return withdrawal, err
	}

	withdrawal.Status = domain.EventStatusPending
	return withdrawal, nil
}

func (s *WithdrawService) debit(ctx context.Context, withdrawal *domain.Withdrawal) error {
	debit := WithdrawDebit(withdrawal.TokenBalance, s.feePercent)

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	reward, err := s.rewards.GetForUpdateTx(ctx, tx, withdrawal.WalletID, withdrawal.TokenType)
	if err != nil {
		return err
	}
	// the check runs against the balance being debited; the gross amount
	// also counts funds already moved to withdrawn
	if reward == nil || reward.RewardAvailable < debit {
		return ErrInsufficientFunds
	}

	reward.RewardAvailable -= debit
	reward.RewardAmount = reward.RewardAvailable + reward.RewardWithdrawn
	if err := s.rewards.UpdateBalancesTx(ctx, tx, reward); err != nil {
		return err
	}
	if err := s.withdrawals.UpdateStatusTx(ctx, tx, withdrawal.ID, domain.EventStatusPending); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetByWallet lists the wallet's withdrawal events
func (s *WithdrawService) GetByWallet(ctx context.Context, walletID string, limit, offset int) ([]domain.Withdrawal, error) {
	return s.withdrawals.GetByWallet(ctx, walletID, limit, offset)
}
