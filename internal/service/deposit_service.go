package service

import (
	"context"

	"gamefi_backend/internal/domain"
	"gamefi_backend/internal/logger"
	"gamefi_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DepositService credits the reward ledger from inbound token events.
type DepositService struct {
	db       *pgxpool.Pool
	deposits *repository.DepositRepository
	ledger   *Ledger
}

func NewDepositService(db *pgxpool.Pool) *DepositService {
	return &DepositService{
		db:       db,
		deposits: repository.NewDepositRepository(db),
		ledger:   NewLedger(db),
	}
}

// CreateDeposit logs the deposit event and credits the matching ledger row.
// The event row starts Fail and is promoted to Success in the same
// transaction as the ledger credit; if the credit fails the row stays Fail
// and the caller must re-submit. Returns the deposit, not the reward.
func (s *DepositService) CreateDeposit(ctx context.Context, walletID string, tokenBalance float64, tokenType string) (*domain.Deposit, error) {
	if tokenBalance <= 0 {
		return nil, ErrInvalidAmount
	}

	deposit := &domain.Deposit{
		WalletID:     walletID,
		TokenBalance: tokenBalance,
		TokenType:    tokenType,
		Status:       domain.EventStatusFail,
	}
	if err := s.deposits.Create(ctx, deposit); err != nil {
		return nil, err
	}

	err := s.credit(ctx, deposit)
	countMutation("deposit", err)
	if err != nil {
		logger.Error("deposit credit failed", "deposit_id", deposit.ID, "wallet_id", walletID, "error", err)
		return deposit, err
	}

	deposit.Status = domain.EventStatusSuccess
	return deposit, nil
}

func (s *DepositService) credit(ctx context.Context, deposit *domain.Deposit) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := s.ledger.ApplyDeltaTx(ctx, tx, deposit.WalletID, deposit.TokenType, domain.RewardDelta{
		Available: deposit.TokenBalance,
	}); err != nil {
		return err
	}
	if err := s.deposits.UpdateStatusTx(ctx, tx, deposit.ID, domain.EventStatusSuccess); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetByWallet lists the wallet's deposit events
func (s *DepositService) GetByWallet(ctx context.Context, walletID string, limit, offset int) ([]domain.Deposit, error) {
	return s.deposits.GetByWallet(ctx, walletID, limit, offset)
}
