package handlers

import (
	"errors"
	"net/http"

	"gamefi_backend/internal/config"
	"gamefi_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB          *pgxpool.Pool
	Auth        *service.AuthService
	Ledger      *service.Ledger
	Deposits    *service.DepositService
	Withdrawals *service.WithdrawService
	Claims      *service.ClaimService
	Histories   *service.HistoryService
	Turns       *service.TurnService
	Players     *service.PlayerService
}

func NewHandler(db *pgxpool.Pool, cfg *config.Config) *Handler {
	return &Handler{
		DB:          db,
		Auth:        service.NewAuthService(db),
		Ledger:      service.NewLedger(db),
		Deposits:    service.NewDepositService(db),
		Withdrawals: service.NewWithdrawService(db, cfg.WithdrawFeePercent),
		Claims:      service.NewClaimService(db, cfg.ClaimMode, cfg.ClaimFeePercent),
		Histories:   service.NewHistoryService(db),
		Turns:       service.NewTurnService(db),
		Players:     service.NewPlayerService(db),
	}
}

// respondError maps service errors onto the API's error contract:
// business-rule rejections come back as a 200 payload with a message field,
// lookup and auth failures carry real HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInsufficientFunds):
		c.JSON(http.StatusOK, gin.H{"message": "Your amount have not enough to withdraw!"})
	case errors.Is(err, service.ErrNotEnoughToUse):
		c.JSON(http.StatusOK, gin.H{"message": "Your amount not enough to use! please deposit more."})
	case errors.Is(err, service.ErrNothingToClaim):
		c.JSON(http.StatusOK, gin.H{"message": "No available reward to claim!"})
	case errors.Is(err, service.ErrTurnNotFound):
		c.JSON(http.StatusOK, gin.H{"message": "record is not exist!"})
	case errors.Is(err, service.ErrTurnLimitExceeded):
		c.JSON(http.StatusOK, gin.H{"message": "turn number exceeds the daily limit"})
	case errors.Is(err, service.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
	case errors.Is(err, service.ErrAddressTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "publicAddress must be unique"})
	case errors.Is(err, service.ErrUnknownAddress), errors.Is(err, service.ErrBadSignature):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPlayerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
