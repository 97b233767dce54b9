package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateDepositRequest struct {
	WalletID     string  `json:"walletID" binding:"required"`
	TokenBalance float64 `json:"tokenBalance" binding:"required"`
	TokenType    string  `json:"tokenType" binding:"required"`
}

// CreateDeposit logs a deposit and credits the reward ledger
func (h *Handler) CreateDeposit(c *gin.Context) {
	var req CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "walletID, tokenBalance and tokenType are required"})
		return
	}

	deposit, err := h.Deposits.CreateDeposit(c.Request.Context(), req.WalletID, req.TokenBalance, req.TokenType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deposit": deposit})
}

// GetDeposits lists a wallet's deposit events
func (h *Handler) GetDeposits(c *gin.Context) {
	limit, offset := pagination(c)
	deposits, err := h.Deposits.GetByWallet(c.Request.Context(), c.Param("walletID"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deposits": deposits})
}
