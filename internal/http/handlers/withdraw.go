package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CreateWithdrawRequest struct {
	WalletID     string  `json:"walletID" binding:"required"`
	TokenBalance float64 `json:"tokenBalance" binding:"required"`
	TokenType    string  `json:"tokenType" binding:"required"`
}

// CreateWithdraw logs a withdrawal request and debits the reward ledger
func (h *Handler) CreateWithdraw(c *gin.Context) {
	var req CreateWithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "walletID, tokenBalance and tokenType are required"})
		return
	}

	withdrawal, err := h.Withdrawals.CreateWithdraw(c.Request.Context(), req.WalletID, req.TokenBalance, req.TokenType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"withdraw": withdrawal})
}

// GetWithdrawals lists a wallet's withdrawal events
func (h *Handler) GetWithdrawals(c *gin.Context) {
	limit, offset := pagination(c)
	withdrawals, err := h.Withdrawals.GetByWallet(c.Request.Context(), c.Param("walletID"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": withdrawals})
}

// pagination reads limit/skip query params with the defaults the listing
// endpoints share.
func pagination(c *gin.Context) (limit, offset int) {
	limit = 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.Query("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
