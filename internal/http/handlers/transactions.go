package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTransactions returns a wallet's merged deposit and withdrawal history.
// The limit is split evenly between the two event kinds.
func (h *Handler) GetTransactions(c *gin.Context) {
	walletID := c.Param("walletID")
	limit, offset := pagination(c)
	half := limit / 2
	if half < 1 {
		half = 1
	}

	ctx := c.Request.Context()
	deposits, err := h.Deposits.GetByWallet(ctx, walletID, half, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	withdrawals, err := h.Withdrawals.GetByWallet(ctx, walletID, half, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deposits":    deposits,
		"withdrawals": withdrawals,
	})
}
