package handlers

import (
	"net/http"

	"gamefi_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetRewards returns a wallet's ledger rows, or one row when rewardType is
// given. A missing row is reported as a zero balance, not an error.
func (h *Handler) GetRewards(c *gin.Context) {
	walletID := c.Param("walletID")

	if rewardType := c.Query("rewardType"); rewardType != "" {
		reward, err := h.Ledger.GetByWalletAndType(c.Request.Context(), walletID, rewardType)
		if err != nil {
			respondError(c, err)
			return
		}
		if reward == nil {
			reward = &domain.Reward{WalletID: walletID, RewardType: rewardType}
		}
		c.JSON(http.StatusOK, gin.H{"reward": reward})
		return
	}

	rewards, err := h.Ledger.ListByWallet(c.Request.Context(), walletID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// TopRewards returns the largest ledger rows of one type in a date window
func (h *Handler) TopRewards(c *gin.Context) {
	start, end, ok := dateWindow(c)
	if !ok {
		return
	}

	rewardType := c.Query("rewardType")
	if rewardType == "" {
		rewardType = domain.RewardTypeTOC
	}

	limit, _ := pagination(c)
	rewards, err := h.Ledger.TopByType(c.Request.Context(), rewardType, start, end, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}
