package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateClaimRequest struct {
	WalletID          string  `json:"walletID" binding:"required"`
	ClaimRewardAmount float64 `json:"claimRewardAmount" binding:"required"`
	ClaimRewardType   string  `json:"claimRewardType" binding:"required"`
	TransactionID     string  `json:"transactionID"`
}

// CreateClaim logs a payout claim and applies its ledger effect
func (h *Handler) CreateClaim(c *gin.Context) {
	var req CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "walletID, claimRewardAmount and claimRewardType are required"})
		return
	}

	claim, err := h.Claims.CreateClaim(c.Request.Context(), req.WalletID, req.ClaimRewardAmount, req.ClaimRewardType, req.TransactionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"claim": claim})
}

// GetClaims lists a wallet's claim events
func (h *Handler) GetClaims(c *gin.Context) {
	limit, offset := pagination(c)
	claims, err := h.Claims.GetByWallet(c.Request.Context(), c.Param("walletID"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": claims})
}
