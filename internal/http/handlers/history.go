package handlers

import (
	"net/http"
	"time"

	"gamefi_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CreateHistoryRequest struct {
	PlayerID     int64   `json:"playerID" binding:"required"`
	WalletID     string  `json:"walletID" binding:"required"`
	RewardNumber float64 `json:"rewardNumber"`
	ExpNumber    float64 `json:"expNumber"`
	RewardType   string  `json:"rewardType" binding:"required"`
	ActivityName string  `json:"activityName"`
}

// CreateHistory records a play session, credits the reward ledger, and
// bumps player experience best-effort.
func (h *Handler) CreateHistory(c *gin.Context) {
	var req CreateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "playerID, walletID and rewardType are required"})
		return
	}

	result, err := h.Histories.CreateHistory(c.Request.Context(), &domain.History{
		PlayerID:     req.PlayerID,
		WalletID:     req.WalletID,
		RewardNumber: req.RewardNumber,
		ExpNumber:    req.ExpNumber,
		RewardType:   req.RewardType,
		ActivityName: req.ActivityName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHistory lists a wallet's history rows, or groups them by day when a
// startDate is given.
func (h *Handler) GetHistory(c *gin.Context) {
	walletID := c.Param("walletID")

	if v := c.Query("startDate"); v != "" {
		startDate, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD"})
			return
		}
		daily, err := h.Histories.GetDailyByWallet(c.Request.Context(), walletID, startDate)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"days": daily})
		return
	}

	limit, offset := pagination(c)
	histories, err := h.Histories.GetByWallet(c.Request.Context(), walletID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"histories": histories})
}

// TopHistoryRewards returns the leaderboard over a date window
func (h *Handler) TopHistoryRewards(c *gin.Context) {
	start, end, ok := dateWindow(c)
	if !ok {
		return
	}

	limit, _ := pagination(c)
	entries, err := h.Histories.TopRewards(c.Request.Context(), start, end, c.Query("activityName"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"top": entries})
}

// dateWindow reads start/end query params, defaulting both to today.
func dateWindow(c *gin.Context) (start, end time.Time, ok bool) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	start, end = today, today

	var err error
	if v := c.Query("start"); v != "" {
		if start, err = time.Parse("2006-01-02", v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
			return start, end, false
		}
	}
	if v := c.Query("end"); v != "" {
		if end, err = time.Parse("2006-01-02", v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be YYYY-MM-DD"})
			return start, end, false
		}
	}
	return start, end, true
}
