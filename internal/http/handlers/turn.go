package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetTurn returns the active-window turn row, creating a fresh one when the
// window has none. Calling twice within the window returns the same row.
func (h *Handler) GetTurn(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("playerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "playerID must be an integer"})
		return
	}

	turn, err := h.Turns.GetOrInit(c.Request.Context(), c.Param("walletID"), playerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"turn": turn})
}

type UpdateTurnRequest struct {
	TurnNumber *int `json:"turnNumber" binding:"required"`
}

// UpdateTurn sets the consumed turn count on the active-window row.
// It never creates one.
func (h *Handler) UpdateTurn(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("playerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "playerID must be an integer"})
		return
	}

	var req UpdateTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "turnNumber is required"})
		return
	}

	turn, err := h.Turns.Update(c.Request.Context(), c.Param("walletID"), playerID, *req.TurnNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"turn": turn})
}
