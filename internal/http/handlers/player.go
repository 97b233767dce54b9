package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CreatePlayerRequest struct {
	WalletID   string `json:"walletID" binding:"required"`
	StarNumber int    `json:"starNumber" binding:"required,min=1,max=5"`
	SkinName   string `json:"skinName"`
	TokenID    string `json:"tokenID"`
}

// CreatePlayer inserts a player with zeroed resources
func (h *Handler) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "walletID and starNumber (1-5) are required"})
		return
	}

	player, err := h.Players.Create(c.Request.Context(), req.WalletID, req.StarNumber, req.SkinName, req.TokenID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"player": player})
}

// GetPlayer returns one player by id
func (h *Handler) GetPlayer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	player, err := h.Players.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"player": player})
}

// ListPlayers returns a wallet's players
func (h *Handler) ListPlayers(c *gin.Context) {
	walletID := c.Query("walletID")
	if walletID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "walletID is required"})
		return
	}

	limit, offset := pagination(c)
	players, err := h.Players.ListByWallet(c.Request.Context(), walletID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

type SummonPlayerRequest struct {
	WalletID string `json:"walletID" binding:"required"`
}

// SummonPlayer debits the SNCT summon cost and rolls a star tier and skin
func (h *Handler) SummonPlayer(c *gin.Context) {
	var req SummonPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "walletID is required"})
		return
	}

	star, skin, err := h.Players.Summon(c.Request.Context(), req.WalletID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"starNumber": star, "skinName": skin})
}

// BootMana refills a player's mana at a TOC cost, atomically
func (h *Handler) BootMana(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	player, cost, err := h.Turns.BootMana(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"player": player, "tocCost": cost})
}

type BootHPRequest struct {
	HP int `json:"hp" binding:"required"`
}

// BootHP adds hit points to a player
func (h *Handler) BootHP(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var req BootHPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hp is required"})
		return
	}

	player, err := h.Players.BootHP(c.Request.Context(), id, req.HP)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"player": player})
}
