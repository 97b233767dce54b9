package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	PublicAddress string `json:"publicAddress" binding:"required"`
	WalletID      string `json:"walletID"`
}

// Register creates a user for a wallet address
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicAddress is required"})
		return
	}

	user, err := h.Auth.Register(c.Request.Context(), req.PublicAddress, req.WalletID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type LoginRequest struct {
	PublicAddress string `json:"publicAddress" binding:"required"`
	Signature     string `json:"signature" binding:"required"`
}

// Login verifies the nonce signature and issues a session token
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request should have signature and publicAddress"})
		return
	}

	token, user, err := h.Auth.Login(c.Request.Context(), req.PublicAddress, req.Signature)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": token,
		"user": gin.H{
			"id":             user.ID,
			"public_address": user.PublicAddress,
		},
	})
}

// Check returns the user record (and so the current nonce) for an address
func (h *Handler) Check(c *gin.Context) {
	publicAddress := c.Query("publicAddress")
	if publicAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicAddress is required"})
		return
	}

	user, err := h.Auth.Check(c.Request.Context(), publicAddress)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil, "message": "publicAddress is not registered"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
