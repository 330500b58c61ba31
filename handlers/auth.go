package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login forwards credentials to the backend and stores the returned
// token and profile in the session store.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.API.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": "Invalid email or password"})
		return
	}

	if err := h.Session.Save(res.Token, res.User); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    res.User,
	})
}

// Logout clears the stored session.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Session.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile returns the stored user profile.
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.Session.User()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":       user,
		"expires_at": h.Session.ExpiresAt(),
	})
}
