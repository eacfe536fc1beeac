package handlers

import (
	"net/http"
	"strings"
	"time"

	"sweetdots/config"
	"sweetdots/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL is how long a staff session token stays valid.
const sessionTTL = 12 * time.Hour

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginHandler checks the shared staff password against the configured
// bcrypt hash and issues a session token.
func LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	hash := config.AppConfig.AccessPasswordHash
	if hash == "" {
		logger.Error("ACCESS_PASSWORD_HASH is not configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Access gate is not configured"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := utils.GenerateToken("staff", sessionTTL)
	if err != nil {
		logger.Error("Failed to sign session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(sessionTTL.Seconds()),
	})
}

// LogoutHandler revokes the presented session token for the remainder of
// its lifetime.
func LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing Authorization header"})
		return
	}

	if err := utils.RevokeToken(c.Request.Context(), tokenString, sessionTTL); err != nil {
		logger.Error("Failed to revoke session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
