package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/officehub-dev/officehub/internal/auth"
	"github.com/officehub-dev/officehub/internal/models"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// login authenticates a worker. On success the envelope's data field is the
// signed token string itself, which clients store and attach to every
// subsequent request.
func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "username and password are required")
		return
	}

	// Find worker by username
	var worker models.Worker
	if err := s.db.Where("username = ?", req.Username).First(&worker).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			fail(c, "Invalid username or password")
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find worker")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if worker.Status != 1 {
		fail(c, "Account disabled")
		return
	}

	// Verify password
	if err := auth.VerifyPassword(req.Password, worker.PasswordHash); err != nil {
		fail(c, "Invalid username or password")
		return
	}

	// Generate JWT token
	token, err := auth.GenerateToken(worker.ID, worker.Username, worker.Position)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	s.logger.Info().Int64("worker_id", worker.ID).Str("username", worker.Username).Msg("Worker logged in")

	ok(c, token)
}
