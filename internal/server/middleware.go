package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/officehub-dev/officehub/internal/auth"
	"github.com/officehub-dev/officehub/internal/models"
)

const (
	bearerPrefix = "Bearer "
)

var (
	ErrMissingAuthHeader = errors.New("missing authorization header")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidToken      = errors.New("invalid token")
	ErrWorkerNotFound    = errors.New("worker not found")
)

func setSession(c *gin.Context, sessionData *auth.SessionData) {
	c.Set("session", sessionData)
}

func GetSessionData(c *gin.Context) (*auth.SessionData, bool) {
	session, exists := c.Get("session")
	if !exists {
		return nil, false
	}

	sessionData, ok := session.(*auth.SessionData)
	return sessionData, ok
}

// extractBearerToken pulls the raw token out of the Authorization header.
// The Bearer prefix is optional: browser clients historically sent the raw
// token, so both forms are accepted.
func extractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	token := strings.TrimPrefix(authHeader, bearerPrefix)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

func respondUnauthorized(c *gin.Context, log zerolog.Logger, err error, message string) {
	log.Warn().Err(err).Msg(message)
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	c.Abort()
}

// JWTAuthMiddleware validates JWT tokens on every protected route. A failed
// check answers with HTTP 401, which clients treat as session expiry.
func JWTAuthMiddleware(db *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract token from Authorization header
		authHeader := c.GetHeader("Authorization")
		token, err := extractBearerToken(authHeader)
		if err != nil {
			var message string
			switch err {
			case ErrMissingAuthHeader:
				message = "Missing authorization header"
			case ErrEmptyToken:
				message = "Empty token"
			}
			respondUnauthorized(c, log, err, message)
			return
		}

		// Validate JWT token
		claims, err := auth.ValidateToken(token)
		if err != nil {
			respondUnauthorized(c, log, ErrInvalidToken, "Invalid or expired token")
			return
		}

		// Verify worker exists and is still active
		var worker models.Worker
		if err := db.Where("id = ?", claims.WorkerID).First(&worker).Error; err != nil {
			log.Error().Err(err).Int64("worker_id", claims.WorkerID).Msg("Worker not found")
			respondUnauthorized(c, log, ErrWorkerNotFound, "Worker not found")
			return
		}
		if worker.Status != 1 {
			respondUnauthorized(c, log, errors.New("worker disabled"), "Account disabled")
			return
		}

		// Set session data
		sessionData := &auth.SessionData{
			WorkerID: worker.ID,
			Username: worker.Username,
			Position: worker.Position,
		}
		setSession(c, sessionData)

		c.Next()
	}
}
