package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const contextUserID = "user_id"

// TokenValidator resolves a session token to a user id
type TokenValidator interface {
	ValidateAccessToken(token string) (int64, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's user id in the gin context
func RequireAuth(tokens TokenValidator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing or invalid token"})
			return
		}

		userID, err := tokens.ValidateAccessToken(token)
		if err != nil {
			logger.Debug("Rejected token", zap.String("request_id", RequestIDFrom(c)), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing or invalid token"})
			return
		}

		c.Set(contextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id, or 0 outside RequireAuth
func UserID(c *gin.Context) int64 {
	return c.GetInt64(contextUserID)
}

func bearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
