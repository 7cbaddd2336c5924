package middleware

import (
	"bungeoppang/internal/apperror" // Error taxonomy
	"bungeoppang/internal/service"  // User lookup results
	"bungeoppang/internal/utils"    // JWT utility functions
	"context"                       // Request context
	"net/http"                      // HTTP status codes
	"strings"                       // String manipulation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID = "userID" // Authenticated user's ID
	ContextUser   = "user"   // Authenticated user's profile
)

// UserLookup resolves the active user a token names; *service.Service satisfies it
type UserLookup interface {
	GetUser(ctx context.Context, id uint) (*service.UserSummary, error)
}

// JWTAuthMiddleware validates JWT tokens and loads the active user they name.
// A valid token for a user that no longer exists is answered with the lookup's status.
func JWTAuthMiddleware(secret string, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil || claims.UserID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		// Resolve the user behind the token
		user, err := users.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			kind := apperror.KindOf(err) // Untyped errors count as internal
			message := "internal server error"
			if typed := apperror.As(err); typed != nil && kind != apperror.KindInternal {
				message = typed.Message // Client-facing message
			}
			entry := logrus.WithFields(logrus.Fields{
				"user_id": claims.UserID, // Token subject
				"error":   err.Error(),   // Error message
			})
			if kind == apperror.KindInternal {
				entry.Error("Token user lookup failed")
			} else {
				entry.Info("Token user rejected")
			}
			c.AbortWithStatusJSON(kind.HTTPStatus(), gin.H{"error": message})
			return
		}
		c.Set(ContextUserID, claims.UserID) // Store userID in context
		c.Set(ContextUser, user)            // Store profile in context
		c.Next()                            // Proceed to the next handler
	}
}

// UserID returns the authenticated user's ID set by JWTAuthMiddleware
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentUser returns the authenticated user's profile set by JWTAuthMiddleware
func CurrentUser(c *gin.Context) (*service.UserSummary, bool) {
	v, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*service.UserSummary)
	return user, ok && user != nil
}
