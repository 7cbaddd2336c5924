package api

import (
	"bungeoppang/internal/middleware" // Authenticated user lookup
	"bungeoppang/internal/service"    // Business operations
	"bungeoppang/internal/utils"      // Utility functions
	"net/http"                        // HTTP status codes
	"time"                            // Timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// SignupHandler registers a new user
func SignupHandler(svc *service.Service, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateUserInput // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		res, err := svc.CreateUser(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, logrus.Fields{"email": req.Email}, "Signup")
			return
		}
		// Log successful signup
		logrus.WithFields(logrus.Fields{
			"user_id":   res.ID,                          // User ID
			"email":     res.Email,                       // User email
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("User created")
		cache.Invalidate(c.Request.Context(), utils.UsersList) // Invalidate users listing
		// Return success response
		c.JSON(http.StatusCreated, gin.H{
			"message": "user created successfully",
			"user_id": res.ID,    // User ID
			"name":    res.Name,  // Display name
			"email":   res.Email, // User email
		})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(svc *service.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LoginInput // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		userID, err := svc.Authenticate(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, logrus.Fields{"email": req.Email}, "Login")
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(userID, jwtSecret, utils.TokenTTL)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to generate token")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// MeHandler returns the profile of the authenticated user
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c) // Set by JWTAuthMiddleware
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
