package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Version is reported by the index endpoints
const Version = "2.0.0"

// endpoints maps each route to its description
var endpoints = gin.H{
	"users": gin.H{
		"POST /api/users/signup": "sign up a user",
		"POST /api/users/login":  "issue a login token",
		"GET /api/users/me":      "current user profile",
		"GET /api/users":         "list users",
	},
	"stores": gin.H{
		"POST /api/stores": "create a store",
		"GET /api/stores":  "list stores",
	},
	"employees": gin.H{
		"POST /api/employees": "register an employee",
		"GET /api/employees":  "list employees",
	},
}

// HomeHandler reports that the service is running
func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "bungeoppang stand management is running",
			"version":   Version,
			"features":  []string{"User Management", "Store Management", "Employee Management"},
			"endpoints": endpoints,
		})
	}
}

// APIIndexHandler lists the API endpoints
func APIIndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":     "bungeoppang API v" + Version,
			"description": "user, store and employee management",
			"endpoints":   endpoints,
		})
	}
}
