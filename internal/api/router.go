package api

import (
	"bungeoppang/internal/middleware" // Custom package for middleware
	"bungeoppang/internal/service"    // Business operations
	"bungeoppang/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// NewRouter wires every route onto a gin engine
func NewRouter(svc *service.Service, cache *utils.ListCache, jwtSecret string) *gin.Engine {
	r := gin.Default() // Gin router instance

	r.GET("/", HomeHandler()) // Service banner

	apiGroup := r.Group("/api")
	apiGroup.GET("", APIIndexHandler()) // Endpoint index

	// User routes
	apiGroup.POST("/users/signup", SignupHandler(svc, cache))                            // Signup endpoint
	apiGroup.POST("/users/login", LoginHandler(svc, jwtSecret))                          // Login endpoint
	apiGroup.GET("/users/me", middleware.JWTAuthMiddleware(jwtSecret, svc), MeHandler()) // Profile endpoint (JWT)
	apiGroup.GET("/users", ListUsersHandler(svc, cache))                                 // List users endpoint

	// Store routes
	apiGroup.POST("/stores", CreateStoreHandler(svc, cache)) // Create store endpoint
	apiGroup.GET("/stores", ListStoresHandler(svc, cache))   // List stores endpoint

	// Employee routes
	apiGroup.POST("/employees", RegisterEmployeeHandler(svc, cache)) // Register employee endpoint
	apiGroup.GET("/employees", ListEmployeesHandler(svc, cache))     // List employees endpoint

	return r
}
