package api

import (
	"bungeoppang/internal/service" // Business operations
	"bungeoppang/internal/utils"   // Utility functions
	"net/http"                     // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ListUsersHandler returns all active users
func ListUsersHandler(svc *service.Service, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var users []service.UserSummary // Slice to hold users
		// Pin the listing version before reading, then serve from cache when possible
		entry := cache.Entry(ctx, utils.UsersList)
		if !entry.Load(ctx, &users) {
			var err error
			if users, err = svc.ListUsers(ctx); err != nil {
				respondError(c, err, logrus.Fields{}, "User listing")
				return
			}
			entry.Save(ctx, users) // Cache the listing for future requests
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "users fetched successfully",
			"users":   users,      // List of users
			"count":   len(users), // Number of users
		})
	}
}

// ListStoresHandler returns all active stores
func ListStoresHandler(svc *service.Service, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var stores []service.StoreSummary // Slice to hold stores
		// Pin the listing version before reading, then serve from cache when possible
		entry := cache.Entry(ctx, utils.StoresList)
		if !entry.Load(ctx, &stores) {
			var err error
			if stores, err = svc.ListStores(ctx); err != nil {
				respondError(c, err, logrus.Fields{}, "Store listing")
				return
			}
			entry.Save(ctx, stores) // Cache the listing for future requests
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "stores fetched successfully",
			"stores":  stores,      // List of stores
			"count":   len(stores), // Number of stores
		})
	}
}

// ListEmployeesHandler returns all active employees with their user and store
func ListEmployeesHandler(svc *service.Service, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var employees []service.EmployeeSummary // Slice to hold employees
		// Pin the listing version before reading, then serve from cache when possible
		entry := cache.Entry(ctx, utils.EmployeesList)
		if !entry.Load(ctx, &employees) {
			var err error
			if employees, err = svc.ListEmployees(ctx); err != nil {
				respondError(c, err, logrus.Fields{}, "Employee listing")
				return
			}
			entry.Save(ctx, employees) // Cache the listing for future requests
		}
		c.JSON(http.StatusOK, gin.H{
			"message":   "employees fetched successfully",
			"employees": employees,      // List of employees
			"count":     len(employees), // Number of employees
		})
	}
}
