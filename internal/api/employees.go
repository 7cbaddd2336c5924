package api

import (
	"bungeoppang/internal/service" // Business operations
	"bungeoppang/internal/utils"   // Utility functions
	"net/http"                     // HTTP status codes
	"time"                         // Timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RegisterEmployeeHandler assigns a user to a store with a new employee code
func RegisterEmployeeHandler(svc *service.Service, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.RegisterEmployeeInput // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		res, err := svc.RegisterEmployee(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, req.Fields(), "Employee registration")
			return
		}
		// Log successful registration
		logrus.WithFields(req.Fields()).WithFields(logrus.Fields{
			"employee_id":   res.ID,                          // Employee ID
			"employee_code": res.Code,                        // Allocated code
			"timestamp":     time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Employee registered")
		cache.Invalidate(c.Request.Context(), utils.EmployeesList) // Invalidate employees listing
		// Return success response
		c.JSON(http.StatusCreated, gin.H{
			"message":       "employee registered successfully",
			"employee_id":   res.ID,        // Employee ID
			"employee_code": res.Code,      // 6-digit code
			"user_name":     res.UserName,  // User display name
			"store_name":    res.StoreName, // Store name
			"position":      res.Position,  // Role label
		})
	}
}
