package api

import (
	"bungeoppang/internal/service" // Business operations
	"bungeoppang/internal/utils"   // Utility functions
	"net/http"                     // HTTP status codes
	"time"                         // Timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateStoreHandler creates a new store
func CreateStoreHandler(svc *service.Service, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateStoreInput // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		res, err := svc.CreateStore(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, logrus.Fields{"name": req.Name}, "Store creation")
			return
		}
		// Log successful store creation
		logrus.WithFields(logrus.Fields{
			"store_id":  res.ID,                          // Store ID
			"name":      res.Name,                        // Store name
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Store created")
		cache.Invalidate(c.Request.Context(), utils.StoresList) // Invalidate stores listing
		// Return success response
		c.JSON(http.StatusCreated, gin.H{
			"message":  "store created successfully",
			"store_id": res.ID,      // Store ID
			"name":     res.Name,    // Store name
			"address":  res.Address, // Store address
		})
	}
}
