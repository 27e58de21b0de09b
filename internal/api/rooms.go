package api

import (
	"context"                          // Context for Redis operations
	"net/http"                         // HTTP status codes
	"residence_system/internal/domain" // Importing domain models
	"residence_system/internal/utils"  // Utility functions
	"strconv"                          // String conversion
	"time"                             // Cache TTLs

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// Cache key for the room list
const roomListCacheKey = "rooms:all"

// Request struct for room create/update
type RoomRequest struct {
	RoomNumber string   `json:"roomNumber"` // Human-readable room number
	Floor      int      `json:"floor"`      // Floor the room is on
	Status     string   `json:"status"`     // Vacant or Occupied
	Rate       *float64 `json:"rate"`       // Nightly rate, optional
}

// invalidateRoomCache drops the cached room list after any room write
func invalidateRoomCache(rdb *redis.Client) {
	_ = utils.DeleteCache(context.Background(), rdb, roomListCacheKey)
}

// ListRoomsHandler returns all rooms
func ListRoomsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		var rooms []domain.Room     // Slice to hold rooms
		// Try the cache first
		found, err := utils.GetCache(ctx, rdb, roomListCacheKey, &rooms)
		if err == nil && found {
			c.JSON(http.StatusOK, rooms) // Return cached list
			return
		}
		// Fetch all rooms from the database
		if err := db.Find(&rooms).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rooms"})
			return
		}
		// Cache the list for future requests
		_ = utils.SetCache(ctx, rdb, roomListCacheKey, rooms, 60*time.Second)
		c.JSON(http.StatusOK, rooms) // Return the room list
	}
}

// GetRoomHandler returns a single room by id
func GetRoomHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse room id from path
		if err != nil {
			// Non-numeric id, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room id"})
			return
		}
		var room domain.Room // Fetch room from database
		if err := db.First(&room, id).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusOK, room) // Return the room
	}
}

// CreateRoomHandler creates a room, defaulting status and rate when absent
func CreateRoomHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Default values
		if req.Status == "" {
			req.Status = "Vacant" // New rooms start vacant
		}
		if req.Rate == nil {
			zero := 0.0
			req.Rate = &zero // Rate defaults to 0
		}
		// Build the room record
		room := domain.Room{
			RoomNumber: req.RoomNumber, // Room number
			Floor:      req.Floor,      // Floor
			Status:     req.Status,     // Status
			Rate:       req.Rate,       // Nightly rate
		}
		// Attempt to create the room; the unique index rejects duplicate numbers
		if err := db.Create(&room).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room number already exists"})
			return
		}
		invalidateRoomCache(rdb)    // Drop the cached room list
		c.JSON(http.StatusOK, room) // Return the created room
	}
}

// UpdateRoomHandler overwrites the updatable room fields
func UpdateRoomHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse room id from path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room id"})
			return
		}
		var req RoomRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var room domain.Room // Load the stored room
		if err := db.First(&room, id).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		// Full overwrite of the updatable fields
		room.RoomNumber = req.RoomNumber
		room.Floor = req.Floor
		room.Rate = req.Rate
		room.Status = req.Status
		// Persist the updated room
		if err := db.Save(&room).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room"})
			return
		}
		invalidateRoomCache(rdb)    // Drop the cached room list
		c.JSON(http.StatusOK, room) // Return the updated room
	}
}

// DeleteRoomHandler removes a room by id
func DeleteRoomHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse room id from path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room id"})
			return
		}
		var room domain.Room // Check the room exists before deleting
		if err := db.First(&room, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		// Delete the room
		if err := db.Delete(&room).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room"})
			return
		}
		invalidateRoomCache(rdb)                                // Drop the cached room list
		c.JSON(http.StatusOK, gin.H{"message": "Room deleted"}) // Return success
	}
}

// AssignTenantHandler marks a room occupied and points the tenant at it.
// Both writes commit in a single transaction so a failure cannot leave the
// room occupied without the tenant reference (or vice versa).
func AssignTenantHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, err := strconv.Atoi(c.Param("id")) // Parse room id from path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room id"})
			return
		}
		tenantID, err := strconv.Atoi(c.Param("tenantId")) // Parse tenant id from path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant id"})
			return
		}
		var room domain.Room // Load the room
		roomErr := db.First(&room, roomID).Error
		var tenant domain.Tenant // Load the tenant
		tenantErr := db.First(&tenant, tenantID).Error
		// Either record missing is reported as a client error, undistinguished
		if roomErr != nil || tenantErr != nil {
			c.String(http.StatusBadRequest, "Room or Tenant not found")
			return
		}
		// Atomic assignment
		err = db.Transaction(func(tx *gorm.DB) error {
			room.Status = "Occupied" // Mark the room occupied
			if err := tx.Save(&room).Error; err != nil {
				return err // Return error to rollback
			}
			tenant.Room = &room.RoomNumber // Point the tenant at the room number
			if err := tx.Save(&tenant).Error; err != nil {
				return err // Return error to rollback
			}
			return nil // Commit transaction
		})
		// Handle transaction result
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"room_id":   roomID,      // Room id
				"tenant_id": tenantID,    // Tenant id
				"error":     err.Error(), // Error message
			}).Error("Assignment failed") // Log assignment failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Assignment failed"})
			return
		}
		// Log successful assignment
		logrus.WithFields(logrus.Fields{
			"room_id":     roomID,          // Room id
			"tenant_id":   tenantID,        // Tenant id
			"room_number": room.RoomNumber, // Room number
		}).Info("Tenant assigned") // Log assignment success
		invalidateRoomCache(rdb) // Drop the cached room list
		// Return success message
		c.String(http.StatusOK, "Tenant assigned to room successfully")
	}
}

// VacateRoomHandler marks a room vacant and clears every tenant whose room
// reference matches the room's number, all in one transaction.
func VacateRoomHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, err := strconv.Atoi(c.Param("id")) // Parse room id from path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room id"})
			return
		}
		var room domain.Room // Load the room
		if err := db.First(&room, roomID).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		// Atomic vacate
		err = db.Transaction(func(tx *gorm.DB) error {
			room.Status = "Vacant" // Mark the room vacant
			if err := tx.Save(&room).Error; err != nil {
				return err // Return error to rollback
			}
			// Find every tenant referencing this room's number
			var tenants []domain.Tenant
			if err := tx.Where("room = ?", room.RoomNumber).Find(&tenants).Error; err != nil {
				return err // Return error to rollback
			}
			// Clear each tenant's room reference
			for i := range tenants {
				tenants[i].Room = nil // Clear the reference
				if err := tx.Save(&tenants[i]).Error; err != nil {
					return err // Return error to rollback
				}
			}
			return nil // Commit transaction
		})
		// Handle transaction result
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"room_id": roomID,      // Room id
				"error":   err.Error(), // Error message
			}).Error("Vacate failed") // Log vacate failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Vacate failed"})
			return
		}
		// Log successful vacate
		logrus.WithFields(logrus.Fields{
			"room_id":     roomID,          // Room id
			"room_number": room.RoomNumber, // Room number
		}).Info("Room vacated") // Log vacate success
		invalidateRoomCache(rdb) // Drop the cached room list
		// Return success message
		c.String(http.StatusOK, "Room vacated")
	}
}
