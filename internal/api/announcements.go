package api

import (
	"context"                          // Context for Redis operations
	"net/http"                         // HTTP status codes
	"residence_system/internal/domain" // Importing domain models
	"residence_system/internal/utils"  // Utility functions
	"strconv"                          // String conversion
	"time"                             // Timestamps and cache TTLs

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// Cache key for the announcement list
const announcementListCacheKey = "announcements:all"

// Bound on announcement body length, matches the column size
const announcementBodyLimit = 2000

// Request struct for announcement create/update; the client sends the body
// under "description"
type AnnouncementRequest struct {
	Title       string `json:"title"`       // Announcement title
	Description string `json:"description"` // Announcement body
}

// invalidateAnnouncementCache drops the cached announcement list after any write
func invalidateAnnouncementCache(rdb *redis.Client) {
	_ = utils.DeleteCache(context.Background(), rdb, announcementListCacheKey)
}

// ListAnnouncementsHandler returns all announcements
func ListAnnouncementsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()             // Use background context for Redis
		var announcements []domain.Announcement // Slice to hold announcements
		// Try the cache first
		found, err := utils.GetCache(ctx, rdb, announcementListCacheKey, &announcements)
		if err == nil && found {
			c.JSON(http.StatusOK, announcements) // Return cached list
			return
		}
		// Fetch all announcements from the database
		if err := db.Find(&announcements).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcements"})
			return
		}
		// Cache the list for future requests
		_ = utils.SetCache(ctx, rdb, announcementListCacheKey, announcements, 60*time.Second)
		c.JSON(http.StatusOK, announcements) // Return the announcement list
	}
}

// GetAnnouncementHandler returns a single announcement by id
func GetAnnouncementHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse announcement id from path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement id"})
			return
		}
		var announcement domain.Announcement // Fetch announcement from database
		if err := db.First(&announcement, id).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
			return
		}
		c.JSON(http.StatusOK, announcement) // Return the announcement
	}
}

// CreateAnnouncementHandler creates an announcement with a server-assigned timestamp
func CreateAnnouncementHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnnouncementRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Enforce the body length bound
		if len(req.Description) > announcementBodyLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Announcement body too long"})
			return
		}
		// Build the announcement record
		announcement := domain.Announcement{
			Title:    req.Title,       // Title
			Body:     req.Description, // Body comes in as "description"
			PostedAt: time.Now(),      // Server-assigned timestamp
		}
		// Create the announcement
		if err := db.Create(&announcement).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement"})
			return
		}
		invalidateAnnouncementCache(rdb)    // Drop the cached announcement list
		c.JSON(http.StatusOK, announcement) // Return the created announcement
	}
}

// UpdateAnnouncementHandler overwrites the title and body
func UpdateAnnouncementHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse announcement id from path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement id"})
			return
		}
		var req AnnouncementRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Enforce the body length bound
		if len(req.Description) > announcementBodyLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Announcement body too long"})
			return
		}
		var announcement domain.Announcement // Load the stored announcement
		if err := db.First(&announcement, id).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
			return
		}
		// Full overwrite of the updatable fields
		announcement.Title = req.Title
		announcement.Body = req.Description
		// Persist the updated announcement
		if err := db.Save(&announcement).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update announcement"})
			return
		}
		invalidateAnnouncementCache(rdb)    // Drop the cached announcement list
		c.JSON(http.StatusOK, announcement) // Return the updated announcement
	}
}

// DeleteAnnouncementHandler removes an announcement by id
func DeleteAnnouncementHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse announcement id from path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement id"})
			return
		}
		var announcement domain.Announcement // Check the announcement exists before deleting
		if err := db.First(&announcement, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
			return
		}
		// Delete the announcement
		if err := db.Delete(&announcement).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete announcement"})
			return
		}
		invalidateAnnouncementCache(rdb)                                // Drop the cached announcement list
		c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"}) // Return success
	}
}
