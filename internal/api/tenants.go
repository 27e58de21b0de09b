package api

import (
	"net/http"                         // HTTP status codes
	"residence_system/internal/domain" // Importing domain models
	"strconv"                          // String conversion

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// Request struct for tenant create/update
type TenantRequest struct {
	Name    string  `json:"name"`    // Tenant name
	Room    *string `json:"room"`    // Room number, optional
	Contact string  `json:"contact"` // Contact string
}

// ListTenantsHandler returns all tenants
func ListTenantsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tenants []domain.Tenant // Slice to hold tenants
		// Fetch all tenants from the database
		if err := db.Find(&tenants).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tenants"})
			return
		}
		c.JSON(http.StatusOK, tenants) // Return the tenant list
	}
}

// GetTenantHandler returns a single tenant by id
func GetTenantHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse tenant id from path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant id"})
			return
		}
		var tenant domain.Tenant // Fetch tenant from database
		if err := db.First(&tenant, id).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
			return
		}
		c.JSON(http.StatusOK, tenant) // Return the tenant
	}
}

// CreateTenantHandler creates a tenant
func CreateTenantHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TenantRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Build the tenant record
		tenant := domain.Tenant{
			Name:    req.Name,    // Tenant name
			Room:    req.Room,    // Room number, may be nil
			Contact: req.Contact, // Contact string
		}
		// Create the tenant
		if err := db.Create(&tenant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tenant"})
			return
		}
		c.JSON(http.StatusOK, tenant) // Return the created tenant
	}
}

// UpdateTenantHandler overwrites the updatable tenant fields
func UpdateTenantHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse tenant id from path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant id"})
			return
		}
		var req TenantRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var tenant domain.Tenant // Load the stored tenant
		if err := db.First(&tenant, id).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
			return
		}
		// Full overwrite of the updatable fields
		tenant.Name = req.Name
		tenant.Room = req.Room
		tenant.Contact = req.Contact
		// Persist the updated tenant
		if err := db.Save(&tenant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tenant"})
			return
		}
		c.JSON(http.StatusOK, tenant) // Return the updated tenant
	}
}

// DeleteTenantHandler removes a tenant by id
func DeleteTenantHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse tenant id from path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant id"})
			return
		}
		var tenant domain.Tenant // Check the tenant exists before deleting
		if err := db.First(&tenant, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
			return
		}
		// Delete the tenant
		if err := db.Delete(&tenant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tenant"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Tenant deleted"}) // Return success
	}
}
