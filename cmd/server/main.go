package main

import (
	"context"                              // context package is needed for Redis operations
	"log"                                  // log package is needed for logging
	"residence_system/internal/api"        // Custom package for API handlers
	"residence_system/internal/config"     // Custom package for configuration
	"residence_system/internal/middleware" // Custom package for middleware
	"time"                                 // Timestamps

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins // Allowed origins from configuration
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true // Credentials allowed
	r.Use(cors.New(corsConfig))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Auth routes (public)
	auth := r.Group("/api/auth")
	auth.POST("/register", api.RegisterHandler(db))          // Registration endpoint
	auth.POST("/login", api.LoginHandler(db, cfg.JWTSecret)) // Login endpoint

	// All remaining API routes require a valid bearer token
	protected := r.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	// Room routes
	rooms := protected.Group("/rooms")
	rooms.GET("", api.ListRoomsHandler(db, redisClient))                         // List rooms endpoint
	rooms.GET("/:id", api.GetRoomHandler(db))                                    // Get room endpoint
	rooms.POST("", api.CreateRoomHandler(db, redisClient))                       // Create room endpoint
	rooms.PUT("/:id", api.UpdateRoomHandler(db, redisClient))                    // Update room endpoint
	rooms.DELETE("/:id", api.DeleteRoomHandler(db, redisClient))                 // Delete room endpoint
	rooms.PUT("/:id/assign/:tenantId", api.AssignTenantHandler(db, redisClient)) // Assign tenant endpoint
	rooms.PUT("/:id/vacate", api.VacateRoomHandler(db, redisClient))             // Vacate room endpoint

	// Tenant routes
	tenants := protected.Group("/tenants")
	tenants.GET("", api.ListTenantsHandler(db))         // List tenants endpoint
	tenants.GET("/:id", api.GetTenantHandler(db))       // Get tenant endpoint
	tenants.POST("", api.CreateTenantHandler(db))       // Create tenant endpoint
	tenants.PUT("/:id", api.UpdateTenantHandler(db))    // Update tenant endpoint
	tenants.DELETE("/:id", api.DeleteTenantHandler(db)) // Delete tenant endpoint

	// Announcement routes
	announcements := protected.Group("/announcements")
	announcements.GET("", api.ListAnnouncementsHandler(db, redisClient))         // List announcements endpoint
	announcements.GET("/:id", api.GetAnnouncementHandler(db))                    // Get announcement endpoint
	announcements.POST("", api.CreateAnnouncementHandler(db, redisClient))       // Create announcement endpoint
	announcements.PUT("/:id", api.UpdateAnnouncementHandler(db, redisClient))    // Update announcement endpoint
	announcements.DELETE("/:id", api.DeleteAnnouncementHandler(db, redisClient)) // Delete announcement endpoint

	// Admin routes (protected, admin only)
	admin := protected.Group("/admin")
	admin.Use(middleware.AdminOnlyMiddleware(db))
	admin.GET("/users", api.ListUsersHandler(db, redisClient)) // List users endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
