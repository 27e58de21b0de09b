package api

import (
	"net/http"                         // HTTP status codes
	"residence_system/internal/domain" // Importing domain models
	"residence_system/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// RegisterHandler creates a new user with a bcrypt-hashed password
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails (missing username/password), return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
			return
		}
		// Check for an existing user with the same username
		var existing domain.User
		if err := db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
			// Username taken, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		// New users get the default role set
		user := domain.User{Username: req.Username, Password: string(hash), Roles: "user"}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			// If creation fails (e.g., duplicate username raced past the check), return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
			return
		}
		// Log the registration
		logrus.WithFields(logrus.Fields{
			"username": user.Username, // Registered username
		}).Info("User registered")
		// Return success response with the created username
		c.JSON(http.StatusOK, gin.H{"message": "Registration successful", "username": user.Username})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
			// If user not found, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Credentials"})
			return
		}
		// Generate JWT token bound to the username
		token, err := utils.GenerateJWT(user.Username, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Log the login
		logrus.WithFields(logrus.Fields{
			"username": user.Username, // Authenticated username
		}).Info("User logged in")
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}
