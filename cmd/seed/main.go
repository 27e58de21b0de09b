package main

import (
	"os"                               // For environment variables
	"residence_system/internal/config" // Custom package for configuration
	"residence_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Main entry point for seeding the initial admin user
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Admin credentials from environment, with dev defaults
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin1234"
	}

	// Skip if the admin user already exists
	var count int64
	db.Model(&domain.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		logrus.Infof("admin user %q already exists, nothing to do", username)
		return
	}

	// Hash the password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash password: %v", err)
	}

	// Create the admin user with both roles
	admin := domain.User{Username: username, Password: string(hash), Roles: "user,admin"}
	if err := db.Create(&admin).Error; err != nil {
		logrus.Fatalf("failed to create admin user: %v", err)
	}
	logrus.Infof("admin user %q created", username)
}
