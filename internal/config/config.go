package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the process needs, built once at startup and
// threaded into the services that need it.
type Config struct {
	// Server configuration
	Port        string
	Environment string

	// Auth configuration
	JWTSecret          string
	JWTExpirationHours int64

	// Database configuration
	DatabaseDSN string

	// Bootstrap admin account
	AdminUsername string
	AdminPassword string
}

// Load builds the configuration from environment variables
func Load() (*Config, error) {
	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set in environment")
	}

	dsn, err := databaseDSN()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:               getEnv("PORT", "3000"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		JWTSecret:          jwtSecret,
		JWTExpirationHours: getEnvAsInt64("JWT_EXPIRATION_HOURS", 24),
		DatabaseDSN:        dsn,
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin123"),
	}, nil
}

func databaseDSN() (string, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return "", fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, err := strconv.ParseInt(getEnv(key, ""), 10, 64); err == nil {
		return value
	}
	return defaultValue
}
