package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBName string

	// Enrollment retry settings for transient storage conflicts
	EnrollMaxAttempts    int
	EnrollRetryBackoffMs int

	// Cron spec for the enrollment counter audit job
	AuditCronSpec string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		DBName: getEnv("DB_NAME", "coursereg"),

		EnrollMaxAttempts:    getEnvInt("ENROLL_MAX_ATTEMPTS", 3),
		EnrollRetryBackoffMs: getEnvInt("ENROLL_RETRY_BACKOFF_MS", 50),

		AuditCronSpec: getEnv("AUDIT_CRON_SPEC", "*/5 * * * *"),
	}

	// Validate critical configuration
	if AppConfig.EnrollMaxAttempts < 1 {
		log.Println("Warning: ENROLL_MAX_ATTEMPTS must be at least 1. Falling back to 1.")
		AppConfig.EnrollMaxAttempts = 1
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
