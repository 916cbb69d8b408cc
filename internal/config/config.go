package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP Configuration
	HTTP HTTPConfig

	// Database Configuration
	Database DatabaseConfig

	// Auth Configuration
	Auth AuthConfig

	// Attendance Configuration
	Attendance AttendanceConfig

	// Logging Configuration
	Logging LoggingConfig
}

// HTTPConfig holds the listen address
type HTTPConfig struct {
	Addr string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// AuthConfig holds token signing configuration
type AuthConfig struct {
	JWTSecret string
}

// AttendanceConfig holds attendance bookkeeping configuration
type AttendanceConfig struct {
	// Cron schedule for closing records left open overnight
	AutoCloseSchedule string
	// Optional YAML fixture loaded into an empty database on startup
	SeedFile string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	addr := os.Getenv("OFFICEHUB_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	// Database URL - default to a local sqlite file, allow override for dev
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = "officehub.sqlite"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-change-me"
	}

	autoCloseSchedule := os.Getenv("ATTENDANCE_AUTOCLOSE_SCHEDULE")
	if autoCloseSchedule == "" {
		autoCloseSchedule = "0 0 * * *"
	}

	// Logging configuration - defaults suitable for production
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "json"
	}

	return &Config{
		HTTP: HTTPConfig{
			Addr: addr,
		},
		Database: DatabaseConfig{
			URL: dbURL,
		},
		Auth: AuthConfig{
			JWTSecret: jwtSecret,
		},
		Attendance: AttendanceConfig{
			AutoCloseSchedule: autoCloseSchedule,
			SeedFile:          os.Getenv("SEED_FILE"),
		},
		Logging: LoggingConfig{
			Level:  logLevel,
			Format: logFormat,
		},
	}, nil
}
