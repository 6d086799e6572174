package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Rules    RulesConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// StoreConfig selects where computed ledger snapshots live.
type StoreConfig struct {
	Type string // "memory" or "postgres"
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RulesConfig holds the default business rules applied to a processing run.
// Every field can be overridden per request.
type RulesConfig struct {
	StandardDailyHours float64
	LateThreshold      string // HH:MM time of day
	OvertimeHourlyRate float64
	OfficeLocations    []string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Snapshot store configuration
	config.Store = StoreConfig{
		Type: getEnv("STORE_TYPE", "memory"),
	}

	// Database configuration (only used when STORE_TYPE=postgres)
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance_insight"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Business rule defaults
	standardHours, err := strconv.ParseFloat(getEnv("STANDARD_DAILY_HOURS", "8.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_DAILY_HOURS: %w", err)
	}

	overtimeRate, err := strconv.ParseFloat(getEnv("OVERTIME_HOURLY_RATE", "50000"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OVERTIME_HOURLY_RATE: %w", err)
	}

	config.Rules = RulesConfig{
		StandardDailyHours: standardHours,
		LateThreshold:      getEnv("LATE_THRESHOLD", "09:00"),
		OvertimeHourlyRate: overtimeRate,
		OfficeLocations:    getEnvSlice("OFFICE_LOCATIONS"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Store.Type != "memory" && c.Store.Type != "postgres" {
		return fmt.Errorf("STORE_TYPE must be memory or postgres")
	}
	if c.Store.Type == "postgres" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required when STORE_TYPE=postgres")
	}
	if c.Rules.StandardDailyHours <= 0 {
		return fmt.Errorf("STANDARD_DAILY_HOURS must be positive")
	}
	if _, err := parseClock(c.Rules.LateThreshold); err != nil {
		return fmt.Errorf("invalid LATE_THRESHOLD: %w", err)
	}
	if c.Rules.OvertimeHourlyRate < 0 {
		return fmt.Errorf("OVERTIME_HOURLY_RATE must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func parseClock(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour*60 + minute, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
