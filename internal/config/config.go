package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	SMTP       SMTPConfig
	Attendance AttendanceConfig
	Leave      LeaveConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	MinConns int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// SMTPConfig holds outbound mail configuration
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// AttendanceConfig holds the shift-window thresholds used by the
// attendance engine.
type AttendanceConfig struct {
	LateThresholdMinutes           int
	EarlyDepartureThresholdMinutes int
	DailyTargetHours               float64
	ShortHoursWindowMinutes        int
}

// LeaveConfig holds the default opening balances assigned to new employees.
type LeaveConfig struct {
	DefaultCasualDays float64
	DefaultSickDays   float64
	DefaultAnnualDays float64
}

func Load() (*Config, error) {
	// Missing .env is fine in production, env vars carry the config there.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "workforce"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
		MinConns: dbMinConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     smtpPort,
		User:     getEnv("SMTP_USER", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("EMAIL_FROM", ""),
	}

	// Attendance thresholds
	lateThreshold, err := strconv.Atoi(getEnv("LATE_ARRIVAL_THRESHOLD_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_ARRIVAL_THRESHOLD_MINUTES: %w", err)
	}
	earlyThreshold, err := strconv.Atoi(getEnv("EARLY_DEPARTURE_THRESHOLD_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid EARLY_DEPARTURE_THRESHOLD_MINUTES: %w", err)
	}
	targetHours, err := strconv.ParseFloat(getEnv("DAILY_TARGET_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DAILY_TARGET_HOURS: %w", err)
	}
	shortHoursWindow, err := strconv.Atoi(getEnv("SHORT_HOURS_WINDOW_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHORT_HOURS_WINDOW_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		LateThresholdMinutes:           lateThreshold,
		EarlyDepartureThresholdMinutes: earlyThreshold,
		DailyTargetHours:               targetHours,
		ShortHoursWindowMinutes:        shortHoursWindow,
	}

	// Leave defaults
	casual, err := strconv.ParseFloat(getEnv("MAX_CASUAL_LEAVE_DAYS", "12"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_CASUAL_LEAVE_DAYS: %w", err)
	}
	sick, err := strconv.ParseFloat(getEnv("MAX_SICK_LEAVE_DAYS", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_SICK_LEAVE_DAYS: %w", err)
	}
	annual, err := strconv.ParseFloat(getEnv("MAX_ANNUAL_LEAVE_DAYS", "20"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_ANNUAL_LEAVE_DAYS: %w", err)
	}

	config.Leave = LeaveConfig{
		DefaultCasualDays: casual,
		DefaultSickDays:   sick,
		DefaultAnnualDays: annual,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.LateThresholdMinutes < 0 {
		return fmt.Errorf("LATE_ARRIVAL_THRESHOLD_MINUTES must not be negative")
	}
	if c.Attendance.EarlyDepartureThresholdMinutes < 0 {
		return fmt.Errorf("EARLY_DEPARTURE_THRESHOLD_MINUTES must not be negative")
	}
	if c.Attendance.DailyTargetHours <= 0 {
		return fmt.Errorf("DAILY_TARGET_HOURS must be positive")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
