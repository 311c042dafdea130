package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Payroll  PayrollConfig
	Company  CompanyConfig
}

type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// PayrollConfig holds the attendance/payroll computation settings.
// Timezone is the single organizational zone every day and month boundary
// is resolved in; DefaultHourlyRate applies when an employee has neither a
// salary slip for the month nor an explicit rate.
type PayrollConfig struct {
	Timezone          string
	DefaultHourlyRate decimal.Decimal
}

// CompanyConfig feeds the payslip header.
type CompanyConfig struct {
	Name    string
	Address string
	Email   string
}

func Load() (*Config, error) {
	// .env is optional; deployments may set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "fintradify_attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "hr@fintradify.com"),
	}

	defaultRate, err := decimal.NewFromString(getEnv("PAYROLL_DEFAULT_HOURLY_RATE", "100.00"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEFAULT_HOURLY_RATE: %w", err)
	}

	config.Payroll = PayrollConfig{
		Timezone:          getEnv("ORG_TIMEZONE", "Asia/Kolkata"),
		DefaultHourlyRate: defaultRate,
	}

	config.Company = CompanyConfig{
		Name:    getEnv("COMPANY_NAME", "Fintradify"),
		Address: getEnv("COMPANY_ADDRESS", "C6, C Block, Sector 7, Noida, UP 201301"),
		Email:   getEnv("COMPANY_EMAIL", "hr@fintradify.com"),
	}

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
	if c.Payroll.DefaultHourlyRate.IsNegative() {
		return fmt.Errorf("PAYROLL_DEFAULT_HOURLY_RATE must not be negative")
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
