// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Pricing  PricingConfig
	Payment  PaymentConfig
	Admin    AdminConfig
	JWT      JWTConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name           string
	Version        string
	Environment    string
	Debug          bool
	Currency       string
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// StoreConfig selects persistence drivers and file locations
type StoreConfig struct {
	CatalogPath string // JSON catalog document
	OrdersPath  string // order log for the file driver
	CartDriver  string // redis | memory
	OrderDriver string // file | postgres | memory
	CartTTL     time.Duration
}

// DatabaseConfig contains connection settings for the postgres order driver
type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// PricingConfig contains the cart/checkout pricing rules.
// All money amounts are in pence.
type PricingConfig struct {
	TaxRateBasisPoints    int64 // 2000 = 20% VAT
	FreeShippingThreshold int64
	StandardShippingFee   int64
	ExpressShippingFee    int64
}

// PaymentConfig controls the simulated payment gateway
type PaymentConfig struct {
	SuccessPercent int
	Delay          time.Duration
}

// AdminConfig contains admin panel credentials.
// PasswordHash takes precedence; Password is the development fallback.
type AdminConfig struct {
	Username     string
	PasswordHash string
	Password     string
}

// JWTConfig contains JWT token configuration
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	BcryptCost         int
	RateLimitPerMinute int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "Velvet Vogue"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			Environment:    getEnv("APP_ENV", "development"),
			Debug:          getEnvAsBool("APP_DEBUG", true),
			Currency:       getEnv("APP_CURRENCY", "GBP"),
			CompanyName:    getEnv("COMPANY_NAME", "Velvet Vogue Ltd"),
			CompanyAddress: getEnv("COMPANY_ADDRESS", "1 Savile Row, London"),
			CompanyEmail:   getEnv("COMPANY_EMAIL", "hello@velvetvogue.com"),
			CompanyPhone:   getEnv("COMPANY_PHONE", ""),
		},
		Server: ServerConfig{
			Port:           getEnv("APP_PORT", "8080"),
			ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout: getEnvAsDuration("SERVER_REQUEST_TIMEOUT", 30*time.Second),
		},
		Store: StoreConfig{
			CatalogPath: getEnv("CATALOG_PATH", "data/products.json"),
			OrdersPath:  getEnv("ORDERS_PATH", "data/orders.json"),
			CartDriver:  getEnv("CART_DRIVER", "memory"),
			OrderDriver: getEnv("ORDER_DRIVER", "file"),
			CartTTL:     getEnvAsDuration("CART_TTL", 24*time.Hour),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			Name:         getEnv("DB_NAME", "velvetvogue_db"),
			User:         getEnv("DB_USER", "velvetvogue"),
			Password:     getEnv("DB_PASSWORD", "velvetvogue"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 300*time.Second),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Pricing: PricingConfig{
			TaxRateBasisPoints:    getEnvAsInt64("TAX_RATE_BASIS_POINTS", 2000),
			FreeShippingThreshold: getEnvAsInt64("FREE_SHIPPING_THRESHOLD", 5000),
			StandardShippingFee:   getEnvAsInt64("STANDARD_SHIPPING_FEE", 499),
			ExpressShippingFee:    getEnvAsInt64("EXPRESS_SHIPPING_FEE", 999),
		},
		Payment: PaymentConfig{
			SuccessPercent: getEnvAsInt("PAYMENT_SUCCESS_PERCENT", 90),
			Delay:          getEnvAsDuration("PAYMENT_DELAY", 1500*time.Millisecond),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin@velvetvogue.com"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			Password:     getEnv("ADMIN_PASSWORD", "admin123"),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "velvet-vogue-admin-secret-change-in-production"),
			AccessTokenExpiry: getEnvAsDuration("JWT_ACCESS_EXPIRE", 24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptCost:         getEnvAsInt("BCRYPT_COST", 12),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 100),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	if c.Store.CatalogPath == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}

	switch c.Store.CartDriver {
	case "redis", "memory":
	default:
		return fmt.Errorf("CART_DRIVER must be redis or memory, got %q", c.Store.CartDriver)
	}

	switch c.Store.OrderDriver {
	case "file", "postgres", "memory":
	default:
		return fmt.Errorf("ORDER_DRIVER must be file, postgres or memory, got %q", c.Store.OrderDriver)
	}

	if c.Store.OrderDriver == "postgres" {
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres order driver")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required for the postgres order driver")
		}
	}

	if c.Store.CartDriver == "redis" && c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required for the redis cart driver")
	}

	if c.Payment.SuccessPercent < 0 || c.Payment.SuccessPercent > 100 {
		return fmt.Errorf("PAYMENT_SUCCESS_PERCENT must be in [0,100]")
	}

	if c.Pricing.TaxRateBasisPoints < 0 {
		return fmt.Errorf("TAX_RATE_BASIS_POINTS cannot be negative")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
