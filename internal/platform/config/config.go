package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted in STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StoreDriver    string
	MongoURI       string `mapstructure:"MONGO_URI"`
	MongoDatabase  string `mapstructure:"MONGO_DATABASE"`
	RedisURL       string `mapstructure:"REDIS_URL"`
	MigrationsPath string
	JWTSecret      string
	JWTIssuer      string

	// FX rate providers
	FXAPIBaseURL    string        `mapstructure:"FX_API_BASE_URL"`
	FXAltAPIBaseURL string        `mapstructure:"FX_ALT_API_BASE_URL"` // Empty disables the alternative provider
	FXTimeout       time.Duration `mapstructure:"FX_TIMEOUT"`
	FXFallbackDays  int           `mapstructure:"FX_FALLBACK_DAYS"`
	FXCacheTTL      time.Duration `mapstructure:"FX_CACHE_TTL"` // Only applies to the redis cache, 0 keeps entries forever
	FXBatchLimit    int           `mapstructure:"FX_BATCH_LIMIT"`

	// HTTP edge
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "fiscly")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "fiscly")
	viper.SetDefault("FX_API_BASE_URL", "https://api.frankfurter.app")
	viper.SetDefault("FX_ALT_API_BASE_URL", "https://api.exchangerate-api.com/v4/latest")
	viper.SetDefault("FX_TIMEOUT", "10s")
	viper.SetDefault("FX_FALLBACK_DAYS", 7)
	viper.SetDefault("FX_CACHE_TTL", "0s")
	viper.SetDefault("FX_BATCH_LIMIT", 0)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// This allows overriding defaults with .env file values, which can then be overridden by actual environment variables.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.StoreDriver = strings.ToLower(viper.GetString("STORE_DRIVER"))
	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StoreDriverMongo:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
	cfg.MongoURI = viper.GetString("MONGO_URI")
	cfg.MongoDatabase = viper.GetString("MONGO_DATABASE")
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.FXAPIBaseURL = strings.TrimRight(viper.GetString("FX_API_BASE_URL"), "/")
	if cfg.FXAPIBaseURL == "" {
		return nil, fmt.Errorf("FX_API_BASE_URL must not be empty")
	}
	cfg.FXAltAPIBaseURL = strings.TrimRight(viper.GetString("FX_ALT_API_BASE_URL"), "/")

	fxTimeoutStr := viper.GetString("FX_TIMEOUT")
	fxTimeout, err := time.ParseDuration(fxTimeoutStr)
	if err != nil || fxTimeout <= 0 {
		fxTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for FX_TIMEOUT ('%s'). Defaulting to %s.\n", fxTimeoutStr, fxTimeout.String())
	}
	cfg.FXTimeout = fxTimeout

	cfg.FXFallbackDays = viper.GetInt("FX_FALLBACK_DAYS")
	if cfg.FXFallbackDays < 0 {
		return nil, fmt.Errorf("FX_FALLBACK_DAYS must not be negative, got %d", cfg.FXFallbackDays)
	}

	fxCacheTTLStr := viper.GetString("FX_CACHE_TTL")
	fxCacheTTL, err := time.ParseDuration(fxCacheTTLStr)
	if err != nil || fxCacheTTL < 0 {
		fxCacheTTL = 0
		log.Printf("Warning: Invalid value for FX_CACHE_TTL ('%s'). Cached rates will not expire.\n", fxCacheTTLStr)
	}
	cfg.FXCacheTTL = fxCacheTTL

	cfg.FXBatchLimit = viper.GetInt("FX_BATCH_LIMIT")
	if cfg.FXBatchLimit < 0 {
		cfg.FXBatchLimit = 0
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
