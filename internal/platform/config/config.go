package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Session token settings
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Operator credential. The password is held as a bcrypt hash so the
	// plaintext never lives in the environment.
	OperatorName         string
	OperatorPasswordHash string

	// Accounting API connection
	XeroBaseURL      string
	XeroTokenURL     string
	XeroClientID     string
	XeroClientSecret string
	XeroTenantID     string
	XeroHTTPTimeout  time.Duration
	XeroMaxRetries   int
	XeroRetryDelay   time.Duration

	// CORS and rate limiting
	AllowedOrigins []string
	RateLimit      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "property-transition-app")
	viper.SetDefault("OPERATOR_NAME", "operator")
	viper.SetDefault("OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("XERO_BASE_URL", "https://api.xero.com/api.xro/2.0")
	viper.SetDefault("XERO_TOKEN_URL", "https://identity.xero.com/connect/token")
	viper.SetDefault("XERO_CLIENT_ID", "")
	viper.SetDefault("XERO_CLIENT_SECRET", "")
	viper.SetDefault("XERO_TENANT_ID", "")
	viper.SetDefault("XERO_HTTP_TIMEOUT", "30s")
	viper.SetDefault("XERO_MAX_RETRIES", 3)
	viper.SetDefault("XERO_RETRY_DELAY", "500ms")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.OperatorName = viper.GetString("OPERATOR_NAME")
	cfg.OperatorPasswordHash = viper.GetString("OPERATOR_PASSWORD_HASH")
	if cfg.OperatorPasswordHash == "" {
		log.Println("Warning: OPERATOR_PASSWORD_HASH not set. Logins will be rejected.")
	}

	cfg.XeroBaseURL = viper.GetString("XERO_BASE_URL")
	cfg.XeroTokenURL = viper.GetString("XERO_TOKEN_URL")
	cfg.XeroClientID = viper.GetString("XERO_CLIENT_ID")
	cfg.XeroClientSecret = viper.GetString("XERO_CLIENT_SECRET")
	cfg.XeroTenantID = viper.GetString("XERO_TENANT_ID")
	if cfg.XeroClientID == "" || cfg.XeroClientSecret == "" {
		return nil, fmt.Errorf("XERO_CLIENT_ID and XERO_CLIENT_SECRET must be set")
	}
	if cfg.XeroTenantID == "" {
		return nil, fmt.Errorf("XERO_TENANT_ID must be set")
	}

	timeoutStr := viper.GetString("XERO_HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for XERO_HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
	}
	cfg.XeroHTTPTimeout = timeout

	cfg.XeroMaxRetries = viper.GetInt("XERO_MAX_RETRIES")

	retryDelayStr := viper.GetString("XERO_RETRY_DELAY")
	retryDelay, err := time.ParseDuration(retryDelayStr)
	if err != nil {
		retryDelay = 500 * time.Millisecond
		log.Printf("Warning: Invalid value for XERO_RETRY_DELAY ('%s'). Defaulting to %s.\n", retryDelayStr, retryDelay.String())
	}
	cfg.XeroRetryDelay = retryDelay

	for _, origin := range strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
