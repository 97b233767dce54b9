package config

import (
	"os"
	"strconv"

	"gamefi_backend/internal/logger"

	"github.com/joho/godotenv"
)

// ClaimMode selects how a claim touches the reward ledger.
// "mint" credits the net-of-fee amount to the available balance,
// "transfer" moves the claimed amount from available to withdrawn.
type ClaimMode string

const (
	ClaimModeMint     ClaimMode = "mint"
	ClaimModeTransfer ClaimMode = "transfer"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string
	JWTExpires  int // hours

	WithdrawFeePercent float64
	ClaimFeePercent    float64
	ClaimMode          ClaimMode

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	APIRateLimit   int
	APIRateWindow  int // seconds
	AuthRateLimit  int
	AuthRateWindow int // seconds

	LogLevel string
	LogJSON  bool
}

// Load reads the configuration from the environment
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	jwtExpires := 24
	if v := os.Getenv("JWT_EXPIRES_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			jwtExpires = n
		}
	}

	withdrawFee := 5.0
	if v := os.Getenv("WITHDRAW_FEE_PERCENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			withdrawFee = f
		}
	}

	// Claim fee falls back to the withdraw fee when unset, matching
	// deployments that configure a single fee for both flows.
	claimFee := withdrawFee
	if v := os.Getenv("CLAIM_FEE_PERCENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			claimFee = f
		}
	}

	claimMode := ClaimModeMint
	if os.Getenv("CLAIM_MODE") == string(ClaimModeTransfer) {
		claimMode = ClaimModeTransfer
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateLimit = n
		}
	}
	apiRateWindow := 60
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateWindow = n
		}
	}

	authRateLimit := 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			authRateLimit = n
		}
	}
	authRateWindow := 60
	if v := os.Getenv("AUTH_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			authRateWindow = n
		}
	}

	return &Config{
		AppPort:            port,
		DatabaseURL:        dbURL,
		JWTSecret:          jwtSecret,
		JWTExpires:         jwtExpires,
		WithdrawFeePercent: withdrawFee,
		ClaimFeePercent:    claimFee,
		ClaimMode:          claimMode,
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            redisDB,
		APIRateLimit:       apiRateLimit,
		APIRateWindow:      apiRateWindow,
		AuthRateLimit:      authRateLimit,
		AuthRateWindow:     authRateWindow,
		LogLevel:           os.Getenv("LOG_LEVEL"),
		LogJSON:            os.Getenv("LOG_JSON") == "true",
	}
}
