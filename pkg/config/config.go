package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// IngestAPIKey authenticates the chat transport and operator tooling.
	// Empty disables the check (local development only).
	IngestAPIKey string

	// RegistrationGrace widens the message-eligibility window before channel
	// registration to absorb timestamp precision issues.
	RegistrationGrace time.Duration

	// Reverification sweep cadence and how far back each sweep looks.
	VerifySweepInterval time.Duration
	VerifySweepLookback time.Duration

	// ReportTimezone is where day/week/month report boundaries are evaluated.
	ReportTimezone string
	ReportLocation *time.Location

	// RateLimitSpec is a ulule/limiter formatted rate, e.g. "120-M".
	RateLimitSpec string

	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("INGEST_API_KEY", "")
	viper.SetDefault("REGISTRATION_GRACE", "1m")
	viper.SetDefault("VERIFY_SWEEP_INTERVAL", "10m")
	viper.SetDefault("VERIFY_SWEEP_LOOKBACK", "30m")
	viper.SetDefault("REPORT_TIMEZONE", "Asia/Phnom_Penh")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.IngestAPIKey = viper.GetString("INGEST_API_KEY")
	if cfg.IngestAPIKey == "" {
		log.Println("Warning: INGEST_API_KEY not set. The ingest webhook is unauthenticated.")
	}

	cfg.RegistrationGrace = parseDurationOr("REGISTRATION_GRACE", time.Minute)
	cfg.VerifySweepInterval = parseDurationOr("VERIFY_SWEEP_INTERVAL", 10*time.Minute)
	cfg.VerifySweepLookback = parseDurationOr("VERIFY_SWEEP_LOOKBACK", 30*time.Minute)

	cfg.ReportTimezone = viper.GetString("REPORT_TIMEZONE")
	loc, err := time.LoadLocation(cfg.ReportTimezone)
	if err != nil {
		log.Printf("Warning: Invalid REPORT_TIMEZONE ('%s'). Defaulting to UTC.\n", cfg.ReportTimezone)
		loc = time.UTC
	}
	cfg.ReportLocation = loc

	cfg.RateLimitSpec = viper.GetString("RATE_LIMIT")

	if origins := viper.GetString("CORS_ALLOW_ORIGINS"); origins != "" {
		cfg.CORSAllowOrigins = strings.Split(origins, ",")
	}

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
