package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StoreDriver    string
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	DefaultCurrency          string
	BackfillDefaultBatchSize int
	BackfillMaxBatchSize     int
	BackfillRateLimit        string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("STORE_DRIVER", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("DEFAULT_CURRENCY", "USD")
	v.SetDefault("BACKFILL_DEFAULT_BATCH_SIZE", 50)
	v.SetDefault("BACKFILL_MAX_BATCH_SIZE", 500)
	v.SetDefault("BACKFILL_RATE_LIMIT", "10-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Environment variables override defaults and .env values.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:              v.GetString("PGSQL_URL"),
		Port:                     v.GetString("PORT"),
		IsProduction:             v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:            v.GetBool("ENABLE_DB_CHECK"),
		StoreDriver:              strings.ToLower(v.GetString("STORE_DRIVER")),
		MigrationsPath:           v.GetString("MIGRATIONS_PATH"),
		JWTSecret:                v.GetString("JWT_SECRET"),
		JWTIssuer:                v.GetString("JWT_ISSUER"),
		DefaultCurrency:          strings.ToUpper(v.GetString("DEFAULT_CURRENCY")),
		BackfillDefaultBatchSize: v.GetInt("BACKFILL_DEFAULT_BATCH_SIZE"),
		BackfillMaxBatchSize:     v.GetInt("BACKFILL_MAX_BATCH_SIZE"),
		BackfillRateLimit:        v.GetString("BACKFILL_RATE_LIMIT"),
		CORSAllowedOrigins:       splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.StoreDriver == "" {
		if cfg.DatabaseURL == "" {
			cfg.StoreDriver = StoreDriverMemory
			log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory store.")
		} else {
			cfg.StoreDriver = StoreDriverPostgres
		}
	}

	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.BackfillDefaultBatchSize <= 0 {
		cfg.BackfillDefaultBatchSize = 50
	}
	if cfg.BackfillMaxBatchSize < cfg.BackfillDefaultBatchSize {
		log.Printf("Warning: BACKFILL_MAX_BATCH_SIZE (%d) below default batch size. Raising to %d.\n", cfg.BackfillMaxBatchSize, cfg.BackfillDefaultBatchSize)
		cfg.BackfillMaxBatchSize = cfg.BackfillDefaultBatchSize
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
