package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"go-vehicle-api/internal/database"
	"go-vehicle-api/internal/logger"
	"go-vehicle-api/internal/security"
)

type Config struct {
	ServerPort              string
	ServerReadHeaderTimeout time.Duration
	ServerWriteTimeout      time.Duration
	ServerIdleTimeout       time.Duration
	RequestTimeout          time.Duration
	DatabaseProvider        string
	DatabaseURL             string
	SQLitePath              string
	DBMaxConns              int32
	DBMinConns              int32
	JWTKey                  string
	JWTSecret               string
	JWTExpirationHours      int
	JWTIssuer               string
	JWTAudience             string
	PasswordHasher          string
	CORSOrigins             []string
	RateLimitRPM            int
	AuthRateLimitRPM        int
	TrustProxyHeaders       bool
	SeedFile                string
	LogLevel                string
	LogFormat               string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		ServerReadHeaderTimeout: getDuration("SERVER_READ_HEADER_TIMEOUT", 10*time.Second),
		ServerWriteTimeout:      getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ServerIdleTimeout:       getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		RequestTimeout:          getDuration("REQUEST_TIMEOUT", 30*time.Second),
		DatabaseProvider:        strings.ToLower(getEnv("DATABASE_PROVIDER", database.ProviderSQLite)),
		DatabaseURL:             strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SQLitePath:              getEnv("SQLITE_PATH", "./state/vehicles.db"),
		DBMaxConns:              int32(getInt("DB_MAX_CONNS", 10)),
		DBMinConns:              int32(getInt("DB_MIN_CONNS", 1)),
		JWTKey:                  os.Getenv("JWT_KEY"),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		JWTExpirationHours:      getInt("JWT_EXPIRATION_HOURS", 24),
		JWTIssuer:               strings.TrimSpace(os.Getenv("JWT_ISSUER")),
		JWTAudience:             strings.TrimSpace(os.Getenv("JWT_AUDIENCE")),
		PasswordHasher:          strings.ToLower(getEnv("PASSWORD_HASHER", security.HasherSHA256)),
		CORSOrigins:             splitCSV(getEnv("CORS_ORIGINS", "*")),
		RateLimitRPM:            getInt("RATE_LIMIT_RPM", 100),
		AuthRateLimitRPM:        getInt("AUTH_RATE_LIMIT_RPM", 10),
		TrustProxyHeaders:       getBool("TRUST_PROXY_HEADERS", false),
		SeedFile:                strings.TrimSpace(os.Getenv("SEED_FILE")),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFormat:               getEnv("LOG_FORMAT", logger.FormatPretty),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT cannot be empty")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	switch c.DatabaseProvider {
	case database.ProviderPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when DATABASE_PROVIDER is %s", database.ProviderPostgres)
		}
		if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
			return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS")
		}
	case database.ProviderSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH cannot be empty")
		}
	case database.ProviderMemory:
	default:
		return fmt.Errorf("unsupported DATABASE_PROVIDER %q", c.DatabaseProvider)
	}

	if c.JWTExpirationHours <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be positive")
	}

	if _, err := security.NewHasher(c.PasswordHasher); err != nil {
		return fmt.Errorf("PASSWORD_HASHER: %w", err)
	}

	return nil
}

// TokenConfig resolves the signing key chain JWT_KEY, JWT_SECRET, then the
// built-in default.
func (c *Config) TokenConfig() security.TokenConfig {
	return security.TokenConfig{
		Key:          c.JWTKey,
		AlternateKey: c.JWTSecret,
		FallbackKey:  security.DefaultSigningKey,
		Lifetime:     time.Duration(c.JWTExpirationHours) * time.Hour,
		Issuer:       c.JWTIssuer,
		Audience:     c.JWTAudience,
	}
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return v
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}

	return out
}
