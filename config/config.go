package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	defaultJWTSecret = "techsphere-dev-secret-change-me"
)

// Config holds the application configuration
type Config struct {
	Env            string
	AppPort        string
	DBDriver       string
	DBDSN          string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBAutoMigrate  bool
	DBMaxOpenConns int
	DBMaxIdleConns int
	JWTSecret      []byte
	TokenTTL       time.Duration
	CookieMaxAge   time.Duration
	BcryptCost     int
	DefaultLimit   int
	MaxLimit       int
	RequestTimeout time.Duration
	CORSOrigins    []string
	LogLevel       string
	AdminUsername  string
	AdminEmail     string
	AdminPassword  string
}

// LoadConfig loads configuration from environment variables.
// A missing .env file is not an error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:            getEnv("APP_ENV", EnvDevelopment),
		AppPort:        getEnv("APP_PORT", "8080"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBDSN:          os.Getenv("DB_DSN"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnv("DB_NAME", "techsphere"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBAutoMigrate:  getBool("DB_AUTO_MIGRATE", true),
		DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 5),
		JWTSecret:      []byte(os.Getenv("JWT_SECRET")),
		TokenTTL:       getDuration("TOKEN_TTL", TokenTTL),
		CookieMaxAge:   getDuration("COOKIE_MAX_AGE", CookieMaxAge),
		BcryptCost:     getInt("BCRYPT_COST", MinBcryptCost),
		DefaultLimit:   getInt("DEFAULT_PAGE_LIMIT", 6),
		MaxLimit:       getInt("MAX_PAGE_LIMIT", 100),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		CORSOrigins:    getList("CORS_ORIGIN", "http://localhost:3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
	}

	if len(cfg.JWTSecret) == 0 {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET must be set when APP_ENV=%s", EnvProduction)
		}
		logrus.Warn("JWT_SECRET not set, using development secret")
		cfg.JWTSecret = []byte(defaultJWTSecret)
	}
	if cfg.BcryptCost < MinBcryptCost {
		cfg.BcryptCost = MinBcryptCost
	}
	if cfg.DefaultLimit < 1 {
		cfg.DefaultLimit = 6
	}
	if cfg.MaxLimit < cfg.DefaultLimit {
		cfg.MaxLimit = cfg.DefaultLimit
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getList splits a comma separated value, dropping empty entries.
func getList(key, fallback string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, fallback), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return []string{fallback}
	}
	return out
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
