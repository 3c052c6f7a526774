package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BackendSQL selects the relational store.
	BackendSQL = "sql"
	// BackendMongo selects the document store.
	BackendMongo = "mongo"

	// EnvProduction is the APP_ENV value that turns on secure cookies and HSTS.
	EnvProduction = "production"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort string
	AppEnv  string

	StoreBackend  string
	DBDriver      string
	DBDSN         string
	MongoURI      string
	MongoDatabase string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	CORSOrigins    []string
	RateLimit      int
	UnscopedRoutes bool

	SemanticSearchEnabled bool
	EmbeddingBaseURL      string
	EmbeddingModelName    string
	LLMBaseURL            string
	LLMModelName          string
	LLMAPIKey             string
	QdrantURL             string
	QdrantAPIKey          string
	QdrantCollection      string
	QdrantVectorSize      int

	LogLevel  slog.Level
	LogFormat string
}

// Production reports whether the service runs in production mode.
func (c *Config) Production() bool {
	return c.AppEnv == EnvProduction
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		APIPort:            getEnv("API_PORT", "3000"),
		AppEnv:             getEnv("APP_ENV", "development"),
		StoreBackend:       strings.ToLower(getEnv("STORE_BACKEND", BackendSQL)),
		DBDriver:           getEnv("DB_DRIVER", "sqlite3"),
		DBDSN:              getEnv("DB_DSN", "./data/notes.db"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      getEnv("MONGO_DATABASE", "notes"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174,http://localhost:5175")),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", "https://api.openai.com"),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", "text-embedding-ada-002"),
		LLMBaseURL:         getEnv("LLM_BASE_URL", "https://api.openai.com"),
		LLMModelName:       getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMAPIKey:          os.Getenv("LLM_API_KEY"),
		QdrantURL:          getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantAPIKey:       os.Getenv("QDRANT_API_KEY"),
		QdrantCollection:   getEnv("QDRANT_COLLECTION", "notes"),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	switch cfg.StoreBackend {
	case BackendSQL:
		if cfg.DBDriver != "sqlite3" && cfg.DBDriver != "pgx" {
			return nil, fmt.Errorf("DB_DRIVER must be sqlite3 or pgx, got %q", cfg.DBDriver)
		}
	case BackendMongo:
	default:
		return nil, fmt.Errorf("STORE_BACKEND must be %s or %s, got %q", BackendSQL, BackendMongo, cfg.StoreBackend)
	}

	var err error
	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "1h")); err != nil {
		return nil, fmt.Errorf("TOKEN_TTL must be a valid duration: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be greater than 0")
	}

	if cfg.BcryptCost, err = getInt("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
		return nil, err
	}
	cfg.BcryptCost = min(max(cfg.BcryptCost, bcrypt.MinCost), bcrypt.MaxCost)

	if cfg.RateLimit, err = getInt("RATE_LIMIT", 100); err != nil {
		return nil, err
	}
	if cfg.RateLimit < 0 {
		return nil, fmt.Errorf("RATE_LIMIT must not be negative")
	}

	if cfg.UnscopedRoutes, err = getBool("UNSCOPED_ROUTES", true); err != nil {
		return nil, err
	}
	if cfg.SemanticSearchEnabled, err = getBool("SEMANTIC_SEARCH_ENABLED", false); err != nil {
		return nil, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	// QDRANT_VECTOR_SIZE must match the output size of the embeddings model.
	// If it changes, the Qdrant collection must be recreated.
	if cfg.SemanticSearchEnabled {
		vectorSizeStr := getEnv("QDRANT_VECTOR_SIZE", "")
		if vectorSizeStr == "" {
			return nil, fmt.Errorf("QDRANT_VECTOR_SIZE is required when semantic search is enabled")
		}
		vectorSize, err := strconv.Atoi(vectorSizeStr)
		if err != nil {
			return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be a valid integer: %w", err)
		}
		if vectorSize <= 0 {
			return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
		}
		cfg.QdrantVectorSize = vectorSize
	}

	if cfg.StoreBackend == BackendSQL && cfg.DBDriver == "sqlite3" {
		dataDir := filepath.Dir(cfg.DBDSN)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// loadDotEnv loads the nearest .env file, looking at most five directories up.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for range 5 {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return v, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
