package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL connection settings for the key-value store.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// QdrantConfig holds connection settings for the vector search index.
type QdrantConfig struct {
	Host       string
	Port       int
	Collection string
	TimeoutSec int
}

// AIConfig holds settings for the embedding and generation provider.
// The provider is expected to expose an OpenAI-compatible HTTP API.
type AIConfig struct {
	BaseURL             string
	APIKey              string
	EmbeddingModel      string
	GenerationModel     string
	EmbeddingDimensions int
	TimeoutSec          int
}

// MinIOConfig holds object storage settings for media files.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port        string
	Environment string
	Version     string
	CORSOrigin  string
	Database    DatabaseConfig
	Qdrant      QdrantConfig
	AI          AIConfig
	MinIO       MinIOConfig
}

// Production reports whether the app runs in production mode.
// Error responses hide internal details when this is true.
func (c *AppConfig) Production() bool {
	return c.Environment == "production"
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		Version:     getEnv("CMS_VERSION", "1.0.0"),
		CORSOrigin:  getEnv("CORS_ORIGIN", "*"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Qdrant: QdrantConfig{
			Host:       getEnv("QDRANT_HOST", "localhost"),
			Port:       getEnvInt("QDRANT_PORT", 6334),
			Collection: getEnv("QDRANT_COLLECTION", "content"),
			TimeoutSec: getEnvInt("QDRANT_TIMEOUT_SEC", 10),
		},
		AI: AIConfig{
			BaseURL:             getEnv("AI_BASE_URL", ""),
			APIKey:              getEnv("AI_API_KEY", ""),
			EmbeddingModel:      getEnv("AI_EMBEDDING_MODEL", "bge-small-en-v1.5"),
			GenerationModel:     getEnv("AI_GENERATION_MODEL", "llama-2-7b-chat-int8"),
			EmbeddingDimensions: getEnvInt("AI_EMBEDDING_DIMENSIONS", 768),
			TimeoutSec:          getEnvInt("AI_TIMEOUT_SEC", 30),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
