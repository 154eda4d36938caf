package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = "8000"
	defaultUploadDir     = "uploads"
	defaultPineconeIndex = "rag-index"
)

type Config struct {
	DatabaseURL    string
	Port           string
	UploadDir      string
	CohereAPIKey   string
	PineconeAPIKey string
	PineconeIndex  string
	GroqAPIKey     string
}

// Load reads configuration from the environment, after sourcing a .env file
// when one is present. Only DATABASE_URL is mandatory; callers fail fast on it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Port:           getenv("PORT", defaultPort),
		UploadDir:      getenv("UPLOAD_DIR", defaultUploadDir),
		CohereAPIKey:   strings.TrimSpace(os.Getenv("COHERE_API_KEY")),
		PineconeAPIKey: strings.TrimSpace(os.Getenv("PINECONE_API_KEY")),
		PineconeIndex:  getenv("PINECONE_INDEX", defaultPineconeIndex),
		GroqAPIKey:     strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
