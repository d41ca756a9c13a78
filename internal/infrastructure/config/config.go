package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	DBPath          string
	CORSOrigin      string

	// Question generation and grading
	LLMProvider      string // "http" (OpenAI-compatible REST) or "langchain"
	LLMURL           string // e.g. "http://localhost:1234"
	LLMModel         string
	LLMAPIKey        string
	LLMTemperature   float64
	AIEnabled        bool
	GenerationPolicy string // "resilient" or "strict"

	// Caller identity
	JWTSecret        string
	AnonymousHistory bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:    mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:  mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:           getenvDefault("DB_PATH", "interviews.db"),
		CORSOrigin:       getenvDefault("CORS_ORIGIN", "*"),
		LLMProvider:      getenvDefault("LLM_PROVIDER", "http"),
		LLMURL:           getenvDefault("LLM_URL", "http://localhost:1234"),
		LLMModel:         getenvDefault("LLM_MODEL", "gemini-2.5-flash"),
		LLMAPIKey:        os.Getenv("LLM_API_KEY"),
		LLMTemperature:   getenvFloat("LLM_TEMPERATURE", 0.7),
		AIEnabled:        getenvBool("AI_ENABLED", true),
		GenerationPolicy: getenvDefault("GENERATION_POLICY", "resilient"),
		JWTSecret:        mustGetenv("JWT_SECRET"),
		AnonymousHistory: getenvBool("ANONYMOUS_HISTORY", true),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvBool(k string, fallback bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid boolean: %v", k, v, err)
	}
	return b
}

func getenvFloat(k string, fallback float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid number: %v", k, v, err)
	}
	return f
}
