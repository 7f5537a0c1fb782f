package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	LLM      LLMConfig
	Storage  StorageConfig
	Analyzer AnalyzerConfig
}

type ServerConfig struct {
	Port  string
	Env   string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type LLMConfig struct {
	// Provider selects the model backend: "ollama" (default) or "gemini".
	Provider     string
	OllamaURL    string
	OllamaModel  string
	GeminiAPIKey string
	GeminiModel  string
}

type StorageConfig struct {
	TempDir string
}

type AnalyzerConfig struct {
	Concurrency int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:  getEnv("PORT", "3000"),
			Env:   getEnv("ENV", "development"),
			Debug: getEnvAsBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "hirehub"),
		},
		LLM: LLMConfig{
			Provider:     getEnv("LLM_PROVIDER", "ollama"),
			OllamaURL:    getEnv("LLM_URL", "http://127.0.0.1:11434"),
			OllamaModel:  getEnv("LLM_MODEL", "qwen2.5-coder:1.5b"),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Storage: StorageConfig{
			TempDir: getEnv("TEMP_DIR", "./uploads/temp"),
		},
		Analyzer: AnalyzerConfig{
			Concurrency: getEnvAsInt("ANALYZER_CONCURRENCY", 3),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
