package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port             string   `yaml:"port"`
	AllowedOrigins   []string `yaml:"allowed_origins"`
	DatabaseHost     string   `yaml:"db_host"`
	DatabasePort     string   `yaml:"db_port"`
	DatabaseUser     string   `yaml:"db_user"`
	DatabasePassword string   `yaml:"db_password"`
	DatabaseName     string   `yaml:"db_name"`

	JWTSecret        string        `yaml:"jwt_secret"`
	JWTAccessExpiry  time.Duration `yaml:"jwt_access_expiry"`
	JWTRefreshExpiry time.Duration `yaml:"jwt_refresh_expiry"`

	// External collaborators
	GoogleProjectID     string `yaml:"google_project_id"`
	AutomationTopic     string `yaml:"automation_topic"`
	GoogleCredentials   string `yaml:"google_credentials"`
	FirebaseCredentials string `yaml:"firebase_credentials"`

	AIProvider    string `yaml:"ai_provider"`
	OllamaBaseURL string `yaml:"ollama_base_url"`
	OllamaModel   string `yaml:"ollama_model"`
}

// Load reads an optional config.yaml, then lets environment variables
// (and a .env file, if present) override it.
func Load() *Config {
	_ = godotenv.Load()

	cfg := defaults()

	if path, err := filepath.Abs("./config.yaml"); err == nil {
		if raw, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(raw, cfg)
		}
	}

	applyEnvOverrides(cfg)
	return cfg
}

func defaults() *Config {
	return &Config{
		Port:             "8080",
		AllowedOrigins:   []string{"*"},
		DatabaseHost:     "localhost",
		DatabasePort:     "5432",
		DatabaseUser:     "postgres",
		DatabaseName:     "linkreach",
		JWTSecret:        "change-me-in-production",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour, // 7 days
		AutomationTopic:  "linkedin-events",
		AIProvider:       "auto",
		OllamaBaseURL:    "http://localhost:11434",
		OllamaModel:      "llama3",
	}
}

func applyEnvOverrides(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DatabaseHost = getEnv("DB_HOST", cfg.DatabaseHost)
	cfg.DatabasePort = getEnv("DB_PORT", cfg.DatabasePort)
	cfg.DatabaseUser = getEnv("DB_USER", cfg.DatabaseUser)
	cfg.DatabasePassword = getEnv("DB_PASSWORD", cfg.DatabasePassword)
	cfg.DatabaseName = getEnv("DB_NAME", cfg.DatabaseName)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.GoogleProjectID = getEnv("GOOGLE_PROJECT_ID", cfg.GoogleProjectID)
	cfg.AutomationTopic = getEnv("AUTOMATION_TOPIC", cfg.AutomationTopic)
	cfg.GoogleCredentials = getEnv("GOOGLE_CREDENTIALS", cfg.GoogleCredentials)
	cfg.FirebaseCredentials = getEnv("FIREBASE_CREDENTIALS", cfg.FirebaseCredentials)
	cfg.AIProvider = getEnv("AI_PROVIDER", cfg.AIProvider)
	cfg.OllamaBaseURL = getEnv("OLLAMA_BASE_URL", cfg.OllamaBaseURL)
	cfg.OllamaModel = getEnv("OLLAMA_MODEL", cfg.OllamaModel)

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			cfg.JWTAccessExpiry = parsed
		}
	}
	if exp := os.Getenv("JWT_REFRESH_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			cfg.JWTRefreshExpiry = parsed
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
