package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	SkipAuth    bool
	Environment string
	AppId       string
	CORSOrigins string

	// Optional log sink. Leave MongoURI empty to log to the console only.
	MongoURI string
	DBName   string

	Sankhya SankhyaConfig
}

// SankhyaConfig holds the ERP login credentials. They are read once at startup.
type SankhyaConfig struct {
	BaseURL  string
	Token    string
	AppKey   string
	Username string
	Password string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		SkipAuth:    getEnv("SKIP_AUTH", "false") == "true",
		Environment: getEnv("ENVIRONMENT", "development"),
		AppId:       getEnv("APP_ID", "sankhya-crm"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000, http://localhost:3001"),
		MongoURI:    getEnv("MONGO_URI", ""),
		DBName:      getEnv("DB_NAME", "sankhya-crm"),
		Sankhya: SankhyaConfig{
			BaseURL:  getEnv("SANKHYA_BASE_URL", "https://api.sandbox.sankhya.com.br"),
			Token:    getEnv("SANKHYA_TOKEN", ""),
			AppKey:   getEnv("SANKHYA_APPKEY", ""),
			Username: getEnv("SANKHYA_USERNAME", ""),
			Password: getEnv("SANKHYA_PASSWORD", ""),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
