package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource      string
	Port          string
	JWTSecret     string
	JWTTTL        time.Duration
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "dashboard.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        24 * time.Hour,
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
