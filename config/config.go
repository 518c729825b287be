package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Env            string
	Port           string
	DBURL          string
	TokenSecret    string
	TokenExpiryMin int
	BcryptCost     int
}

// Load reads configuration once at startup. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:            getEnv("ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		DBURL:          mustGetEnv("DB_URL"),
		TokenSecret:    mustGetEnv("TOKEN_SECRET"),
		TokenExpiryMin: getEnvAsInt("TOKEN_EXPIRY_MIN", 0),
		BcryptCost:     getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
