package infrastructures

import (
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	StorageDriver string

	DatabaseURL string
	MongoURL    string
	MongoDBName string

	RedisAddress  string
	RedisPassword string

	AdminPassword string
	CORSOrigins   string
	RewardsFile   string
	SentryDSN     string
}

var Config *AppConfig

func LoadConfig() *AppConfig {
	godotenv.Load()

	Config = &AppConfig{
		Port:          getEnv("PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", "postgres"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),
		MongoDBName: getEnv("MONGO_DB_NAME", "waffle_pop"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AdminPassword: getEnv("ADMIN_PASSWORD", "1607"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		RewardsFile:   os.Getenv("REWARDS_FILE"),
		SentryDSN:     os.Getenv("SENTRY_DSN"),
	}

	return Config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
