package config

import (
	"time"

	"github.com/joho/godotenv"

	"members-portal/internal/domain"
	"members-portal/internal/session"
)

type Config struct {
	Port        string
	DatabaseURL string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	SessionCookie string
	SessionTTL    time.Duration

	BcryptCost int

	// NATSUrl left empty disables integration events.
	NATSUrl string
}

// Load reads configuration from the environment, picking up a .env file
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          GetEnvAsString("PORT", "4010"),
		DatabaseURL:   GetEnvAsString("DATABASE_URL", ""),
		RedisHost:     GetEnvAsString("REDIS_HOST", ""),
		RedisPort:     GetEnvAsString("REDIS_PORT", "6379"),
		RedisPassword: GetEnvAsString("REDIS_PASSWORD", ""),
		SessionCookie: GetEnvAsString("SESSION_COOKIE", session.DefaultCookieName),
		SessionTTL:    GetEnvAsDuration("SESSION_TTL", domain.SessionTTL),
		BcryptCost:    GetEnvAsInt("BCRYPT_COST", domain.DefaultBcryptCost),
		NATSUrl:       GetEnvAsString("NATS_URL", ""),
	}
}
