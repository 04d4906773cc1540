package config

import (
	"os"
)

// Config carries everything read from the environment. It is built once in
// main and handed to the pieces that need it, so nothing reads env vars at
// init time.
type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	JWTSecret string

	EmailUser string
	EmailPass string
	SMTPHost  string
	SMTPPort  string
	ContactTo string

	RedisURL string

	StorageBucket string
}

func Load() Config {
	cfg := Config{
		Port:          getenv("PORT", ":8080"),
		MongoURI:      getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:       getenv("MONGODB_DB", "atelierdb"),
		JWTSecret:     getenv("JWT_SECRET", "change_me_in_production"),
		EmailUser:     os.Getenv("EMAIL_USER"),
		EmailPass:     os.Getenv("EMAIL_PASS"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getenv("SMTP_PORT", "587"),
		ContactTo:     os.Getenv("CONTACT_TO"),
		RedisURL:      os.Getenv("REDIS_URL"),
		StorageBucket: os.Getenv("STORAGE_BUCKET"),
	}
	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}
	if cfg.ContactTo == "" {
		cfg.ContactTo = cfg.EmailUser
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
