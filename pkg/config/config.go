package config

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds every runtime setting, loaded from the environment with an
// optional .env file for local development.
type Config struct {
	Port string
	Env  string

	MongoURI      string
	MongoDatabase string

	JWTSecret string

	AdminEmail        string
	AdminPasswordHash string

	FirebaseCredentialsPath string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPAdminTo  string
}

// Load reads the configuration. Missing optional settings fall back to
// defaults; required ones are validated by the callers that need them.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, assuming environment variables are set")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("MONGO_DATABASE", "shotfolio")
	v.SetDefault("JWT_SECRET", "supersecretjwtkey")
	v.SetDefault("ADMIN_EMAIL", "admin@shotfolio.local")
	v.SetDefault("SMTP_PORT", 587)

	return &Config{
		Port:                    v.GetString("PORT"),
		Env:                     v.GetString("ENV"),
		MongoURI:                v.GetString("MONGO_URI"),
		MongoDatabase:           v.GetString("MONGO_DATABASE"),
		JWTSecret:               v.GetString("JWT_SECRET"),
		AdminEmail:              v.GetString("ADMIN_EMAIL"),
		AdminPasswordHash:       v.GetString("ADMIN_PASSWORD_HASH"),
		FirebaseCredentialsPath: v.GetString("FIREBASE_CREDENTIALS_PATH"),
		SMTPHost:                v.GetString("SMTP_HOST"),
		SMTPPort:                v.GetInt("SMTP_PORT"),
		SMTPUsername:            v.GetString("SMTP_USER"),
		SMTPPassword:            v.GetString("SMTP_PASS"),
		SMTPFrom:                v.GetString("SMTP_FROM"),
		SMTPAdminTo:             v.GetString("SMTP_ADMIN_TO"),
	}
}
