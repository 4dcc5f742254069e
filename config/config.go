package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port         string `envconfig:"PORT" default:"8080"`
	StoreBackend string `envconfig:"STORE_BACKEND" default:"postgres"` // postgres | csv | memory
	DatabaseURL  string `envconfig:"DB_URL"`
	DataDir      string `envconfig:"DATA_DIR" default:"data"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`

	RemindersEnabled bool   `envconfig:"REMINDERS_ENABLED" default:"false"`
	TwilioAccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `envconfig:"TWILIO_FROM_NUMBER"`
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
