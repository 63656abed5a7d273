package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is everything the process reads from the environment. The session
// secret ships with an insecure development default; override it with
// SESSION_SECRET for anything beyond local use.
type Config struct {
	HTTPAddr      string `envconfig:"HTTP_ADDR" default:":8080"`
	SessionSecret string `envconfig:"SESSION_SECRET" default:"dev-session-secret-change-me"`

	// sqlite is the zero-setup default; set DB_DRIVER=postgres for a real deploy.
	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"shiftcheck.db"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"password"`
	DBName     string `envconfig:"DB_NAME" default:"shiftcheck"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBTimezone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

// Load reads .env if present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
