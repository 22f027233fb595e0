package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config carries everything the process reads from the environment.
// A .env file, if present, is loaded by main before decoding.
type Config struct {
	Port      string `env:"PORT,default=3000"`
	Env       string `env:"ENV,default=dev"`
	APIKey    string `env:"API_KEY,required"`
	JWTSecret string `env:"JWT_SECRET,required"`

	Database struct {
		Host     string `env:"DB_HOST,default=localhost"`
		Port     string `env:"DB_PORT,default=5432"`
		User     string `env:"DB_USER,default=postgres"`
		Password string `env:"DB_PASSWORD"`
		Name     string `env:"DB_NAME,default=mealbase"`
		SSLMode  string `env:"DB_SSLMODE,default=disable"`
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	return &cfg, nil
}

// DSN assembles the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Database.Host, c.Database.User, c.Database.Password,
		c.Database.Name, c.Database.Port, c.Database.SSLMode)
}
