package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	CORSAllowedOrigins   []string `envconfig:"CORS_ALLOWED_ORIGINS"`
	CORSAllowCredentials bool     `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`

	// SecureCookies marks the session cookie Secure; off by default so the
	// service works behind plain-HTTP local setups.
	SecureCookies bool `envconfig:"SECURE_COOKIES" default:"false"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
