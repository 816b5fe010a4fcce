// Package config loads process configuration from the environment. A local
// .env file is honored for development runs; deployed functions get their
// values from the runtime environment.
package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Push providers.
const (
	ProviderFCM  = "fcm"
	ProviderExpo = "expo"
)

type Config struct {
	ProjectID       string `env:"FIREBASE_PROJECT_ID" envDefault:"mishwar-prod"`
	DatabaseURL     string `env:"FIREBASE_DATABASE_URL" envDefault:"https://mishwar-prod.firebaseio.com"`
	Region          string `env:"FUNCTION_REGION" envDefault:"europe-west1"`
	PushProvider    string `env:"PUSH_PROVIDER" envDefault:"fcm"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
}

var loadEnvOnce sync.Once

// Load parses the environment into a Config.
func Load() (Config, error) {
	loadEnvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.PushProvider != ProviderFCM && cfg.PushProvider != ProviderExpo {
		return Config{}, fmt.Errorf("unknown push provider %q", cfg.PushProvider)
	}
	return cfg, nil
}
