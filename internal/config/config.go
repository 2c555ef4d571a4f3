package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds every external setting the service needs.
// The three API/DB secrets are required; the rest have sane defaults.
type Config struct {
	ServerPort   string `mapstructure:"SERVER_PORT"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
	ApifyToken   string `mapstructure:"APIFY_API_TOKEN"`
	ApifyBaseURL string `mapstructure:"APIFY_BASE_URL"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
}

// Load reads configuration from the environment. The caller is expected
// to have loaded .env already (godotenv in main).
func Load() (*Config, error) {
	viper.AutomaticEnv()

	cfg := &Config{
		ServerPort:   viper.GetString("SERVER_PORT"),
		GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
		GeminiModel:  viper.GetString("GEMINI_MODEL"),
		ApifyToken:   viper.GetString("APIFY_API_TOKEN"),
		ApifyBaseURL: viper.GetString("APIFY_BASE_URL"),
		DatabaseURL:  viper.GetString("DATABASE_URL"),
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.5-flash"
	}
	if cfg.ApifyBaseURL == "" {
		cfg.ApifyBaseURL = "https://api.apify.com"
	}
}

func (c *Config) validate() error {
	if c.GeminiAPIKey == "" {
		return errors.New("GEMINI_API_KEY not found in environment")
	}
	if c.ApifyToken == "" {
		return errors.New("APIFY_API_TOKEN not found in environment")
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL not found in environment")
	}
	return nil
}
