package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	// Supabase
	SupabaseURL           string
	SupabaseAnonKey       string
	SupabaseStorageBucket string

	// Admin API
	SupabaseJWTSecret string

	// Database (direct connection, used only for migrations)
	DatabaseURL string

	// Server
	Port            string
	Environment     string
	DefaultLanguage string
	LogLevel        string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SUPABASE_STORAGE_BUCKET", "uploaded-photos")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DEFAULT_LANGUAGE", "uk")
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		SupabaseURL:           viper.GetString("SUPABASE_URL"),
		SupabaseAnonKey:       viper.GetString("SUPABASE_ANON_KEY"),
		SupabaseStorageBucket: viper.GetString("SUPABASE_STORAGE_BUCKET"),

		SupabaseJWTSecret: viper.GetString("SUPABASE_JWT_SECRET"),

		DatabaseURL: viper.GetString("DATABASE_URL"),

		Port:            viper.GetString("PORT"),
		Environment:     viper.GetString("ENVIRONMENT"),
		DefaultLanguage: viper.GetString("DEFAULT_LANGUAGE"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseAnonKey == "" {
		return fmt.Errorf("SUPABASE_ANON_KEY is required")
	}
	return nil
}
