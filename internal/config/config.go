package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultDatabaseURL keeps drogueria.db in the working directory.
const DefaultDatabaseURL = "sqlite:///drogueria.db"

// Config holds application configuration values.
type Config struct {
	Env         string
	LogLevel    string
	DatabaseURL string
	SeedPath    string
}

// Load resolves configuration from flags, then environment variables, then
// defaults. Variables from a .env file are seen as environment variables
// once the caller has loaded them.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("drogueria", pflag.ContinueOnError)
	fs.String("db", DefaultDatabaseURL, "database url (sqlite:///path)")
	fs.String("seed", "", "optional product catalog CSV to load after initialization")
	fs.String("log-level", "info", "trace, debug, info, warn or error")
	fs.String("env", "development", "development prints human readable logs, anything else JSON")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("database_url", DefaultDatabaseURL)
	v.SetDefault("seed_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("app_env", "development")
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"database_url": "db",
		"seed_path":    "seed",
		"log_level":    "log-level",
		"app_env":      "env",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	cfg := Config{
		Env:         v.GetString("app_env"),
		LogLevel:    strings.ToLower(v.GetString("log_level")),
		DatabaseURL: strings.TrimSpace(v.GetString("database_url")),
		SeedPath:    v.GetString("seed_path"),
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = DefaultDatabaseURL
	}
	return cfg, nil
}
