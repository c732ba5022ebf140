package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joestump/stack-underflow/internal/logging"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration
	}
	Log struct {
		Level  slog.Level
		Format logging.Format
	}
	// SeedPath overrides the embedded question dataset when set.
	SeedPath string
	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string
}

// Load reads config from a .env file (if present), the environment (SU_
// prefix), and an optional stack-underflow.yaml, in increasing order of
// precedence: yaml < .env < real environment.
func Load() (*Config, error) {
	_ = gotenv.Load() // optional .env; never overrides variables already set

	v := viper.New()
	v.SetEnvPrefix("SU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("stack-underflow")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":3000")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("seed.path", "")
	v.SetDefault("cors.allowed_origins", []string{"*"})

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.SeedPath = v.GetString("seed.path")

	timeout, err := time.ParseDuration(v.GetString("http.shutdown_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid SU_HTTP_SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.HTTP.ShutdownTimeout = timeout

	if cfg.Log.Level, err = logging.ParseLevel(v.GetString("log.level")); err != nil {
		return nil, fmt.Errorf("invalid SU_LOG_LEVEL: %w", err)
	}
	if cfg.Log.Format, err = logging.ParseFormat(v.GetString("log.format")); err != nil {
		return nil, fmt.Errorf("invalid SU_LOG_FORMAT: %w", err)
	}

	cfg.AllowedOrigins = splitOrigins(v.GetStringSlice("cors.allowed_origins"))
	if len(cfg.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("SU_CORS_ALLOWED_ORIGINS must not be empty")
	}

	if cfg.HTTP.Addr == "" {
		return nil, fmt.Errorf("SU_HTTP_ADDR is required")
	}

	return cfg, nil
}

// splitOrigins flattens comma separated entries, so both a yaml list and
// SU_CORS_ALLOWED_ORIGINS=a,b work.
func splitOrigins(raw []string) []string {
	var origins []string
	for _, entry := range raw {
		for _, o := range strings.Split(entry, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return origins
}
