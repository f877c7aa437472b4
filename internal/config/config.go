package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config aggregates all runtime settings.
type Config struct {
	App       AppConfig       `envPrefix:"LANDING_"`
	HTTP      HTTPConfig      `envPrefix:"LANDING_HTTP_"`
	Templates TemplatesConfig `envPrefix:"LANDING_TEMPLATES_"`
}

type AppConfig struct {
	Environment string `env:"ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"landing-service"`
	// Debug turns on verbose error pages, debug logging and template reload.
	Debug       bool   `env:"DEBUG" envDefault:"false"`
}

type HTTPConfig struct {
	Host               string        `env:"HOST" envDefault:"0.0.0.0"`
	Port               int           `env:"PORT" envDefault:"5000"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout        time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ReadHeaderTimeout  time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"25s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	TLSCertFile        string        `env:"TLS_CERT_FILE"`
	TLSKeyFile         string        `env:"TLS_KEY_FILE"`
}

type TemplatesConfig struct {
	// Dir holds *.html templates. Empty means the templates embedded in the binary.
	Dir string `env:"DIR"`
}

// Addr returns the host:port pair the server binds to.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction reports whether the service runs in a production environment.
func (c AppConfig) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// Load parses environment variables into Config and performs validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("LANDING_HTTP_PORT must be between 0 and 65535, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("LANDING_HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if (cfg.HTTP.TLSCertFile == "") != (cfg.HTTP.TLSKeyFile == "") {
		return nil, fmt.Errorf("LANDING_HTTP_TLS_CERT_FILE and LANDING_HTTP_TLS_KEY_FILE must be set together")
	}

	if cfg.Templates.Dir != "" {
		info, err := os.Stat(cfg.Templates.Dir)
		if err != nil {
			return nil, fmt.Errorf("LANDING_TEMPLATES_DIR: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("LANDING_TEMPLATES_DIR %q is not a directory", cfg.Templates.Dir)
		}
	}

	return cfg, nil
}
