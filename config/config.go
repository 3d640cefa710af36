package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port              int           `yaml:"port"`
	RateLimitPerSec   float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst    int           `yaml:"rate_limit_burst"`
	SessionTTLSeconds int           `yaml:"session_ttl_seconds"`
	SessionTTL        time.Duration `yaml:"-"` // Ignored by YAML parser
	CORSOrigins       []string      `yaml:"cors_origins"`
}

// BackendConfig describes the carpark lookup backend.
type BackendConfig struct {
	BaseURL        string            `yaml:"base_url"`
	TimeoutSeconds *int              `yaml:"timeout_seconds"`
	Timeout        time.Duration     `yaml:"-"`
	HTTPProxy      string            `yaml:"http_proxy"`
	Headers        map[string]string `yaml:"headers"`
}

const (
	defaultPort           = 8080
	defaultBaseURL        = "http://localhost:5000"
	defaultTimeout        = 30
	defaultSessionTTL     = 900
	defaultRateLimit      = 10
	defaultRateLimitBurst = 5
)

// Load reads the configuration from the given path. A missing file is not an
// error: defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	var cfg Config

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		log.Printf("config file %s not found; using defaults", path)
	default:
		return nil, err
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// applyEnv lets deployments override the settings that differ per environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("CARPARK_BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("ignoring invalid PORT %q: %v", v, err)
		} else {
			cfg.Server.Port = port
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = defaultRateLimit
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = defaultRateLimitBurst
	}
	if cfg.Server.SessionTTLSeconds <= 0 {
		cfg.Server.SessionTTLSeconds = defaultSessionTTL
	}
	cfg.Server.SessionTTL = time.Duration(cfg.Server.SessionTTLSeconds) * time.Second

	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")
	if cfg.Backend.BaseURL == "" {
		log.Printf("backend.base_url is not set; defaulting to %s", defaultBaseURL)
		cfg.Backend.BaseURL = defaultBaseURL
	}

	// An explicit 0 disables the client timeout.
	timeout := defaultTimeout
	if cfg.Backend.TimeoutSeconds != nil && *cfg.Backend.TimeoutSeconds >= 0 {
		timeout = *cfg.Backend.TimeoutSeconds
	}
	cfg.Backend.Timeout = time.Duration(timeout) * time.Second
}
