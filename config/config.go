// Package config loads the SDK configuration from YAML files, .env files,
// and environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nexos-labs/nexos-go/core"
)

// EnvPrefix is the prefix of every environment variable the loader reads.
const EnvPrefix = "NEXOS_"

// File mirrors core.Config in the YAML configuration file. Durations are
// expressed in seconds.
type File struct {
	BaseURL            string  `yaml:"base_url"`
	APIKey             string  `yaml:"api_key"`
	Version            string  `yaml:"version"`
	Timeout            int     `yaml:"timeout"`
	Retries            int     `yaml:"retries"`
	ExponentialBackoff bool    `yaml:"exponential_backoff"`
	MinimumWait        int     `yaml:"minimum_wait"`
	MaximumWait        int     `yaml:"maximum_wait"`
	ReraiseExceptions  bool    `yaml:"reraise_exceptions"`
	RateLimit          float64 `yaml:"rate_limit"`
	FollowRedirects    *bool   `yaml:"follow_redirects"`
}

// Load assembles a core.Config. The optional YAML file at path is read first
// (a missing file is not an error), then a .env file in the working directory
// if present, then NEXOS_* environment variables override both. The result
// is validated, so a configuration missing base_url or api_key fails here.
func Load(path string) (core.Config, error) {
	var file File
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return core.Config{}, fmt.Errorf("config: reading %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &file); err != nil {
			return core.Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	// .env never overrides variables already exported in the environment.
	_ = godotenv.Load()

	cfg := file.toConfig()
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return core.Config{}, err
	}
	return cfg, nil
}

// FromEnv assembles a core.Config from .env and environment variables alone.
func FromEnv() (core.Config, error) {
	return Load("")
}

func (f File) toConfig() core.Config {
	cfg := core.Config{
		BaseURL:            f.BaseURL,
		APIKey:             core.NewSecret(f.APIKey),
		Version:            f.Version,
		Timeout:            time.Duration(f.Timeout) * time.Second,
		Retries:            f.Retries,
		ExponentialBackoff: f.ExponentialBackoff,
		MinimumWait:        time.Duration(f.MinimumWait) * time.Second,
		MaximumWait:        time.Duration(f.MaximumWait) * time.Second,
		ReraiseExceptions:  f.ReraiseExceptions,
		RateLimit:          f.RateLimit,
		FollowRedirects:    true,
	}
	if f.Retries == 0 {
		cfg.Retries = core.DefaultRetries
	}
	if f.FollowRedirects != nil {
		cfg.FollowRedirects = *f.FollowRedirects
	}
	return cfg
}

func applyEnv(cfg *core.Config) {
	if v := os.Getenv(EnvPrefix + "BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvPrefix + "API_KEY"); v != "" {
		cfg.APIKey = core.NewSecret(v)
	}
	if v := os.Getenv(EnvPrefix + "VERSION"); v != "" {
		cfg.Version = v
	}
	if v, ok := envInt("TIMEOUT"); ok {
		cfg.Timeout = time.Duration(v) * time.Second
	}
	if v, ok := envInt("RETRIES"); ok {
		cfg.Retries = v
	}
	if v, ok := envBool("EXPONENTIAL_BACKOFF"); ok {
		cfg.ExponentialBackoff = v
	}
	if v, ok := envInt("MINIMUM_WAIT"); ok {
		cfg.MinimumWait = time.Duration(v) * time.Second
	}
	if v, ok := envInt("MAXIMUM_WAIT"); ok {
		cfg.MaximumWait = time.Duration(v) * time.Second
	}
	if v, ok := envBool("RERAISE_EXCEPTIONS"); ok {
		cfg.ReraiseExceptions = v
	}
	if v := os.Getenv(EnvPrefix + "RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimit = f
		}
	}
	if v, ok := envBool("FOLLOW_REDIRECTS"); ok {
		cfg.FollowRedirects = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(EnvPrefix + key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(EnvPrefix + key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
