package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nexos-labs/nexos-go/core"
)

// clearEnv unsets every variable the loader reads so tests are hermetic.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BASE_URL", "API_KEY", "VERSION", "TIMEOUT", "RETRIES",
		"EXPONENTIAL_BACKOFF", "MINIMUM_WAIT", "MAXIMUM_WAIT",
		"RERAISE_EXCEPTIONS", "RATE_LIMIT", "FOLLOW_REDIRECTS",
	} {
		t.Setenv(EnvPrefix+key, "")
		os.Unsetenv(EnvPrefix + key)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, `
base_url: https://api.nexos.ai
api_key: sk-from-file
version: v1
timeout: 30
retries: 5
exponential_backoff: true
minimum_wait: 2
maximum_wait: 20
rate_limit: 4.5
follow_redirects: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseURL != "https://api.nexos.ai" {
		t.Errorf("BaseURL = %q, want https://api.nexos.ai", cfg.BaseURL)
	}
	if cfg.APIKey.Expose() != "sk-from-file" {
		t.Errorf("APIKey = %q, want sk-from-file", cfg.APIKey.Expose())
	}
	if cfg.Version != "v1" {
		t.Errorf("Version = %q, want v1", cfg.Version)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.Retries != 5 {
		t.Errorf("Retries = %d, want 5", cfg.Retries)
	}
	if !cfg.ExponentialBackoff {
		t.Error("ExponentialBackoff = false, want true")
	}
	if cfg.MinimumWait != 2*time.Second || cfg.MaximumWait != 20*time.Second {
		t.Errorf("waits = %v/%v, want 2s/20s", cfg.MinimumWait, cfg.MaximumWait)
	}
	if cfg.RateLimit != 4.5 {
		t.Errorf("RateLimit = %v, want 4.5", cfg.RateLimit)
	}
	if cfg.FollowRedirects {
		t.Error("FollowRedirects = true, want false from the file")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, `
base_url: https://file.nexos.ai
api_key: sk-from-file
retries: 5
`)

	t.Setenv(EnvPrefix+"API_KEY", "sk-from-env")
	t.Setenv(EnvPrefix+"RETRIES", "9")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey.Expose() != "sk-from-env" {
		t.Errorf("APIKey = %q, want the env override", cfg.APIKey.Expose())
	}
	if cfg.Retries != 9 {
		t.Errorf("Retries = %d, want the env override 9", cfg.Retries)
	}
	if cfg.BaseURL != "https://file.nexos.ai" {
		t.Errorf("BaseURL = %q, want the file value preserved", cfg.BaseURL)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, `
base_url: https://api.nexos.ai
api_key: sk-test
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Retries != core.DefaultRetries {
		t.Errorf("Retries = %d, want default %d", cfg.Retries, core.DefaultRetries)
	}
	if !cfg.FollowRedirects {
		t.Error("FollowRedirects = false, want true by default")
	}
}

func TestLoadMissingFileFallsThroughToEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPrefix+"BASE_URL", "https://env.nexos.ai")
	t.Setenv(EnvPrefix+"API_KEY", "sk-from-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://env.nexos.ai" {
		t.Errorf("BaseURL = %q, want the env value", cfg.BaseURL)
	}
}

func TestLoadRejectsIncompleteConfig(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, `base_url: https://api.nexos.ai`)

	if _, err := Load(path); !errors.Is(err, core.ErrAPIKeyRequired) {
		t.Errorf("Load() without api_key error = %v, want ErrAPIKeyRequired", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, "base_url: [unclosed")

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML succeeded, want parse error")
	}
}
