package main

import (
	"os"
	"path/filepath"

	"github.com/jboczar/digest"
	"gopkg.in/yaml.v3"
)

// Config holds defaults sourced from the config file and environment.
// Explicit command-line flags take precedence over all of these.
type Config struct {
	APIKey    string `yaml:"apiKey"`
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	Engine    string `yaml:"engine"`
	Length    string `yaml:"length"`
	OutputDir string `yaml:"outputDir"`
	Timeout   string `yaml:"timeout"`
	Retries   *int   `yaml:"retries"`
	UserAgent string `yaml:"userAgent"`
}

// ConfigPath returns the config file location: $DIGEST_CONFIG if set,
// otherwise ~/.config/digest/config.yaml.
func ConfigPath() string {
	if path := os.Getenv("DIGEST_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "digest", "config.yaml")
}

// LoadConfig reads the config file at path, then applies environment
// overrides. A missing file is not an error; a malformed one is ECONFIG.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file is fine.
		case err != nil:
			return nil, digest.WrapErrorf(err, digest.ECONFIG, "failed to read config %s", path)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, digest.WrapErrorf(err, digest.ECONFIG, "failed to parse config %s", path)
			}
		}
	}

	// Environment overrides file values.
	if v := os.Getenv("DIGEST_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("DIGEST_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("DIGEST_LENGTH"); v != "" {
		cfg.Length = v
	}
	if v := os.Getenv("DIGEST_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("DIGEST_MODEL"); v != "" {
		cfg.Model = v
	}

	return cfg, nil
}

// ResolveAPIKey picks the credential for the given provider: the explicit
// flag wins, then DIGEST_API_KEY / config, then the provider's own
// conventional environment variable.
func ResolveAPIKey(flag string, provider string, cfg *Config) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}

	envVar := "GEMINI_API_KEY"
	if provider == "openai" {
		envVar = "OPENAI_API_KEY"
	}
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}

	return "", digest.Errorf(digest.ECONFIG, "no API key configured (set --api-key, DIGEST_API_KEY, or %s)", envVar)
}
