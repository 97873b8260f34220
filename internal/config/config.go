// Package config loads the CLI's YAML configuration: which endpoint to talk
// to, the request timeout and the async concurrency bound. Values support
// ${VAR} environment expansion, and a .env file in the working directory is
// honored so endpoint URLs with embedded keys stay out of the config file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings the CLI hands to the ethrpc clients.
type Config struct {
	Endpoint       string        `yaml:"endpoint"`        // RPC endpoint (supports ${VAR} expansion)
	Timeout        time.Duration `yaml:"timeout"`         // HTTP request timeout (e.g. "10s")
	MaxConcurrency int           `yaml:"max_concurrency"` // in-flight request bound for batch calls
}

// Default returns the configuration used when no file is given: the
// conventional local node on 8545.
func Default() *Config {
	return &Config{
		Endpoint:       "localhost:8545",
		Timeout:        30 * time.Second,
		MaxConcurrency: 100,
	}
}

// Validate checks the loaded values and fills in defaults for the ones left
// unset.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0")
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be >= 0")
	}
	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = 100
	}
	return nil
}

// Load reads and parses a YAML configuration file, expanding environment
// variables before parsing so values like endpoint: ${ALCHEMY_URL} work.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnv reads environment variables from a .env file in the current
// working directory and sets them with os.Setenv.
//
// Each line is KEY=VALUE; empty lines and lines starting with # are skipped,
// and surrounding quotes on values are stripped. A missing .env file is not
// an error, the system environment is simply used as-is.
func LoadEnv() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Split on the first "=" so values containing "=" survive.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			value = strings.Trim(value, `"'`)
			os.Setenv(key, value)
		}
	}
}
