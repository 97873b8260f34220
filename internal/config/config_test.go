package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.yaml", `
endpoint: node.example.com:8545
timeout: 5s
max_concurrency: 25
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Endpoint != "node.example.com:8545" {
		t.Errorf("endpoint = %s", cfg.Endpoint)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %s", cfg.Timeout)
	}
	if cfg.MaxConcurrency != 25 {
		t.Errorf("max_concurrency = %d", cfg.MaxConcurrency)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TEST_RPC_URL", "https://mainnet.example.com/v2/secret")
	path := writeFile(t, "config.yaml", "endpoint: ${TEST_RPC_URL}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Endpoint != "https://mainnet.example.com/v2/secret" {
		t.Errorf("endpoint = %s, env var was not expanded", cfg.Endpoint)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", "endpoint: localhost:8545\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("default timeout = %s, want 30s", cfg.Timeout)
	}
	if cfg.MaxConcurrency != 100 {
		t.Errorf("default max_concurrency = %d, want 100", cfg.MaxConcurrency)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults are valid", *Default(), false},
		{"missing endpoint", Config{}, true},
		{"negative timeout", Config{Endpoint: "x", Timeout: -1}, true},
		{"negative concurrency", Config{Endpoint: "x", MaxConcurrency: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
