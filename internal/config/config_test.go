package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("testdata/does-not-exist.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("default addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Scoring.MediumThreshold != 1 || cfg.Scoring.HighThreshold != 3 {
		t.Errorf("default thresholds = %d/%d, want 1/3",
			cfg.Scoring.MediumThreshold, cfg.Scoring.HighThreshold)
	}
	if cfg.Logging.PreviewMode != "redacted" {
		t.Errorf("default preview_mode = %q, want redacted", cfg.Logging.PreviewMode)
	}
	if !cfg.Audit.Stdout {
		t.Error("default config should enable the stdout audit sink")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "riskgate.yaml")
	data := `
server:
  addr: ":9090"
  max_in_flight_requests: 8
logging:
  level: debug
scoring:
  medium_threshold: 2
  high_threshold: 5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Server.MaxInFlightRequests != 8 {
		t.Errorf("max_in_flight_requests = %d, want 8", cfg.Server.MaxInFlightRequests)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Scoring.MediumThreshold != 2 || cfg.Scoring.HighThreshold != 5 {
		t.Errorf("thresholds = %d/%d, want 2/5",
			cfg.Scoring.MediumThreshold, cfg.Scoring.HighThreshold)
	}
	// Untouched sections still get defaults.
	if cfg.Server.MaxRequestBodyBytes != 1<<20 {
		t.Errorf("max_request_body_bytes = %d, want default", cfg.Server.MaxRequestBodyBytes)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
