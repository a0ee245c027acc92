package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds riskgate configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Audit   AuditConfig   `yaml:"audit"`
	Scoring ScoringConfig `yaml:"scoring"`
}

type ServerConfig struct {
	Addr                     string `yaml:"addr"` // HTTP listen address, e.g. ":8080"
	MaxRequestBodyBytes      int64  `yaml:"max_request_body_bytes"`
	MaxInFlightRequests      int    `yaml:"max_in_flight_requests"`
	ReadHeaderTimeoutSeconds int    `yaml:"read_header_timeout_seconds"`
	ReadTimeoutSeconds       int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds      int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds       int    `yaml:"idle_timeout_seconds"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error

	// PreviewMode controls what of the scanned text reaches audit
	// events: off (no preview), redacted (PII masked), full.
	PreviewMode string `yaml:"preview_mode"`
}

type AuditConfig struct {
	Stdout                 bool   `yaml:"stdout"`
	FilePath               string `yaml:"file_path"` // JSONL file, empty disables the file sink
	QueueSize              int    `yaml:"queue_size"`
	Workers                int    `yaml:"workers"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

type ScoringConfig struct {
	// MediumThreshold and HighThreshold are the distinct-keyword counts
	// at which a detector reports MEDIUM and HIGH.
	MediumThreshold int `yaml:"medium_threshold"`
	HighThreshold   int `yaml:"high_threshold"`
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{Audit: AuditConfig{Stdout: true}}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MaxRequestBodyBytes <= 0 {
		cfg.Server.MaxRequestBodyBytes = 1 << 20 // 1 MiB of text is plenty
	}
	if cfg.Server.MaxInFlightRequests <= 0 {
		cfg.Server.MaxInFlightRequests = 64
	}
	if cfg.Server.ReadHeaderTimeoutSeconds <= 0 {
		cfg.Server.ReadHeaderTimeoutSeconds = 5
	}
	if cfg.Server.ReadTimeoutSeconds <= 0 {
		cfg.Server.ReadTimeoutSeconds = 10
	}
	if cfg.Server.WriteTimeoutSeconds <= 0 {
		cfg.Server.WriteTimeoutSeconds = 10
	}
	if cfg.Server.IdleTimeoutSeconds <= 0 {
		cfg.Server.IdleTimeoutSeconds = 60
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.PreviewMode == "" {
		cfg.Logging.PreviewMode = "redacted"
	}

	if cfg.Audit.QueueSize <= 0 {
		cfg.Audit.QueueSize = 1000
	}
	if cfg.Audit.Workers <= 0 {
		cfg.Audit.Workers = 1
	}
	if cfg.Audit.ShutdownTimeoutSeconds <= 0 {
		cfg.Audit.ShutdownTimeoutSeconds = 2
	}

	if cfg.Scoring.MediumThreshold <= 0 {
		cfg.Scoring.MediumThreshold = 1
	}
	if cfg.Scoring.HighThreshold <= 0 {
		cfg.Scoring.HighThreshold = 3
	}
}
