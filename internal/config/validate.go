package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the loaded config for required fields and safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return errors.New("server.addr must be set")
	}
	if cfg.Server.MaxRequestBodyBytes <= 0 {
		return errors.New("server.max_request_body_bytes must be positive")
	}
	if cfg.Server.MaxInFlightRequests <= 0 {
		return errors.New("server.max_in_flight_requests must be positive")
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", cfg.Logging.Level)
	}

	switch cfg.Logging.PreviewMode {
	case "off", "redacted", "full":
	default:
		return fmt.Errorf("logging.preview_mode %q must be one of off, redacted, full", cfg.Logging.PreviewMode)
	}

	if cfg.Audit.QueueSize <= 0 {
		return errors.New("audit.queue_size must be positive")
	}
	if cfg.Audit.Workers <= 0 {
		return errors.New("audit.workers must be positive")
	}

	if cfg.Scoring.MediumThreshold < 1 {
		return errors.New("scoring.medium_threshold must be at least 1")
	}
	if cfg.Scoring.HighThreshold < cfg.Scoring.MediumThreshold {
		return fmt.Errorf("scoring.high_threshold %d must not be below scoring.medium_threshold %d",
			cfg.Scoring.HighThreshold, cfg.Scoring.MediumThreshold)
	}

	return nil
}
