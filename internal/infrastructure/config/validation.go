package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/quadspace/internal/domain/url"
	"github.com/rs/zerolog"
)

const maxSettleDelayMs = 1000

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateWorkspaces(config)...)
	validationErrors = append(validationErrors, validateHistory(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width <= 0 {
		validationErrors = append(validationErrors, "window.width must be positive")
	}
	if config.Window.Height <= 0 {
		validationErrors = append(validationErrors, "window.height must be positive")
	}
	if strings.TrimSpace(config.Window.Label) == "" {
		validationErrors = append(validationErrors, "window.label must not be empty")
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	w := config.Layout.SidebarWidth
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		validationErrors = append(validationErrors, "layout.sidebar_width must be a non-negative number")
	} else if config.Window.Width > 0 && w > float64(config.Window.Width) {
		validationErrors = append(validationErrors, "layout.sidebar_width must not exceed window.width")
	}
	if config.Layout.SettleDelayMs < 0 || config.Layout.SettleDelayMs > maxSettleDelayMs {
		validationErrors = append(validationErrors,
			fmt.Sprintf("layout.settle_delay_ms must be between 0 and %d", maxSettleDelayMs))
	}
	if _, err := url.Validate(config.Layout.PlaceholderURL); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("layout.placeholder_url is invalid: %v", err))
	}
	return validationErrors
}

func validateWorkspaces(config *Config) []string {
	if strings.TrimSpace(config.Workspaces.Path) == "" {
		return []string{"workspaces.path must not be empty"}
	}
	return nil
}

func validateHistory(config *Config) []string {
	if config.History.MaxEntries < 0 {
		return []string{"history.max_entries must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil || config.Logging.Level == "" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB <= 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be positive")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}
