package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validPresets    = []string{"editor", "single"}
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDocking(config)...)
	validationErrors = append(validationErrors, validateViewport(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateDocking(config *Config) []string {
	var validationErrors []string
	if config.Docking.ZoneMargin <= 0 || config.Docking.ZoneMargin >= 0.5 {
		validationErrors = append(validationErrors, "docking.zone_margin must be between 0 and 0.5 (exclusive)")
	}
	if config.Docking.MinPanePercent <= 0 || config.Docking.MinPanePercent >= 50 {
		validationErrors = append(validationErrors, "docking.min_pane_percent must be between 0 and 50 (exclusive)")
	}
	if config.Docking.ResizeStepPercent <= 0 || config.Docking.ResizeStepPercent > 50 {
		validationErrors = append(validationErrors, "docking.resize_step_percent must be between 0 (exclusive) and 50")
	}
	return validationErrors
}

func validateViewport(config *Config) []string {
	var validationErrors []string
	if config.Viewport.Width <= 0 {
		validationErrors = append(validationErrors, "viewport.width must be positive")
	}
	if config.Viewport.Height <= 0 {
		validationErrors = append(validationErrors, "viewport.height must be positive")
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	if !slices.Contains(validPresets, config.Layout.Preset) {
		return []string{fmt.Sprintf("layout.preset must be one of %s", strings.Join(validPresets, ", "))}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of %s", strings.Join(validLogLevels, ", ")))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of %s", strings.Join(validLogFormats, ", ")))
	}
	return validationErrors
}

// normalizeConfig lowercases enum-like string values.
func normalizeConfig(config *Config) {
	config.Layout.Preset = strings.ToLower(strings.TrimSpace(config.Layout.Preset))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
}
