package config

// Default configuration constants
const (
	// Docking defaults
	defaultZoneMargin        = 0.3
	defaultMinPanePercent    = 10.0
	defaultResizeStepPercent = 5.0

	// Viewport defaults
	defaultViewportWidth  = 800.0
	defaultViewportHeight = 600.0

	// Layout defaults
	defaultLayoutPreset = "editor"

	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Docking: DockingConfig{
			ZoneMargin:        defaultZoneMargin,
			MinPanePercent:    defaultMinPanePercent,
			ResizeStepPercent: defaultResizeStepPercent,
		},
		Viewport: ViewportConfig{
			Width:  defaultViewportWidth,
			Height: defaultViewportHeight,
		},
		Layout: LayoutConfig{
			Preset: defaultLayoutPreset,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
