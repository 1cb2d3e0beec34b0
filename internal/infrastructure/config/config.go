// Package config provides configuration management for dockspace with Viper integration.
package config

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for dockspace.
type Config struct {
	Docking  DockingConfig  `mapstructure:"docking" toml:"docking" yaml:"docking" json:"docking"`
	Viewport ViewportConfig `mapstructure:"viewport" toml:"viewport" yaml:"viewport" json:"viewport"`
	Layout   LayoutConfig   `mapstructure:"layout" toml:"layout" yaml:"layout" json:"layout"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" yaml:"logging" json:"logging"`
}

// DockingConfig holds the dock engine tunables.
type DockingConfig struct {
	// ZoneMargin is the edge drop band as a fraction of the shorter leaf side.
	ZoneMargin float64 `mapstructure:"zone_margin" toml:"zone_margin" yaml:"zone_margin" json:"zone_margin" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=0.5,default=0.3"`
	// MinPanePercent bounds how far a split divider can be dragged.
	MinPanePercent float64 `mapstructure:"min_pane_percent" toml:"min_pane_percent" yaml:"min_pane_percent" json:"min_pane_percent" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=50,default=10"`
	// ResizeStepPercent is the divider movement per resize keystroke.
	ResizeStepPercent float64 `mapstructure:"resize_step_percent" toml:"resize_step_percent" yaml:"resize_step_percent" json:"resize_step_percent" jsonschema:"exclusiveMinimum=0,maximum=50,default=5"`
}

// ViewportConfig is the default viewport used by the CLI.
type ViewportConfig struct {
	Width  float64 `mapstructure:"width" toml:"width" yaml:"width" json:"width" jsonschema:"exclusiveMinimum=0,default=800"`
	Height float64 `mapstructure:"height" toml:"height" yaml:"height" json:"height" jsonschema:"exclusiveMinimum=0,default=600"`
}

// LayoutConfig selects the initial dock layout.
type LayoutConfig struct {
	Preset string `mapstructure:"preset" toml:"preset" yaml:"preset" json:"preset" jsonschema:"enum=editor,enum=single,default=editor"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" yaml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" yaml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}
