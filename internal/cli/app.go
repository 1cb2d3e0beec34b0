// Package cli wires configuration, logging and the dock container for the
// dockspace commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/dockspace/internal/application/usecase"
	"github.com/bnema/dockspace/internal/cli/styles"
	"github.com/bnema/dockspace/internal/domain/entity"
	"github.com/bnema/dockspace/internal/infrastructure/config"
	"github.com/bnema/dockspace/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config   *config.Config
	Theme    *styles.Theme
	Renderer *styles.DockRenderer

	configMgr *config.Manager

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg, loadErr := loadConfig()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("DOCKSPACE_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(logLevel),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	theme := styles.NewTheme()

	return &App{
		Config:    cfg,
		Theme:     theme,
		Renderer:  styles.NewDockRenderer(theme),
		configMgr: mgr,
		ctx:       ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ConfigFile returns the path of the loaded config file, if any.
func (a *App) ConfigFile() string {
	if a.configMgr == nil {
		return ""
	}
	return a.configMgr.GetConfigFile()
}

// DockOptions maps the docking config onto container options.
func (a *App) DockOptions() usecase.DockOptions {
	return DockOptionsFromConfig(a.Config)
}

// DockOptionsFromConfig maps a docking config onto container options.
func DockOptionsFromConfig(cfg *config.Config) usecase.DockOptions {
	return usecase.DockOptions{
		ZoneMargin:     cfg.Docking.ZoneMargin,
		MinPanePercent: cfg.Docking.MinPanePercent,
	}
}

// WatchConfig calls onChange with every valid edit of the config file.
// onChange runs on the watcher goroutine. It is a no-op when no config
// file could be loaded.
func (a *App) WatchConfig(onChange func(*config.Config)) {
	if a.configMgr == nil || a.configMgr.GetConfigFile() == "" {
		return
	}

	a.configMgr.OnConfigChange(onChange)
	if err := a.configMgr.Watch(); err != nil {
		logging.FromContext(a.ctx).Warn().Err(err).Msg("config watch unavailable")
	}
}

// Viewport returns the configured viewport, optionally overridden.
func (a *App) Viewport(width, height float64) entity.Rect {
	if width <= 0 {
		width = a.Config.Viewport.Width
	}
	if height <= 0 {
		height = a.Config.Viewport.Height
	}
	return entity.NewRect(0, 0, width, height)
}

// NewDock builds a container laid out with the named preset and sized to
// the viewport. An empty preset falls back to the configured one.
func (a *App) NewDock(preset string, viewport entity.Rect) (*usecase.DockContainer, error) {
	if preset == "" {
		preset = a.Config.Layout.Preset
	}

	tmpl, err := usecase.LayoutPreset(preset)
	if err != nil {
		return nil, err
	}

	dock := usecase.NewDockContainer(a.ctx, a.DockOptions())
	if err := dock.BuildLayout(tmpl, usecase.NewTemplateWindows(tmpl)); err != nil {
		return nil, fmt.Errorf("build %s layout: %w", preset, err)
	}
	dock.Update(viewport)

	logging.FromContext(a.ctx).Debug().
		Str("preset", preset).
		Int("windows", len(dock.GetWindows())).
		Msg("dock layout built")

	return dock, nil
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be read.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
