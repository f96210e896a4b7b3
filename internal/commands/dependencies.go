package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/medobsmind/medobs/internal/chat"
	"github.com/medobsmind/medobs/internal/config"
	"github.com/medobsmind/medobs/internal/logging"
	"github.com/medobsmind/medobs/internal/prefs"
	"github.com/medobsmind/medobs/internal/render"
	"github.com/medobsmind/medobs/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunApp(opts tui.AppOptions) error
	RunSettings(store prefs.Store, log *zap.Logger) (string, error)
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// Config is the effective user configuration.
	Config config.Config

	// Store persists the model selection.
	Store prefs.Store

	// PrefsPath is the file behind Store, watched while chatting.
	// Empty for in-memory stores.
	PrefsPath string

	// Logger writes to the log file.
	Logger *zap.Logger

	// Generator produces assistant replies.
	Generator chat.Generator

	// TUI is the terminal user interface.
	TUI TUIInterface
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunApp(opts tui.AppOptions) error {
	return tui.RunApp(opts)
}

func (d *DefaultTUI) RunSettings(store prefs.Store, log *zap.Logger) (string, error) {
	return tui.RunSettings(store, log)
}

// NewDependencies loads configuration, opens the log file and the preference
// store under the config directory.
func NewDependencies() (*Dependencies, error) {
	if _, err := config.EnsureConfigDir(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if verboseFlag {
		cfg.LogLevel = "debug"
	}

	logPath, err := config.GetLogPath(cfg)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: logPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}

	prefsPath, err := config.GetPrefsPath()
	if err != nil {
		return nil, err
	}

	tui.SetTheme(cfg.TUITheme)

	return &Dependencies{
		Config:    cfg,
		Store:     prefs.NewFileStore(prefsPath),
		PrefsPath: prefsPath,
		Logger:    logger,
		Generator: chat.NewTemplateGenerator(cfg.SystemPrompt),
		TUI:       &DefaultTUI{},
	}, nil
}

// ChatOptions returns the chat screen options for the configuration
func (d *Dependencies) ChatOptions() tui.ChatOptions {
	return tui.ChatOptions{
		Generator: d.Generator,
		Logger:    d.Logger,
		Welcome:   d.Config.WelcomeMessage,
		Markdown:  render.OptionsFromConfig(d.Config),
	}
}

// Close flushes the logger
func (d *Dependencies) Close() {
	if d.Logger != nil {
		_ = d.Logger.Sync()
	}
}

// loadDependencies is replaced in tests
var loadDependencies = NewDependencies
