package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/medobsmind/medobs/internal/prefs"
)

// PrefsChangedMsg reports that the preference file was written, possibly by
// another process.
type PrefsChangedMsg struct{}

type screen int

const (
	screenChat screen = iota
	screenSettings
)

// AppOptions configures the interactive application
type AppOptions struct {
	ChatOptions

	Store prefs.Store
	// PrefsPath is watched for external changes when set
	PrefsPath string
}

// App switches between the chat and settings screens
type App struct {
	screen   screen
	chat     ChatModel
	settings SettingsModel

	store prefs.Store
	log   *zap.Logger

	width  int
	height int
}

// NewApp creates the application starting on the chat screen.
func NewApp(opts AppOptions) App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	opts.ChatOptions.Logger = log

	return App{
		screen: screenChat,
		chat:   NewChatModel(opts.Store, opts.ChatOptions),
		store:  opts.Store,
		log:    log,
	}
}

// Init initializes the model
func (a App) Init() tea.Cmd {
	return a.chat.Init()
}

// Update routes messages to the active screen
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		updated, cmd := a.chat.Update(msg)
		a.chat = updated.(ChatModel)
		if a.screen == screenSettings {
			s, _ := a.settings.Update(msg)
			a.settings = s.(SettingsModel)
		}
		return a, cmd

	case openSettingsMsg:
		a.log.Debug("opening settings")
		a.settings = NewSettingsModel(a.store, a.log)
		a.settings.width = a.width
		a.settings.height = a.height
		a.screen = screenSettings
		return a, a.settings.Init()

	case closeSettingsMsg:
		a.screen = screenChat
		a.chat.Resume()
		if msg.saved != "" {
			a.chat.feedback = fmt.Sprintf("Model set to %s", msg.saved)
			cmd := a.chat.clearNoticeLater()
			return a, cmd
		}
		return a, nil

	case PrefsChangedMsg:
		a.log.Debug("preferences changed on disk")
		a.chat.Resume()
		return a, nil

	case noticeClearMsg:
		// The chat owns the notice even while settings is on screen
		updated, cmd := a.chat.Update(msg)
		a.chat = updated.(ChatModel)
		return a, cmd
	}

	if a.screen == screenSettings {
		updated, cmd := a.settings.Update(msg)
		a.settings = updated.(SettingsModel)
		return a, cmd
	}

	updated, cmd := a.chat.Update(msg)
	a.chat = updated.(ChatModel)
	return a, cmd
}

// View renders the active screen
func (a App) View() string {
	if a.screen == screenSettings {
		return a.settings.View()
	}
	return a.chat.View()
}

// RunApp starts the interactive chat. When a preference path is given, writes
// to it from outside the program refresh the chat title.
func RunApp(opts AppOptions) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if opts.PrefsPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		w, err := prefs.Watch(ctx, opts.PrefsPath, func() { p.Send(PrefsChangedMsg{}) }, app.log)
		if err != nil {
			app.log.Warn("preference watcher disabled", zap.Error(err))
		} else {
			defer w.Close()
		}
	}

	_, err := p.Run()
	return err
}

// RunSettings starts the settings screen alone and returns the saved model
// name, or "" if the user left without saving.
func RunSettings(store prefs.Store, log *zap.Logger) (string, error) {
	p := tea.NewProgram(NewStandaloneSettingsModel(store, log), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(SettingsModel); ok {
		return m.Saved(), nil
	}
	return "", nil
}
