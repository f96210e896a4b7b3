package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/medobsmind/medobs/internal/chat"
	apierrors "github.com/medobsmind/medobs/internal/errors"
	"github.com/medobsmind/medobs/internal/prefs"
)

// closeSettingsMsg is sent when the settings screen is dismissed. saved is
// the persisted model name, empty when nothing was saved.
type closeSettingsMsg struct {
	saved string
}

// feedbackClearMsg clears the settings feedback line
type feedbackClearMsg struct{}

// settingsView receives directives from the settings controller
type settingsView struct {
	confirmation string
	err          error
}

func (v *settingsView) ShowSelectionRequiredError(err error) {
	v.err = err
	v.confirmation = ""
}

func (v *settingsView) ShowSettingsSavedConfirmation(modelName string) {
	v.confirmation = modelName
	v.err = nil
}

// SettingsModel is the model selection screen
type SettingsModel struct {
	settings *chat.Settings
	view     *settingsView
	options  []prefs.ModelOption
	cursor   int

	// standalone quits the program on close instead of returning to chat
	standalone      bool
	feedbackTimeout time.Duration

	width  int
	height int
}

// NewSettingsModel creates the settings screen with the stored selection
// checked.
func NewSettingsModel(store prefs.Store, log *zap.Logger) SettingsModel {
	view := &settingsView{}
	settings := chat.NewSettings(store, view, log)
	checked := settings.Load()

	options := prefs.Options()
	cursor := 0
	for i, o := range options {
		if o == checked {
			cursor = i
		}
	}

	return SettingsModel{
		settings:        settings,
		view:            view,
		options:         options,
		cursor:          cursor,
		feedbackTimeout: 2 * time.Second,
	}
}

// NewStandaloneSettingsModel creates a settings screen that exits the
// program when closed.
func NewStandaloneSettingsModel(store prefs.Store, log *zap.Logger) SettingsModel {
	m := NewSettingsModel(store, log)
	m.standalone = true
	return m
}

// Saved returns the confirmed model name, if the last save succeeded
func (m SettingsModel) Saved() string { return m.view.confirmation }

// Checked returns the currently checked option
func (m SettingsModel) Checked() prefs.ModelOption { return m.settings.Selected() }

// Init initializes the model
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// clearFeedback returns a command that clears the feedback after a delay
func clearFeedback(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackClearMsg{}
	})
}

func closeSettings(saved string) tea.Cmd {
	return func() tea.Msg { return closeSettingsMsg{saved: saved} }
}

// Update handles messages and updates the model
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case feedbackClearMsg:
		m.view.err = nil

	case closeSettingsMsg:
		if m.standalone {
			return m, tea.Quit
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc", "q":
			return m, closeSettings("")

		case "up", "k":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.options) - 1
			}

		case "down", "j":
			m.cursor++
			if m.cursor >= len(m.options) {
				m.cursor = 0
			}

		case " ", "enter":
			m.settings.Select(m.options[m.cursor])
			m.view.err = nil

		case "x":
			m.settings.Clear()

		case "s":
			name, err := m.settings.Save()
			if err != nil {
				// Storage errors bypass the view, so show every error here
				m.view.err = err
				return m, clearFeedback(m.feedbackTimeout)
			}
			return m, closeSettings(name)
		}
	}

	return m, nil
}

// View renders the settings screen
func (m SettingsModel) View() string {
	width := m.width - 8
	if width < 40 {
		width = 40
	}

	var content strings.Builder
	content.WriteString(settingsHeaderStyle.Render("⚙ Model Settings"))
	content.WriteString("\n")

	checked := m.settings.Selected()
	for i, o := range m.options {
		cursor := "  "
		nameStyle := settingsItemStyle
		if i == m.cursor {
			cursor = settingsCursorStyle.Render("▸ ")
			nameStyle = settingsSelectedStyle
		}

		radio := "( )"
		if o == checked {
			radio = settingsCheckedStyle.Render("(•)")
		}

		content.WriteString(fmt.Sprintf("%s%s %s\n", cursor, radio, nameStyle.Render(o.DisplayName())))
		content.WriteString(settingsDescStyle.Render(o.Description()))
		content.WriteString("\n")
	}

	if m.view.err != nil {
		content.WriteString("\n")
		content.WriteString(errorStyle.Render("⚠ " + settingsErrorText(m.view.err)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(renderShortcuts(width-4,
		[2]string{"↑↓", "Navigate"},
		[2]string{"Space", "Check"},
		[2]string{"x", "Clear"},
		[2]string{"s", "Save"},
		[2]string{"Esc", "Back"},
	))

	return settingsPanelStyle.Width(width).Render(content.String())
}

func settingsErrorText(err error) string {
	if apierrors.IsNoSelectionError(err) {
		return "Please select a model before saving"
	}
	return fmt.Sprintf("Error: %v", err)
}
