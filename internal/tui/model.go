package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/medobsmind/medobs/internal/chat"
	apierrors "github.com/medobsmind/medobs/internal/errors"
	"github.com/medobsmind/medobs/internal/prefs"
	"github.com/medobsmind/medobs/internal/render"
)

// Message types for the chat screen
type (
	// openSettingsMsg asks the app to show the settings screen
	openSettingsMsg struct{}

	// noticeClearMsg clears the validation notice and feedback line. Only
	// the tick matching the latest scheduled seq clears anything.
	noticeClearMsg struct {
		seq int
	}
)

// exitWords end the chat when submitted as the whole message
var exitWords = map[string]bool{
	"exit":  true,
	"quit":  true,
	"/exit": true,
	"/quit": true,
}

// chatView receives directives from the session. The model applies them to
// its widgets after each session call.
type chatView struct {
	title         string
	notice        error
	inserted      int
	scrollTarget  int
	scrollPending bool
	clearInput    bool
}

func (v *chatView) RowInserted(index int) { v.inserted++ }

func (v *chatView) ScrollTo(index int) {
	v.scrollTarget = index
	v.scrollPending = true
}

func (v *chatView) ClearInputField() { v.clearInput = true }

func (v *chatView) ShowValidationError(err error) { v.notice = err }

func (v *chatView) SetTitleSuffix(modelName string) { v.title = modelName }

// ChatOptions configures a chat screen
type ChatOptions struct {
	Generator chat.Generator
	Logger    *zap.Logger
	Welcome   string
	Markdown  render.Options
}

// ChatModel is the conversation screen
type ChatModel struct {
	session *chat.Session
	view    *chatView
	log     *zap.Logger

	viewport viewport.Model
	textarea textarea.Model

	ready         bool
	feedback      string
	noticeTimeout time.Duration
	noticeSeq     int
	copyText      func(string) error

	width  int
	height int
}

// NewChatModel creates the chat screen and activates its session.
func NewChatModel(store prefs.Store, opts ChatOptions) ChatModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	ta := textarea.New()
	ta.Placeholder = "Describe the observation or ask a question..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	view := &chatView{}
	sessionOpts := []chat.Option{
		chat.WithLogger(log),
		chat.WithWelcome(opts.Welcome),
		chat.WithRenderer(RowRenderer(opts.Markdown)),
	}
	if opts.Generator != nil {
		sessionOpts = append(sessionOpts, chat.WithGenerator(opts.Generator))
	}
	session := chat.NewSession(store, view, sessionOpts...)
	session.Activate()

	return ChatModel{
		session:       session,
		view:          view,
		log:           log,
		textarea:      ta,
		noticeTimeout: 3 * time.Second,
		copyText:      clipboard.WriteAll,
	}
}

// chatViewportKeys keeps letter keys for the textarea
func chatViewportKeys() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Down:         key.NewBinding(key.WithKeys("down")),
		Up:           key.NewBinding(key.WithKeys("up")),
	}
}

// Session returns the chat session behind the screen
func (m ChatModel) Session() *chat.Session { return m.session }

// Title returns the header title
func (m ChatModel) Title() string {
	return fmt.Sprintf("Chat (%s)", m.view.title)
}

// Init initializes the model
func (m ChatModel) Init() tea.Cmd {
	return textarea.Blink
}

// clearNoticeLater schedules the notice to clear after noticeTimeout.
// Scheduling again supersedes any tick still pending.
func (m *ChatModel) clearNoticeLater() tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(m.noticeTimeout, func(time.Time) tea.Msg {
		return noticeClearMsg{seq: seq}
	})
}

// Update handles messages and updates the model
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case noticeClearMsg:
		if msg.seq == m.noticeSeq {
			m.view.notice = nil
			m.feedback = ""
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+o":
			return m, func() tea.Msg { return openSettingsMsg{} }

		case "enter":
			return m.submit()
		}

		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit handles the enter key
func (m ChatModel) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())

	switch {
	case exitWords[input]:
		return m, tea.Quit

	case input == "/settings":
		m.textarea.Reset()
		return m, func() tea.Msg { return openSettingsMsg{} }

	case input == "/copy":
		m.textarea.Reset()
		m.feedback = m.copyLastReply()
		cmd := m.clearNoticeLater()
		return m, cmd
	}

	err := m.session.OnSubmitClicked(m.textarea.Value())
	m.sync()

	switch {
	case err == nil:
		m.feedback = ""
		return m, nil
	case errors.Is(err, apierrors.ErrCycleInFlight):
		m.log.Debug("submit ignored while a reply is pending")
		return m, nil
	default:
		cmd := m.clearNoticeLater()
		return m, cmd
	}
}

func (m *ChatModel) copyLastReply() string {
	text, ok := m.session.Conversation().LastAssistantText()
	if !ok {
		return "Nothing to copy"
	}
	if err := m.copyText(text); err != nil {
		m.log.Warn("clipboard write failed", zap.Error(err))
		return fmt.Sprintf("Copy failed: %v", err)
	}
	return "Last reply copied to clipboard"
}

// Resume re-reads the model selection after returning from settings or an
// external change to the preference file.
func (m *ChatModel) Resume() {
	m.session.OnScreenResumed()
	m.sync()
}

// resize lays out the widgets for a new terminal size
func (m *ChatModel) resize(width, height int) {
	m.width = width
	m.height = height

	headerHeight := 3
	inputHeight := 5
	statusHeight := 2

	vpHeight := height - headerHeight - inputHeight - statusHeight - 2
	if vpHeight < 5 {
		vpHeight = 5
	}
	contentWidth := width - 4

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.viewport.KeyMap = chatViewportKeys()
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
	}
	m.textarea.SetWidth(contentWidth - 4)

	// Rows are rendered for the viewport's inner width
	m.session.Adapter().SetWidth(contentWidth - 2)
	m.view.scrollPending = true
	m.sync()
}

// sync applies pending session directives to the widgets
func (m *ChatModel) sync() {
	if m.view.clearInput {
		m.textarea.Reset()
		m.view.clearInput = false
	}
	if !m.ready {
		return
	}

	adapter := m.session.Adapter()
	if m.view.inserted > 0 || m.view.scrollPending {
		m.viewport.SetContent(adapter.Content())
		m.view.inserted = 0
	}

	if m.view.scrollPending {
		m.viewport.SetYOffset(adapter.LineOffset(m.view.scrollTarget))
		m.view.scrollPending = false
	}
}

// View renders the chat screen
func (m ChatModel) View() string {
	if !m.ready {
		return subtitleStyle.Render("  Initializing...")
	}

	contentWidth := m.width - 4
	var sections []string

	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render("✦ "+m.Title()),
		hintStyle.Render("  •  "),
		subtitleStyle.Render("MedObs Mind"),
	)
	sections = append(sections, headerStyle.Width(contentWidth).Render(header))

	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(m.viewport.View()))

	input := lipgloss.JoinVertical(
		lipgloss.Left,
		inputLabelStyle.Render("You"),
		m.textarea.View(),
	)
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(input))

	switch {
	case m.view.notice != nil:
		sections = append(sections, noticeStyle.Render("⚠ "+noticeText(m.view.notice)))
	case m.feedback != "":
		sections = append(sections, feedbackStyle.Render("✓ "+m.feedback))
	}

	sections = append(sections, renderShortcuts(contentWidth,
		[2]string{"Enter", "Send"},
		[2]string{"Ctrl+O", "Model"},
		[2]string{"PgUp/PgDn", "Scroll"},
		[2]string{"Esc", "Quit"},
	))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func noticeText(err error) string {
	if apierrors.IsValidationError(err) {
		return "Please enter a message"
	}
	return err.Error()
}
