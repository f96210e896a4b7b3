package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medobsmind/medobs/internal/chat"
	apierrors "github.com/medobsmind/medobs/internal/errors"
	"github.com/medobsmind/medobs/internal/prefs"
	"github.com/medobsmind/medobs/internal/render"
)

func testChatOptions() ChatOptions {
	return ChatOptions{Markdown: render.DefaultOptions().WithStyle(render.StyleNoTTY)}
}

func newReadyChat(t *testing.T, store prefs.Store) ChatModel {
	t.Helper()
	m := NewChatModel(store, testChatOptions())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(ChatModel)
}

func enter(t *testing.T, m ChatModel, text string) (ChatModel, tea.Cmd) {
	t.Helper()
	m.textarea.SetValue(text)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(ChatModel), cmd
}

func TestNewChatModel_ActivatesSession(t *testing.T) {
	m := NewChatModel(prefs.NewMemoryStore(), testChatOptions())

	if m.Session().Conversation().Len() != 1 {
		t.Errorf("Len() = %d, want welcome only", m.Session().Conversation().Len())
	}
	if m.Title() != "Chat (Balanced)" {
		t.Errorf("Title() = %q", m.Title())
	}
	if m.ready {
		t.Error("model should not be ready before the first WindowSizeMsg")
	}
	if m.View() == "" {
		t.Error("View() should render a placeholder before ready")
	}
}

func TestChatModel_WindowSize(t *testing.T) {
	m := newReadyChat(t, prefs.NewMemoryStore())

	if !m.ready {
		t.Fatal("model should be ready")
	}
	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
	if m.Session().Adapter().Width() != 94 {
		t.Errorf("adapter width = %d", m.Session().Adapter().Width())
	}
	if !strings.Contains(m.viewport.View(), "MedObsMind") {
		t.Error("viewport should show the welcome entry")
	}
	if !strings.Contains(m.View(), "Chat (Balanced)") {
		t.Error("header should show the model suffix")
	}
}

func TestChatModel_Submit(t *testing.T) {
	m := newReadyChat(t, prefs.NewMemoryStore())

	m, _ = enter(t, m, "hello")

	conv := m.Session().Conversation()
	if conv.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", conv.Len())
	}
	reply, _ := conv.At(2)
	if reply.IsUser() || !strings.Contains(reply.Text(), `"hello"`) {
		t.Errorf("reply = %q", reply.Text())
	}
	if m.textarea.Value() != "" {
		t.Errorf("input = %q, want cleared", m.textarea.Value())
	}
	if m.view.notice != nil {
		t.Errorf("unexpected notice: %v", m.view.notice)
	}
	if m.viewport.YOffset != m.Session().Adapter().LineOffset(2) && !m.viewport.AtBottom() {
		t.Error("viewport should scroll to the reply")
	}
}

func TestChatModel_SubmitEmpty(t *testing.T) {
	m := newReadyChat(t, prefs.NewMemoryStore())
	m.noticeTimeout = time.Millisecond

	m, cmd := enter(t, m, "   ")

	if m.Session().Conversation().Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Session().Conversation().Len())
	}
	if !apierrors.IsValidationError(m.view.notice) {
		t.Errorf("notice = %v, want ValidationError", m.view.notice)
	}
	if m.textarea.Value() != "   " {
		t.Errorf("input = %q, want untouched", m.textarea.Value())
	}
	if cmd == nil {
		t.Fatal("expected a command to clear the notice")
	}
	if !strings.Contains(m.View(), "Please enter a message") {
		t.Error("View() should show the validation notice")
	}

	updated, _ := m.Update(cmd())
	if updated.(ChatModel).view.notice != nil {
		t.Error("noticeClearMsg should clear the notice")
	}
}

func TestChatModel_StaleNoticeTickIgnored(t *testing.T) {
	m := newReadyChat(t, prefs.NewMemoryStore())
	m.noticeTimeout = time.Millisecond

	m, first := enter(t, m, "")
	m, second := enter(t, m, " ")
	if first == nil || second == nil {
		t.Fatal("each rejected submit should schedule a clear")
	}

	updated, _ := m.Update(first())
	m = updated.(ChatModel)
	if !apierrors.IsValidationError(m.view.notice) {
		t.Fatal("an older tick must not clear a newer notice")
	}

	updated, _ = m.Update(second())
	m = updated.(ChatModel)
	if m.view.notice != nil {
		t.Errorf("notice = %v, want cleared by the latest tick", m.view.notice)
	}
}

func TestChatModel_ExitWords(t *testing.T) {
	for _, word := range []string{"exit", "quit", "/exit", "/quit"} {
		m := newReadyChat(t, prefs.NewMemoryStore())
		m, cmd := enter(t, m, word)
		if cmd == nil {
			t.Fatalf("%q: expected quit command", word)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: command did not quit", word)
		}
		if m.Session().Conversation().Len() != 1 {
			t.Errorf("%q was sent as a message", word)
		}
	}
}

func TestChatModel_Keys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want tea.Msg
	}{
		{"ctrl+o opens settings", tea.KeyMsg{Type: tea.KeyCtrlO}, openSettingsMsg{}},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, tea.QuitMsg{}},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, tea.QuitMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newReadyChat(t, prefs.NewMemoryStore())
			_, cmd := m.Update(tt.key)
			if cmd == nil {
				t.Fatal("expected a command")
			}
			if got := cmd(); got != tt.want {
				t.Errorf("cmd() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestChatModel_SettingsCommand(t *testing.T) {
	m := newReadyChat(t, prefs.NewMemoryStore())
	m, cmd := enter(t, m, "/settings")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(openSettingsMsg); !ok {
		t.Error("/settings should open the settings screen")
	}
	if m.textarea.Value() != "" {
		t.Error("/settings should clear the input")
	}
}

func TestChatModel_Typing(t *testing.T) {
	m := newReadyChat(t, prefs.NewMemoryStore())
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("jk")})
	m = updated.(ChatModel)

	if m.textarea.Value() != "jk" {
		t.Errorf("input = %q, want letters routed to the textarea", m.textarea.Value())
	}
	if m.viewport.YOffset != 0 {
		t.Error("letter keys must not scroll the viewport")
	}
}

func TestChatModel_Copy(t *testing.T) {
	var copied string
	m := newReadyChat(t, prefs.NewMemoryStore())
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m, _ = enter(t, m, "pulse 88")
	m, cmd := enter(t, m, "/copy")

	want, _ := m.Session().Conversation().LastAssistantText()
	if copied != want {
		t.Errorf("copied %q, want %q", copied, want)
	}
	if m.feedback != "Last reply copied to clipboard" {
		t.Errorf("feedback = %q", m.feedback)
	}
	if cmd == nil {
		t.Error("expected a command to clear the feedback")
	}
	if m.Session().Conversation().Len() != 3 {
		t.Error("/copy must not be sent as a message")
	}
}

func TestChatModel_CustomGenerator(t *testing.T) {
	var gotModel string
	opts := testChatOptions()
	opts.Generator = chat.GeneratorFunc(func(text, model string) string {
		gotModel = model
		return "noted"
	})

	store := prefs.NewMemoryStore()
	_, _ = prefs.SaveSelection(store, prefs.DetailedAnalysis)

	m := NewChatModel(store, opts)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m, _ = enter(t, updated.(ChatModel), "temp 38.2")

	if gotModel != "Detailed Analysis" {
		t.Errorf("generator model = %q", gotModel)
	}
	if text, _ := m.Session().Conversation().LastAssistantText(); text != "noted" {
		t.Errorf("reply = %q", text)
	}
}

func TestChatModel_Resume(t *testing.T) {
	store := prefs.NewMemoryStore()
	m := newReadyChat(t, store)

	_, _ = prefs.SaveSelection(store, prefs.Standard)
	m.Resume()

	if m.Title() != "Chat (Standard)" {
		t.Errorf("Title() = %q", m.Title())
	}
}
