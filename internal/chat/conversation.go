package chat

import (
	"strings"

	apierrors "github.com/medobsmind/medobs/internal/errors"
)

// Listener receives one notification per successful append.
type Listener interface {
	RowInserted(index int)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(index int)

// RowInserted calls f(index)
func (f ListenerFunc) RowInserted(index int) { f(index) }

// Conversation is an ordered, append-only sequence of messages.
//
// It is not safe for concurrent use; all calls are expected from the
// goroutine that owns the screen.
type Conversation struct {
	messages  []Message
	listeners []Listener
	welcome   string
}

// NewConversation creates an empty conversation that seeds welcome as its
// first entry. An empty welcome uses DefaultWelcomeMessage.
func NewConversation(welcome string) *Conversation {
	if strings.TrimSpace(welcome) == "" {
		welcome = DefaultWelcomeMessage()
	}
	return &Conversation{welcome: welcome}
}

// Subscribe registers l for insert notifications, in registration order.
func (c *Conversation) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

// SeedWelcome appends the welcome entry if the conversation is empty and
// reports whether it did.
func (c *Conversation) SeedWelcome() bool {
	if len(c.messages) > 0 {
		return false
	}
	c.append(NewAssistantMessage(c.welcome))
	return true
}

// AppendUserMessage appends the trimmed text as a user entry and returns its
// index. Text that is empty after trimming is rejected with a
// ValidationError and the conversation is left unchanged.
func (c *Conversation) AppendUserMessage(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return -1, apierrors.NewValidationError("")
	}
	return c.append(NewUserMessage(trimmed)), nil
}

// AppendAssistantMessage appends text as an assistant entry and returns its
// index.
func (c *Conversation) AppendAssistantMessage(text string) int {
	return c.append(NewAssistantMessage(text))
}

func (c *Conversation) append(m Message) int {
	c.messages = append(c.messages, m)
	index := len(c.messages) - 1
	for _, l := range c.listeners {
		l.RowInserted(index)
	}
	return index
}

// Len returns the number of entries
func (c *Conversation) Len() int {
	return len(c.messages)
}

// At returns the entry at index
func (c *Conversation) At(index int) (Message, bool) {
	if index < 0 || index >= len(c.messages) {
		return Message{}, false
	}
	return c.messages[index], true
}

// Messages returns a copy of all entries in display order
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// LastAssistantText returns the most recent assistant entry, if any
func (c *Conversation) LastAssistantText() (string, bool) {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if !c.messages[i].isUser {
			return c.messages[i].text, true
		}
	}
	return "", false
}
