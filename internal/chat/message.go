// Package chat implements the conversation model, its list adapter, the
// response generator and the send cycle that ties them together.
package chat

// RowKind selects the visual variant used for a message.
type RowKind int

const (
	UserRow RowKind = iota + 1
	AssistantRow
)

func (k RowKind) String() string {
	switch k {
	case UserRow:
		return "user"
	case AssistantRow:
		return "assistant"
	default:
		return "unknown"
	}
}

// KindOf returns the row variant for the given authorship.
func KindOf(isUser bool) RowKind {
	if isUser {
		return UserRow
	}
	return AssistantRow
}

// Message is one immutable chat entry
type Message struct {
	text   string
	isUser bool
}

// NewUserMessage creates a message authored by the human operator
func NewUserMessage(text string) Message {
	return Message{text: text, isUser: true}
}

// NewAssistantMessage creates a message authored by the assistant
func NewAssistantMessage(text string) Message {
	return Message{text: text}
}

// Text returns the message body
func (m Message) Text() string { return m.text }

// IsUser reports whether the human operator authored the message
func (m Message) IsUser() bool { return m.isUser }

// Kind returns the row variant for the message
func (m Message) Kind() RowKind { return KindOf(m.isUser) }
