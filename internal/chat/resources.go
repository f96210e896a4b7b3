package chat

import (
	_ "embed"
	"strings"
)

//go:embed resources/welcome.txt
var welcomeText string

//go:embed resources/system_prompt.txt
var systemPromptText string

// DefaultWelcomeMessage is the assistant entry seeded into a new conversation.
func DefaultWelcomeMessage() string {
	return strings.TrimSpace(welcomeText)
}

// DefaultSystemPrompt is the fixed system prompt quoted in generated replies.
func DefaultSystemPrompt() string {
	return strings.TrimSpace(systemPromptText)
}
