package chat

import "fmt"

// Generator produces an assistant reply for a user message.
//
// Implementations must be synchronous, deterministic and total: the same
// arguments always yield the same reply and no call fails. A backend that
// calls a real model must keep this contract to be a drop-in replacement.
type Generator interface {
	Generate(userText, modelName string) string
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func(userText, modelName string) string

// Generate calls f
func (f GeneratorFunc) Generate(userText, modelName string) string {
	return f(userText, modelName)
}

// TemplateGenerator is the placeholder reply source. It performs no I/O.
type TemplateGenerator struct {
	systemPrompt string
}

// NewTemplateGenerator creates a generator quoting systemPrompt. An empty
// prompt uses DefaultSystemPrompt.
func NewTemplateGenerator(systemPrompt string) *TemplateGenerator {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt()
	}
	return &TemplateGenerator{systemPrompt: systemPrompt}
}

// SystemPrompt returns the prompt quoted in replies
func (g *TemplateGenerator) SystemPrompt() string {
	return g.systemPrompt
}

// Generate builds the simulated reply
func (g *TemplateGenerator) Generate(userText, modelName string) string {
	return fmt.Sprintf("This is a simulated response from %s. "+
		"In a production app, this would connect to the actual AI model API.\n\n"+
		"Your message: \"%s\"\n\n"+
		"System Prompt: %s",
		modelName, userText, g.systemPrompt)
}
