package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/medobsmind/medobs/internal/chat"
	apierrors "github.com/medobsmind/medobs/internal/errors"
	"github.com/medobsmind/medobs/internal/render"
)

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(render.DefaultTUITheme) })

	if !SetTheme("night") {
		t.Fatal("SetTheme(night) returned false")
	}
	if CurrentTheme().Name != "night" {
		t.Errorf("CurrentTheme() = %q", CurrentTheme().Name)
	}
	if colorPrimary != render.NightTheme.Primary {
		t.Errorf("colorPrimary = %v, want %v", colorPrimary, render.NightTheme.Primary)
	}

	if SetTheme("unknown") {
		t.Error("SetTheme(unknown) should fail")
	}
	if CurrentTheme().Name != "night" {
		t.Error("unknown theme must keep the current one")
	}
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{"nil", nil, nil},
		{"no selection", apierrors.NewNoSelectionError("turbo"), []string{"turbo", "medobs model list"}},
		{"wrapped validation", fmt.Errorf("send: %w", apierrors.NewValidationError("")), []string{"please enter a message", "Hint"}},
		{"plain", fmt.Errorf("disk full"), []string{"disk full"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatError(tt.err)
			if tt.err == nil && got != "" {
				t.Errorf("FormatError(nil) = %q", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatError() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestRowRenderer(t *testing.T) {
	rr := RowRenderer(render.DefaultOptions().WithStyle(render.StyleNoTTY))

	user := rr(chatRow(true, "bp 120/80"), 60)
	if !strings.Contains(user, "You") || !strings.Contains(user, "bp 120/80") {
		t.Errorf("user row = %q", user)
	}

	assistant := rr(chatRow(false, "Looks **normal**"), 60)
	if !strings.Contains(assistant, "Assistant") || !strings.Contains(assistant, "normal") {
		t.Errorf("assistant row = %q", assistant)
	}

	// Narrow widths are clamped rather than collapsing the bubble
	if rr(chatRow(true, "x"), 0) == "" {
		t.Error("zero width should still render")
	}
}

func chatRow(isUser bool, text string) chat.Row {
	return chat.Row{Kind: chat.KindOf(isUser), Text: text}
}
