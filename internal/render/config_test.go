package render

import (
	"testing"

	"github.com/medobsmind/medobs/internal/config"
)

func TestOptionsFromConfig(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", "")

	tests := []struct {
		name string
		md   config.MarkdownConfig
		want Options
	}{
		{
			name: "configured style",
			md:   config.MarkdownConfig{Style: StyleLight, EnableEmoji: false, PreserveNewLines: true},
			want: Options{Width: 80, Style: StyleLight, EnableEmoji: false, PreserveNewLines: true},
		},
		{
			name: "empty style keeps default",
			md:   config.MarkdownConfig{EnableEmoji: true},
			want: Options{Width: 80, Style: StyleDark, EnableEmoji: true, PreserveNewLines: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptionsFromConfig(config.Config{Markdown: tt.md})
			if got != tt.want {
				t.Errorf("OptionsFromConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOptionsFromConfig_EnvOverride(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", StyleDracula)

	got := OptionsFromConfig(config.DefaultConfig())
	if got.Style != StyleDracula {
		t.Errorf("Style = %q, want %q", got.Style, StyleDracula)
	}
}
