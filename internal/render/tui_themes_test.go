package render

import "testing"

func TestTUIThemes(t *testing.T) {
	themes := AvailableTUIThemes()
	if len(themes) != 4 {
		t.Fatalf("AvailableTUIThemes() returned %d themes", len(themes))
	}
	for i := 1; i < len(themes); i++ {
		if themes[i-1].Name >= themes[i].Name {
			t.Errorf("themes not sorted: %q before %q", themes[i-1].Name, themes[i].Name)
		}
	}
	for _, theme := range themes {
		if theme.Primary == "" || theme.Text == "" || theme.Error == "" {
			t.Errorf("theme %q has empty colors", theme.Name)
		}
		if !IsBuiltinStyle(theme.MarkdownStyle) {
			t.Errorf("theme %q pairs with unknown style %q", theme.Name, theme.MarkdownStyle)
		}
	}
}

func TestResolveTUITheme(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"clinic", "clinic"},
		{"night", "night"},
		{"paper", "paper"},
		{"tokyonight", DefaultTUITheme},
		{"", DefaultTUITheme},
	}
	for _, tt := range tests {
		if got := ResolveTUITheme(tt.name).Name; got != tt.want {
			t.Errorf("ResolveTUITheme(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}

	if _, ok := GetTUIThemeByName("unknown"); ok {
		t.Error("GetTUIThemeByName(unknown) should fail")
	}
	if names := TUIThemeNames(); names[0] != "clinic" {
		t.Errorf("TUIThemeNames() = %v", names)
	}
}
