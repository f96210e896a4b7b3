package render

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// TUITheme is the color scheme for the interactive screens.
type TUITheme struct {
	Name        string
	Description string

	Surface lipgloss.Color
	Border  lipgloss.Color

	// Primary colors assistant bubbles and titles, Secondary colors user bubbles
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color

	// MarkdownStyle is the glamour style that pairs with the palette
	MarkdownStyle string
}

// DefaultTUITheme is used when the configured theme is unknown.
const DefaultTUITheme = "clinic"

var (
	// ClinicTheme is a cool teal palette on a dark surface.
	ClinicTheme = TUITheme{
		Name:        "clinic",
		Description: "Clinic - teal accents on a dark slate surface",

		Surface: lipgloss.Color("#1f2a30"),
		Border:  lipgloss.Color("#3c5561"),

		Primary:   lipgloss.Color("#4fd1c5"),
		Secondary: lipgloss.Color("#90cdf4"),
		Accent:    lipgloss.Color("#b794f4"),
		Warning:   lipgloss.Color("#f6e05e"),
		Error:     lipgloss.Color("#fc8181"),

		Text:     lipgloss.Color("#e2e8f0"),
		TextDim:  lipgloss.Color("#718096"),
		TextMute: lipgloss.Color("#4a5568"),

		MarkdownStyle: StyleDark,
	}

	// NightTheme is a low-glare palette for night shifts.
	NightTheme = TUITheme{
		Name:        "night",
		Description: "Night - muted amber for low-light wards",

		Surface: lipgloss.Color("#16161a"),
		Border:  lipgloss.Color("#2e2e36"),

		Primary:   lipgloss.Color("#d69e2e"),
		Secondary: lipgloss.Color("#a0aec0"),
		Accent:    lipgloss.Color("#c05621"),
		Warning:   lipgloss.Color("#ecc94b"),
		Error:     lipgloss.Color("#e53e3e"),

		Text:     lipgloss.Color("#cbd5e0"),
		TextDim:  lipgloss.Color("#5a5a66"),
		TextMute: lipgloss.Color("#3a3a44"),

		MarkdownStyle: StyleDark,
	}

	// PaperTheme targets light terminal backgrounds.
	PaperTheme = TUITheme{
		Name:        "paper",
		Description: "Paper - dark ink for light terminals",

		Surface: lipgloss.Color("#f7fafc"),
		Border:  lipgloss.Color("#cbd5e0"),

		Primary:   lipgloss.Color("#2b6cb0"),
		Secondary: lipgloss.Color("#2f855a"),
		Accent:    lipgloss.Color("#6b46c1"),
		Warning:   lipgloss.Color("#b7791f"),
		Error:     lipgloss.Color("#c53030"),

		Text:     lipgloss.Color("#1a202c"),
		TextDim:  lipgloss.Color("#718096"),
		TextMute: lipgloss.Color("#a0aec0"),

		MarkdownStyle: StyleLight,
	}

	// DraculaTheme follows the Dracula palette.
	DraculaTheme = TUITheme{
		Name:        "dracula",
		Description: "Dracula - vibrant colors on dark purple",

		Surface: lipgloss.Color("#44475a"),
		Border:  lipgloss.Color("#6272a4"),

		Primary:   lipgloss.Color("#8be9fd"),
		Secondary: lipgloss.Color("#50fa7b"),
		Accent:    lipgloss.Color("#ff79c6"),
		Warning:   lipgloss.Color("#f1fa8c"),
		Error:     lipgloss.Color("#ff5555"),

		Text:     lipgloss.Color("#f8f8f2"),
		TextDim:  lipgloss.Color("#6272a4"),
		TextMute: lipgloss.Color("#44475a"),

		MarkdownStyle: StyleDracula,
	}
)

var tuiThemes = map[string]TUITheme{
	ClinicTheme.Name:  ClinicTheme,
	NightTheme.Name:   NightTheme,
	PaperTheme.Name:   PaperTheme,
	DraculaTheme.Name: DraculaTheme,
}

// GetTUIThemeByName returns a theme by name.
func GetTUIThemeByName(name string) (TUITheme, bool) {
	theme, ok := tuiThemes[name]
	return theme, ok
}

// ResolveTUITheme returns the named theme or the default one.
func ResolveTUITheme(name string) TUITheme {
	if theme, ok := tuiThemes[name]; ok {
		return theme
	}
	return ClinicTheme
}

// AvailableTUIThemes returns all themes sorted by name.
func AvailableTUIThemes() []TUITheme {
	themes := make([]TUITheme, 0, len(tuiThemes))
	for _, t := range tuiThemes {
		themes = append(themes, t)
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes
}

// TUIThemeNames returns the names of all themes, sorted.
func TUIThemeNames() []string {
	themes := AvailableTUIThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
