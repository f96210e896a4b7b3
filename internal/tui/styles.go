// Package tui provides the terminal user interface for medobs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/medobsmind/medobs/internal/errors"
	"github.com/medobsmind/medobs/internal/render"
)

// currentTheme is the palette styles are built from
var currentTheme = render.ClinicTheme

// Color variables (updated from theme)
var (
	colorBorder lipgloss.Color

	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorAccent    lipgloss.Color
	colorWarning   lipgloss.Color
	colorError     lipgloss.Color

	colorText     lipgloss.Color
	colorTextDim  lipgloss.Color
	colorTextMute lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	headerStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	hintStyle     lipgloss.Style

	messagesAreaStyle lipgloss.Style

	userBubbleStyle      lipgloss.Style
	userLabelStyle       lipgloss.Style
	assistantBubbleStyle lipgloss.Style
	assistantLabelStyle  lipgloss.Style

	inputPanelStyle lipgloss.Style
	inputLabelStyle lipgloss.Style

	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style

	errorStyle    lipgloss.Style
	noticeStyle   lipgloss.Style
	feedbackStyle lipgloss.Style

	// Settings screen
	settingsHeaderStyle   lipgloss.Style
	settingsPanelStyle    lipgloss.Style
	settingsItemStyle     lipgloss.Style
	settingsSelectedStyle lipgloss.Style
	settingsCursorStyle   lipgloss.Style
	settingsCheckedStyle  lipgloss.Style
	settingsDescStyle     lipgloss.Style
)

func init() {
	UpdateTheme()
}

// SetTheme activates the named theme. Unknown names keep the current one.
func SetTheme(name string) bool {
	theme, ok := render.GetTUIThemeByName(name)
	if !ok {
		return false
	}
	currentTheme = theme
	UpdateTheme()
	return true
}

// CurrentTheme returns the active theme
func CurrentTheme() render.TUITheme {
	return currentTheme
}

// UpdateTheme refreshes all styles based on the current theme
func UpdateTheme() {
	theme := currentTheme

	colorBorder = theme.Border
	colorPrimary = theme.Primary
	colorSecondary = theme.Secondary
	colorAccent = theme.Accent
	colorWarning = theme.Warning
	colorError = theme.Error
	colorText = theme.Text
	colorTextDim = theme.TextDim
	colorTextMute = theme.TextMute

	rebuildStyles()
}

func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	userBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorSecondary).
		Foreground(colorText).
		Padding(0, 1).
		MarginLeft(4)

	userLabelStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true).
		MarginLeft(4)

	assistantBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Foreground(colorText).
		Padding(0, 1).
		MarginRight(4)

	assistantLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	noticeStyle = lipgloss.NewStyle().
		Foreground(colorWarning)

	feedbackStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true)

	settingsHeaderStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginBottom(1)

	settingsPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2)

	settingsItemStyle = lipgloss.NewStyle().
		Foreground(colorText)

	settingsSelectedStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	settingsCursorStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	settingsCheckedStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true)

	settingsDescStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		PaddingLeft(6)
}

// renderShortcuts renders a key/description status line
func renderShortcuts(width int, pairs ...[2]string) string {
	items := make([]string, 0, len(pairs))
	for _, p := range pairs {
		items = append(items, statusKeyStyle.Render(p[0])+statusDescStyle.Render(" "+p[1]))
	}
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// FormatError returns a styled error message with a hint for known errors.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errStyle.Render(fmt.Sprintf("✗ %v", err)))

	switch {
	case apierrors.IsNoSelectionError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: run 'medobs model list' to see the available models"))
	case apierrors.IsValidationError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: type a message before sending"))
	}

	return sb.String()
}

// PrintError prints a styled error message.
func PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Println(FormatError(err))
}
