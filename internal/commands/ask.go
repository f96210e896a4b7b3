package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/medobsmind/medobs/internal/chat"
	"github.com/medobsmind/medobs/internal/render"
	"github.com/medobsmind/medobs/internal/tui"
)

// copyToClipboard is replaced in tests
var copyToClipboard = clipboard.WriteAll

// consoleView collects session directives for a single non-interactive send.
// Validation errors are returned by OnSubmitClicked, so the directive is
// dropped here.
type consoleView struct {
	model string
}

func (v *consoleView) RowInserted(int)                 {}
func (v *consoleView) ScrollTo(int)                    {}
func (v *consoleView) ClearInputField()                {}
func (v *consoleView) ShowValidationError(error)       {}
func (v *consoleView) SetTitleSuffix(modelName string) { v.model = modelName }

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Send a single message and print the reply",
	Long: `Run one send cycle on a fresh conversation and print the assistant
reply. Output is plain text when stdout is not a terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAskCommand(cmd, args[0])
	},
}

func init() {
	askCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save the reply to file")
	askCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the reply without formatting")
	askCmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the reply to the clipboard")
}

// askOptions controls how a single reply is written
type askOptions struct {
	Output string
	Raw    bool
	Copy   bool
	Width  int
}

func runAskCommand(cmd *cobra.Command, text string) error {
	deps, err := loadDependencies()
	if err != nil {
		return err
	}
	defer deps.Close()

	opts := askOptions{
		Output: outputFlag,
		Raw:    rawFlag || !isStdoutTTY(),
		Copy:   copyFlag,
		Width:  getTerminalWidth(),
	}
	return runAsk(deps, text, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// askOnce runs one send cycle on a fresh session and returns the reply and
// the model that produced it.
func askOnce(deps *Dependencies, text string) (string, string, error) {
	view := &consoleView{}
	session := chat.NewSession(deps.Store, view,
		chat.WithGenerator(deps.Generator),
		chat.WithLogger(deps.Logger),
		chat.WithWelcome(deps.Config.WelcomeMessage),
	)
	session.Activate()

	if err := session.OnSubmitClicked(text); err != nil {
		return "", "", err
	}
	reply, _ := session.Conversation().LastAssistantText()
	return reply, view.model, nil
}

func runAsk(deps *Dependencies, text string, opts askOptions, stdout, stderr io.Writer) error {
	reply, model, err := askOnce(deps, text)
	if err != nil {
		return err
	}

	theme := tui.CurrentTheme()
	okStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	warnStyle := lipgloss.NewStyle().Foreground(theme.Error)

	if opts.Copy {
		if err := copyToClipboard(reply); err != nil {
			deps.Logger.Warn("clipboard write failed", zap.Error(err))
			_, _ = fmt.Fprintln(stderr, warnStyle.Render(fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err)))
		} else {
			_, _ = fmt.Fprintln(stderr, okStyle.Render("✓ Copied to clipboard"))
		}
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(reply), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintln(stderr, okStyle.Render(fmt.Sprintf("✓ Reply saved to %s", opts.Output)))
		return nil
	}

	if opts.Raw {
		_, _ = fmt.Fprintln(stdout, reply)
		return nil
	}

	bubbleWidth := opts.Width - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	bubbleStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Foreground(theme.Text).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	renderOpts := render.OptionsFromConfig(deps.Config).WithWidth(bubbleWidth - 4)
	rendered := render.MarkdownOrPlain(reply, renderOpts)

	_, _ = fmt.Fprintln(stdout, labelStyle.Render(fmt.Sprintf("✦ Assistant (%s)", model)))
	_, _ = fmt.Fprintln(stdout, bubbleStyle.Width(bubbleWidth).Render(rendered))
	return nil
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
