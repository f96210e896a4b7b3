package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/medobsmind/medobs/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session.

Press Ctrl+O to change the model. Type '/copy' to copy the last reply.
Type 'exit', 'quit', or press Esc to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChatCommand()
	},
}

func runChatCommand() error {
	deps, err := loadDependencies()
	if err != nil {
		return err
	}
	defer deps.Close()

	return runChat(deps)
}

func runChat(deps *Dependencies) error {
	deps.Logger.Info("starting chat", zap.String("prefs", deps.PrefsPath))
	return deps.TUI.RunApp(tui.AppOptions{
		ChatOptions: deps.ChatOptions(),
		Store:       deps.Store,
		PrefsPath:   deps.PrefsPath,
	})
}
