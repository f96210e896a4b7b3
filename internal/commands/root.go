// Package commands provides CLI commands for medobs.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/medobsmind/medobs/internal/config"
	"github.com/medobsmind/medobs/internal/tui"
)

var (
	// Global flags
	verboseFlag bool
	outputFlag  string
	fileFlag    string
	rawFlag     bool
	copyFlag    bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "medobs [message]",
	Short: "Clinical observation assistant chat",
	Long: `medobs is a terminal chat assistant for clinical observations.
Replies come from the model selected in settings.

Examples:
  medobs                              Start interactive chat
  medobs settings                     Choose the model
  medobs model set "Fast Response"    Choose the model without the UI
  medobs "Is a pulse of 120 high?"    Send a single message
  medobs ask "Is SpO2 91% low?" --copy
  medobs -f notes.md                  Read the message from a file
  cat notes.md | medobs               Read the message from stdin`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Fprintf(cmd.OutOrStdout(), "medobs %s (built %s)\n", Version, BuildTime)
			return nil
		}

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runAskCommand(cmd, string(data))
		}

		if len(args) > 0 {
			return runAskCommand(cmd, args[0])
		}

		if stdinPiped() {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runAskCommand(cmd, string(data))
		}

		return runChatCommand()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		tui.PrintError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Write debug entries to the log file")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save the reply to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read the message from file")
	rootCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the reply without formatting")
	rootCmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the reply to the clipboard")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(configCmd)
}

// stdinPiped reports whether stdin is a pipe or file rather than a terminal
func stdinPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
