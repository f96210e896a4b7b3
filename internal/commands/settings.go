package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Choose the model used for replies",
	Long: `Open the model settings screen.

Space checks an option, x clears the choice, s saves and Esc leaves
without saving.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDependencies(func(deps *Dependencies) error {
			return runSettings(deps, cmd.OutOrStdout())
		})
	},
}

func runSettings(deps *Dependencies, out io.Writer) error {
	saved, err := deps.TUI.RunSettings(deps.Store, deps.Logger)
	if err != nil {
		return err
	}
	if saved == "" {
		_, _ = fmt.Fprintln(out, "No changes saved")
		return nil
	}
	_, _ = fmt.Fprintf(out, "✓ Model set to %s\n", saved)
	return nil
}
