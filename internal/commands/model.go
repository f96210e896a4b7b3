package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apierrors "github.com/medobsmind/medobs/internal/errors"
	"github.com/medobsmind/medobs/internal/prefs"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Show or change the selected model",
	Long:  `Show or change the model used for replies without opening the settings screen.`,
}

var modelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDependencies(func(deps *Dependencies) error {
			return runModelList(deps, cmd.OutOrStdout())
		})
	},
}

var modelGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the selected model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDependencies(func(deps *Dependencies) error {
			return runModelGet(deps, cmd.OutOrStdout())
		})
	},
}

var modelSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Select a model",
	Long: `Select the model used for replies. Names match case-insensitively and
dashes may replace spaces, so "fast-response" selects "Fast Response".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDependencies(func(deps *Dependencies) error {
			return runModelSet(deps, args[0], cmd.OutOrStdout())
		})
	},
}

func init() {
	modelCmd.AddCommand(modelListCmd)
	modelCmd.AddCommand(modelGetCmd)
	modelCmd.AddCommand(modelSetCmd)
}

// withDependencies loads dependencies for the duration of fn
func withDependencies(fn func(deps *Dependencies) error) error {
	deps, err := loadDependencies()
	if err != nil {
		return err
	}
	defer deps.Close()
	return fn(deps)
}

func runModelList(deps *Dependencies, out io.Writer) error {
	current, err := prefs.LoadSelection(deps.Store)
	if err != nil {
		deps.Logger.Warn("failed to read model selection", zap.Error(err))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, " \tMODEL\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, " \t-----\t-----------")
	for _, o := range prefs.Options() {
		marker := " "
		if o.DisplayName() == current {
			marker = "*"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", marker, o.DisplayName(), o.Description())
	}
	return w.Flush()
}

func runModelGet(deps *Dependencies, out io.Writer) error {
	name, err := prefs.LoadSelection(deps.Store)
	if err != nil {
		return fmt.Errorf("failed to read model selection: %w", err)
	}
	_, _ = fmt.Fprintln(out, name)
	return nil
}

func runModelSet(deps *Dependencies, name string, out io.Writer) error {
	option := prefs.ParseOption(name)
	if !option.Valid() {
		return apierrors.NewNoSelectionError(name)
	}

	saved, err := prefs.SaveSelection(deps.Store, option)
	if err != nil {
		return err
	}
	deps.Logger.Info("model selection saved", zap.String("model", saved))
	_, _ = fmt.Fprintf(out, "Model set to %s\n", saved)
	return nil
}
