package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/medobsmind/medobs/internal/config"
	"github.com/medobsmind/medobs/internal/prefs"
	"github.com/medobsmind/medobs/internal/render"
)

// NewConfigCmd creates the config command and its subcommands
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration paths and values",
		Long: `Show where medobs keeps its files and the effective configuration.

Set MEDOBS_HOME to move the configuration directory. A .env file in the
working directory is loaded first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDependencies(func(deps *Dependencies) error {
				return runConfigShow(deps, cmd.OutOrStdout())
			})
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(force, cmd.OutOrStdout())
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List the interface themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigThemes(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(initCmd, themesCmd)
	return cmd
}

var configCmd = NewConfigCmd()

func runConfigShow(deps *Dependencies, out io.Writer) error {
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	logPath, err := config.GetLogPath(deps.Config)
	if err != nil {
		return err
	}
	model, _ := prefs.LoadSelection(deps.Store)
	md := render.OptionsFromConfig(deps.Config)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Config dir:\t%s\n", dir)
	_, _ = fmt.Fprintf(w, "Config file:\t%s\n", cfgPath)
	_, _ = fmt.Fprintf(w, "Preferences:\t%s\n", deps.PrefsPath)
	_, _ = fmt.Fprintf(w, "Log file:\t%s\n", logPath)
	_, _ = fmt.Fprintf(w, "Log level:\t%s\n", deps.Config.LogLevel)
	_, _ = fmt.Fprintf(w, "Theme:\t%s\n", render.ResolveTUITheme(deps.Config.TUITheme).Name)
	_, _ = fmt.Fprintf(w, "Markdown style:\t%s\n", md.Style)
	_, _ = fmt.Fprintf(w, "Model:\t%s\n", model)
	return w.Flush()
}

func runConfigInit(force bool, out io.Writer) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.SaveConfig(config.DefaultConfig()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

func runConfigThemes(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, t := range render.AvailableTUIThemes() {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Description)
	}
	return w.Flush()
}
