package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/seedphrase/internal/log"
	"github.com/Davincible/seedphrase/pkg/config"
)

func NewConfigCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the configuration file",
	}

	cmd.AddCommand(
		newConfigShowCommand(app),
		newConfigInitCommand(app),
	)

	return cmd
}

func newConfigShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			outputJSON, _ := cmd.Flags().GetBool("json")
			if !outputJSON {
				color.New(color.FgCyan).Fprintf(out, "# %s\n", app.ConfigPath)
			}

			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(app.Config)
		},
	}
}

func newConfigInitCommand(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(app.ConfigPath); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", app.ConfigPath)
			}

			if err := config.Save(app.ConfigPath, config.DefaultConfig()); err != nil {
				return err
			}

			log.Config.Info().Str("path", app.ConfigPath).Msg("Wrote default configuration")
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", app.ConfigPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
