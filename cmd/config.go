package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/surge-downloader/areatext/internal/config"
	"github.com/surge-downloader/areatext/internal/utils"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change saved defaults",
		Long:  `Inspect and change the defaults stored in the areatext settings file.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the settings file path",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), config.GetSettingsPath())
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective settings as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := yaml.Marshal(loadSettings())
				if err != nil {
					return fmt.Errorf("failed to marshal settings: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			},
		},
		&cobra.Command{
			Use:   "keys",
			Short: "List the keys accepted by 'config set'",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.Keys(), "\n"))
			},
		},
		&cobra.Command{
			Use:   "set KEY VALUE",
			Short: "Change one setting",
			Example: `  areatext config set layout.columns 60
  areatext config set layout.padding unset`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				settings, err := config.LoadSettings()
				if err != nil {
					return err
				}
				if err := settings.Set(args[0], args[1]); err != nil {
					return err
				}
				if err := config.SaveSettings(settings); err != nil {
					return err
				}
				utils.Debug("config: %s=%q", args[0], args[1])
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", args[0], args[1])
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Restore the built-in defaults",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.SaveSettings(config.DefaultSettings()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Settings reset to defaults.")
				return nil
			},
		},
	)
	return cmd
}
