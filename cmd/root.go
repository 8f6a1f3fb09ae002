package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surge-downloader/areatext/internal/config"
	"github.com/surge-downloader/areatext/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// maxLogFiles is how many debug logs survive a --debug run
const maxLogFiles = 5

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "areatext",
		Short: "Wrap, pad, align and frame text for the terminal",
		Long: `areatext lays out text as a rectangular block: it wraps words to a column
width, pads and justifies the lines, and frames the result with a border.
It can also align lists and grids of strings by side or on a pivot character.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			return initializeGlobalState(debug)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "Write a debug log to the areatext logs directory")
	cmd.SetVersionTemplate("areatext version {{.Version}}\n")

	cmd.AddCommand(
		newBoxCmd(),
		newAlignCmd(),
		newGridCmd(),
		newBordersCmd(),
		newConfigCmd(),
		newPreviewCmd(),
	)
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initializeGlobalState configures logging. Nothing touches the filesystem
// unless debug logging was requested.
func initializeGlobalState(debug bool) error {
	if !debug {
		return nil
	}
	if err := config.EnsureDirs(); err != nil {
		return fmt.Errorf("failed to ensure config dirs: %w", err)
	}
	utils.ConfigureDebug(config.GetLogsDir())
	utils.CleanupLogs(maxLogFiles)
	utils.Debug("areatext %s (built %s) starting", Version, BuildTime)
	return nil
}
