package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/surge-downloader/areatext/internal/clipboard"
	"github.com/surge-downloader/areatext/internal/config"
	"github.com/surge-downloader/areatext/internal/utils"
)

var errNoInput = errors.New("no input: pass text as arguments, --file, --from-clipboard or pipe it on stdin")

// addInputFlags registers the flags understood by readText
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Read input from a file")
	cmd.Flags().Bool("from-clipboard", false, "Read input from the clipboard")
}

// addOutputFlags registers the flags understood by writeOutput
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("copy", false, "Also copy the result to the clipboard")
}

// readText returns the command input. Priority: clipboard, file, arguments,
// then stdin when it is not a terminal.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if fromClipboard, _ := cmd.Flags().GetBool("from-clipboard"); fromClipboard {
		text, err := clipboard.ReadText()
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(text, "\n"), nil
	}

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		utils.Debug("Reading input from %s", path)
		return utils.ReadInputFile(path)
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		info, err := f.Stat()
		if err != nil || info.Mode()&os.ModeCharDevice != 0 {
			return "", errNoInput
		}
	}
	return utils.ReadInput(in)
}

// writeOutput prints out followed by a newline and copies it if --copy was given.
func writeOutput(cmd *cobra.Command, out string) error {
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return copyOutput(cmd, out)
}

// copyOutput copies out to the clipboard when --copy was given.
func copyOutput(cmd *cobra.Command, out string) error {
	if copyOut, _ := cmd.Flags().GetBool("copy"); !copyOut {
		return nil
	}
	if err := clipboard.WriteText(out); err != nil {
		return err
	}
	utils.Debug("Copied %d bytes to clipboard", len(out))
	return nil
}

// loadSettings returns the saved settings, falling back to the defaults when
// the file cannot be used.
func loadSettings() *config.Settings {
	settings, err := config.LoadSettings()
	if err != nil {
		utils.Debug("Failed to load settings, using defaults: %v", err)
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	return settings
}
