package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/surge-downloader/areatext/internal/config"
	"github.com/surge-downloader/areatext/internal/tui"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [text...]",
		Short: "Interactively tune the layout of a block",
		Long: `Show the block in a full-screen preview and adjust columns, indent,
padding, justification and border with the keyboard.

With --save the final layout is written to the settings file on exit.`,
		RunE: runPreview,
	}

	addLayoutFlags(cmd)
	cmd.Flags().Bool("save", false, "Save the final layout as the new defaults")
	addInputFlags(cmd)
	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	settings := loadSettings()
	l, err := layoutFromFlags(cmd, settings.Layout)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(text, l), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running preview: %w", err)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		m, ok := final.(tui.Model)
		if !ok {
			return nil
		}
		settings.Layout = m.Settings()
		if err := config.SaveSettings(settings); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved layout to %s\n", config.GetSettingsPath())
	}
	return nil
}
