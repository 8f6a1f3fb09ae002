package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/surge-downloader/areatext/internal/config"
	"github.com/surge-downloader/areatext/internal/layout"
	"github.com/surge-downloader/areatext/internal/tui/colors"
	"github.com/surge-downloader/areatext/internal/utils"
)

// paddingFlags maps each padding flag to the settings field it overrides
var paddingFlags = []struct {
	name  string
	usage string
	field func(*config.LayoutSettings) **int
}{
	{"padding", "Padding on all four sides", func(l *config.LayoutSettings) **int { return &l.Padding }},
	{"padding-inline", "Left and right padding", func(l *config.LayoutSettings) **int { return &l.PaddingInline }},
	{"padding-block", "Top and bottom padding", func(l *config.LayoutSettings) **int { return &l.PaddingBlock }},
	{"padding-top", "Top padding", func(l *config.LayoutSettings) **int { return &l.PaddingTop }},
	{"padding-left", "Left padding", func(l *config.LayoutSettings) **int { return &l.PaddingLeft }},
	{"padding-bottom", "Bottom padding", func(l *config.LayoutSettings) **int { return &l.PaddingBottom }},
	{"padding-right", "Right padding", func(l *config.LayoutSettings) **int { return &l.PaddingRight }},
}

// BlockOutput is the --json form of a rendered block
type BlockOutput struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Lines    []string `json:"lines"`
	Rendered string   `json:"rendered"`
}

func newBoxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "box [text...]",
		Short: "Wrap text into a padded, justified and bordered block",
		Long: `Wrap text to a column width, pad and justify it, and frame it with a border.

Defaults come from the settings file (see 'areatext config'); flags override them.`,
		Example: `  areatext box -c 20 -b double "The quick brown fox jumps over the lazy dog"
  cat notes.txt | areatext box --padding-inline 1 --justify center`,
		RunE: runBox,
	}

	addLayoutFlags(cmd)
	cmd.Flags().Bool("json", false, "Output the block as JSON")
	addInputFlags(cmd)
	addOutputFlags(cmd)
	return cmd
}

// addLayoutFlags registers the flags read by layoutFromFlags
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("columns", "c", 0, "Column width for wrapping")
	cmd.Flags().StringP("border", "b", "", "Border preset (see 'areatext borders')")
	cmd.Flags().String("border-char", "", "Build the border from a single glyph instead of a preset")
	cmd.Flags().String("spacer", "", "Prefix for the top and bottom rule when using --border-char")
	cmd.Flags().IntP("indent", "i", 0, "First-line indent (positive) or hanging indent (negative)")
	cmd.Flags().Int("min-height", 0, "Minimum number of lines inside the border")
	cmd.Flags().StringP("justify", "j", "", "Line justification: start, center or end")
	cmd.Flags().String("color", "", "Border color: palette name, #rrggbb or ANSI number")
	for _, p := range paddingFlags {
		cmd.Flags().Int(p.name, 0, p.usage)
	}
}

func runBox(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	l, err := layoutFromFlags(cmd, loadSettings().Layout)
	if err != nil {
		return err
	}
	block, err := buildBlock(text, l)
	if err != nil {
		return err
	}
	utils.Debug("box: %d chars -> %dx%d block", len(text), block.Width(), block.Height())

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.MarshalIndent(BlockOutput{
			Width:    block.Width(),
			Height:   block.Height(),
			Lines:    block.Lines(),
			Rendered: block.Render(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal block: %w", err)
		}
		return writeOutput(cmd, string(data))
	}

	if l.Color != "" {
		color, ok := colors.Lookup(l.Color)
		if !ok {
			return fmt.Errorf("unknown color %q", l.Color)
		}
		fmt.Fprintln(cmd.OutOrStdout(), block.RenderStyled(func(s string) string { return lipgloss.NewStyle().Foreground(color).Render(s) }))
		// Copy the plain rendering; escape codes are useless on the clipboard.
		return copyOutput(cmd, block.Render())
	}
	return writeOutput(cmd, block.Render())
}

// layoutFromFlags overlays every flag the user set on the saved settings.
func layoutFromFlags(cmd *cobra.Command, l config.LayoutSettings) (config.LayoutSettings, error) {
	flags := cmd.Flags()
	if flags.Changed("columns") {
		l.Columns, _ = flags.GetInt("columns")
	}
	if flags.Changed("border") {
		l.Border, _ = flags.GetString("border")
		l.BorderChar = ""
	}
	if flags.Changed("border-char") {
		l.BorderChar, _ = flags.GetString("border-char")
	}
	if flags.Changed("spacer") {
		l.Spacer, _ = flags.GetString("spacer")
	}
	if flags.Changed("indent") {
		l.Indent, _ = flags.GetInt("indent")
	}
	if flags.Changed("min-height") {
		l.MinHeight, _ = flags.GetInt("min-height")
	}
	if flags.Changed("justify") {
		l.Justify, _ = flags.GetString("justify")
	}
	if flags.Changed("color") {
		l.Color, _ = flags.GetString("color")
	}
	for _, p := range paddingFlags {
		if !flags.Changed(p.name) {
			continue
		}
		n, _ := flags.GetInt(p.name)
		if n < 0 {
			return l, fmt.Errorf("--%s: %w", p.name, layout.ErrNegativePadding)
		}
		*p.field(&l) = layout.IntPtr(n)
	}
	return l, nil
}

// buildBlock lays out text with the resolved settings.
func buildBlock(text string, l config.LayoutSettings) (*layout.TextBlock, error) {
	opts, _, err := l.ToOptions()
	if err != nil {
		return nil, err
	}
	return layout.New(text, opts)
}
