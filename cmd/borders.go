package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/surge-downloader/areatext/internal/layout"
)

// BorderGlyphs is the --json form of a border preset
type BorderGlyphs struct {
	Name        string `json:"name"`
	Top         string `json:"top"`
	Right       string `json:"right"`
	Bottom      string `json:"bottom"`
	Left        string `json:"left"`
	TopLeft     string `json:"top_left"`
	TopRight    string `json:"top_right"`
	BottomLeft  string `json:"bottom_left"`
	BottomRight string `json:"bottom_right"`
}

func newBordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "borders",
		Short: "List border presets",
		Long:  `List the border presets accepted by --border, optionally with a sample of each.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			sample, _ := cmd.Flags().GetString("sample")
			return printBorders(cmd, jsonOutput, sample)
		},
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().String("sample", "", "Render this text inside every preset")
	return cmd
}

func printBorders(cmd *cobra.Command, jsonOutput bool, sample string) error {
	out := cmd.OutOrStdout()
	names := layout.BorderNames()

	if jsonOutput {
		glyphs := make([]BorderGlyphs, 0, len(names))
		for _, name := range names {
			b, err := layout.LookupBorder(name)
			if err != nil {
				return err
			}
			glyphs = append(glyphs, BorderGlyphs{
				Name:        name,
				Top:         b.Top(),
				Right:       b.Right(),
				Bottom:      b.Bottom(),
				Left:        b.Left(),
				TopLeft:     b.TopLeft(),
				TopRight:    b.TopRight(),
				BottomLeft:  b.BottomLeft(),
				BottomRight: b.BottomRight(),
			})
		}
		data, err := json.MarshalIndent(glyphs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal borders: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if sample != "" {
		block := layout.FromLines([]string{sample}, layout.Single)
		for _, name := range names {
			b, _ := layout.LookupBorder(name)
			fmt.Fprintln(out, name)
			fmt.Fprintln(out, block.WithBorder(b).Render())
		}
		return nil
	}

	// Table output
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCORNERS\tEDGES")
	fmt.Fprintln(w, "----\t-------\t-----")
	for _, name := range names {
		b, _ := layout.LookupBorder(name)
		corners := b.TopLeft() + b.TopRight() + b.BottomLeft() + b.BottomRight()
		edges := b.Top() + b.Right() + b.Bottom() + b.Left()
		fmt.Fprintf(w, "%s\t%q\t%q\n", name, corners, edges)
	}
	return w.Flush()
}
