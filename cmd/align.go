package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/surge-downloader/areatext/internal/align"
	"github.com/surge-downloader/areatext/internal/config"
	"github.com/surge-downloader/areatext/internal/utils"
)

func newAlignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align [strings...]",
		Short: "Pad a list of strings to a common width",
		Long: `Pad every input line (or every argument) to the width of the longest one.

With --pivot the lines are aligned on the first occurrence of the pivot
instead, e.g. --pivot . lines up decimal points.`,
		Example: `  areatext align --side right a bb ccc
  printf '1.5\n22.25\n3.125\n' | areatext align --pivot .`,
		RunE: runAlign,
	}

	addAlignFlags(cmd)
	addInputFlags(cmd)
	addOutputFlags(cmd)
	return cmd
}

// addAlignFlags registers the flags read by alignFromFlags
func addAlignFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("side", "s", "", "Side to align to: left, right or center")
	cmd.Flags().StringP("pivot", "p", "", "Align on the first occurrence of this string")
	cmd.Flags().String("fill", "", "Fill character")
}

func runAlign(cmd *cobra.Command, args []string) error {
	var strs []string
	explicitSource := cmd.Flags().Changed("file") || cmd.Flags().Changed("from-clipboard")
	if len(args) > 0 && !explicitSource {
		strs = args
	} else {
		text, err := readText(cmd, nil)
		if err != nil {
			return err
		}
		strs = utils.SplitLines(text)
	}

	opts, err := alignFromFlags(cmd, loadSettings().Align)
	if err != nil {
		return err
	}
	out, err := align.List(strs, opts)
	if err != nil {
		return err
	}
	utils.Debug("align: %d strings side=%s pivot=%q", len(out), opts.Side, opts.Pivot)
	return writeOutput(cmd, strings.Join(out, "\n"))
}

// alignFromFlags overlays the align flags on the saved settings.
func alignFromFlags(cmd *cobra.Command, a config.AlignSettings) (align.Options, error) {
	flags := cmd.Flags()
	if flags.Changed("side") {
		a.Side, _ = flags.GetString("side")
	}
	if flags.Changed("fill") {
		a.Fill, _ = flags.GetString("fill")
		if utf8.RuneCountInString(a.Fill) != 1 {
			return align.Options{}, fmt.Errorf("--fill must be a single character, got %q", a.Fill)
		}
	}
	opts, err := a.ToOptions()
	if err != nil {
		return align.Options{}, err
	}
	opts.Pivot, _ = flags.GetString("pivot")
	return opts, nil
}
