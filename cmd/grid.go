package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/surge-downloader/areatext/internal/align"
	"github.com/surge-downloader/areatext/internal/utils"
)

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Align the columns of a table",
		Long: `Split every input line into cells on --sep and align each column on its
own. Rows must all have the same number of cells.`,
		Example: `  printf 'name\tqty\napple\t3\nfig\t120\n' | areatext grid --side right --join ' | '
  areatext grid -f prices.csv --sep , --pivot . --left '| ' --right ' |'`,
		Args: cobra.NoArgs,
		RunE: runGrid,
	}

	addAlignFlags(cmd)
	cmd.Flags().String("sep", "", "Cell separator in the input (default from settings, a tab)")
	cmd.Flags().String("join", "", "String placed between cells in the output (default from settings)")
	cmd.Flags().String("left", "", "String placed before every output row")
	cmd.Flags().String("right", "", "String placed after every output row")
	addInputFlags(cmd)
	addOutputFlags(cmd)
	return cmd
}

func runGrid(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, nil)
	if err != nil {
		return err
	}

	settings := loadSettings().Align
	flags := cmd.Flags()
	if flags.Changed("sep") {
		settings.Separator, _ = flags.GetString("sep")
	}
	if flags.Changed("join") {
		settings.Join, _ = flags.GetString("join")
	}
	left, _ := flags.GetString("left")
	right, _ := flags.GetString("right")

	opts, err := alignFromFlags(cmd, settings)
	if err != nil {
		return err
	}

	rows := splitRows(text, settings.Separator)
	grid, err := align.Grid(rows, opts)
	if err != nil {
		return err
	}
	utils.Debug("grid: %d rows", len(grid))

	out := make([]string, len(grid))
	for i, row := range grid {
		out[i] = align.Surround(strings.Join(row, settings.Join), left, right)
	}
	return writeOutput(cmd, strings.Join(out, "\n"))
}

// splitRows splits text into lines and every line into cells. An empty
// separator yields one cell per line.
func splitRows(text, sep string) [][]string {
	lines := utils.SplitLines(text)
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if sep == "" {
			rows = append(rows, []string{line})
			continue
		}
		rows = append(rows, strings.Split(line, sep))
	}
	return rows
}
