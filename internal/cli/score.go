package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/apigraph/pkg/complexity"
)

// scoreCommand prints the complexity breakdown of a resource.
func (c *CLI) scoreCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "score <facts> <resource>",
		Short: "Show the complexity score of a resource",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner()
			if err != nil {
				return err
			}
			defer runner.Close()

			loaded, err := runner.Load(cmd.Context(), args[0], c.configPath)
			if err != nil {
				return err
			}
			res, err := runner.Score(loaded, args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(res.Pivot))
			printKeyValue(out, "total", formatScore(res.Total))
			printKeyValue(out, "thresholds", formatScore(res.LowThreshold)+" / "+formatScore(res.HighThreshold))
			switch {
			case res.MustDecompose():
				printKeyValue(out, "verdict", styleWarning.Render("decompose"))
			case res.NonTrivial():
				printKeyValue(out, "verdict", "non-trivial")
			default:
				printKeyValue(out, "verdict", "simple")
			}
			if len(res.Candidates) > 0 {
				printKeyValue(out, "candidates", fmt.Sprint(res.Candidates))
			}
			fmt.Fprintln(out, scoreTable(res, all))
			if !all {
				printInfo(out, "Use --all to include excluded nodes")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list nodes without contribution")
	return cmd
}

// scoreTable lays out per-node scores. Candidates are highlighted.
func scoreTable(res *complexity.Result, all bool) *table.Table {
	candidates := make(map[string]bool, len(res.Candidates))
	for _, name := range res.Candidates {
		candidates[name] = true
	}

	var rows [][]string
	var highlight []bool
	for _, n := range res.Nodes {
		if !all && n.Excluded != complexity.Included {
			continue
		}
		status := n.Excluded.String()
		if candidates[n.Name] {
			status = "candidate"
		}
		rows = append(rows, []string{
			n.Name,
			strconv.Itoa(n.Shortest),
			strconv.Itoa(n.Longest),
			strconv.Itoa(n.Size),
			strconv.Itoa(n.Neighbors),
			strconv.Itoa(n.Discriminators),
			strconv.Itoa(n.FanOut),
			formatScore(n.Contribution),
			status,
		})
		highlight = append(highlight, candidates[n.Name])
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "Min", "Max", "Size", "Nbrs", "Disc", "Fan", "Score", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case highlight[row]:
				return cell.Foreground(colorCyan)
			case col >= 1 && col <= 7:
				return cell.Align(lipgloss.Right)
			default:
				return cell
			}
		})
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
