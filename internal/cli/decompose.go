package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/apigraph/pkg/errors"
)

// decomposeCommand splits the graph around a resource and writes one file
// per subgraph and format.
func (c *CLI) decomposeCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "decompose <facts> <resource>",
		Short: "Split a resource into diagrams of manageable complexity",
		Long: `Decompose builds the type graph, scores the subgraph reachable from the
resource and, when it is too complex, extracts the highest-contributing
types into diagrams of their own. Every subgraph is written as
<output>/<root>.<format>.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			facts, resource := args[0], args[1]
			prog := newProgress(loggerFromContext(ctx))

			runner, err := c.newRunner()
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := flags.options(facts, c.configPath, resource)
			res, err := runner.Execute(ctx, opts)
			if err != nil {
				return err
			}

			dir := flags.output
			if dir == "" {
				dir = filepath.Join(filepath.Dir(facts), errors.SafeFileName(resource))
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "Decomposed %s", styleHighlight.Render(resource))
			printStats(out, res.Stats.Nodes, res.Stats.Edges, res.Stats.SubGraphs, res.CacheInfo.DecomposeHit)
			for _, root := range res.Roots {
				g := res.SubGraphs[root]
				printDetail(out, "%s: %d nodes, %d edges", root, g.NodeCount(), g.EdgeCount())
				for _, format := range opts.Formats {
					path := filepath.Join(dir, errors.SafeFileName(root)+"."+format)
					if err := writeFile(path, res.Artifacts[root][format]); err != nil {
						return err
					}
					printFile(out, path)
				}
			}
			prog.done("Decomposed " + resource)
			return nil
		},
	}
	flags.register(cmd, "output directory (default: <facts dir>/<resource>)")
	return cmd
}
