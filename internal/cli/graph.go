package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/apigraph/pkg/errors"
	"github.com/matzehuels/apigraph/pkg/pipeline"
)

// renderFlags are the output flags shared by graph and decompose.
type renderFlags struct {
	output   string
	formats  string
	detailed bool
	refresh  bool
}

func (f *renderFlags) register(cmd *cobra.Command, outputUsage string) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", outputUsage)
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, dot, json (comma-separated)")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "show property compartments")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results")
}

func (f *renderFlags) options(facts, config, resource string) pipeline.Options {
	return pipeline.Options{
		FactsPath:  facts,
		ConfigPath: config,
		Resource:   resource,
		Formats:    parseFormats(f.formats),
		Detailed:   f.detailed,
		Refresh:    f.refresh,
	}
}

// graphCommand renders the complete graph without decomposition.
func (c *CLI) graphCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "graph <facts>",
		Short: "Render the complete type graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			runner, err := c.newRunner()
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := flags.options(args[0], c.configPath, "")
			res, err := runner.Execute(ctx, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			base := basePath(flags.output, args[0])
			printSuccess(out, "Rendered %s", styleHighlight.Render(args[0]))
			printStats(out, res.Stats.Nodes, res.Stats.Edges, 1, res.CacheInfo.ArtifactMiss == 0)
			for _, format := range opts.Formats {
				path := base + "." + format
				if err := writeFile(path, res.Artifacts[""][format]); err != nil {
					return err
				}
				printFile(out, path)
			}
			prog.done("Rendered complete graph")
			return nil
		},
	}
	flags.register(cmd, "output base path (default: facts file without extension)")
	return cmd
}

// basePath derives the output base from the output flag or the input file,
// stripping a known format extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "write %s", path)
	}
	return nil
}
