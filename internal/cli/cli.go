// Package cli implements the apigraph command-line interface.
//
// # Commands
//
//   - graph: render the complete type graph of a facts document
//   - decompose: split the graph around a resource and render every subgraph
//   - score: print the complexity breakdown of a resource
//   - cache: manage the artifact cache
//   - version: print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context and handed to the pipeline runner.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/apigraph/pkg/buildinfo"
	"github.com/matzehuels/apigraph/pkg/cache"
	"github.com/matzehuels/apigraph/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "apigraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cacheDir   string
	noCache    bool
	verbose    bool
}

// New creates a CLI that logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "apigraph draws class diagrams of API schemas",
		Long:          `apigraph builds a type graph from API schema facts, resolves inheritance and discriminators, and splits large resources into diagrams of manageable complexity.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&c.configPath, "config", "c", "", "TOML configuration file")
	flags.StringVar(&c.cacheDir, "cache-dir", "", "artifact cache directory (default: XDG cache)")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the artifact cache")

	root.AddCommand(c.graphCommand())
	root.AddCommand(c.decomposeCommand())
	root.AddCommand(c.scoreCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped to
// the build so upgrades never serve stale diagrams.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	ch, err := c.newCache()
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
	return pipeline.NewRunner(ch, keyer, c.Logger), nil
}

func (c *CLI) newCache() (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	dir := c.cacheDir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			c.Logger.Debug("no cache directory, caching disabled", "error", err)
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/apigraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
