package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"refmap/pkg/cache"
	"refmap/pkg/graphio"
	"refmap/pkg/metadata"
	"refmap/pkg/resolve"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	output  string // edge collection output path (stdout if empty)
	csvPath string // optional tabular export path
	noCache bool   // disable the metadata extraction cache
}

// newAnalyzeCmd creates the analyze command.
// It accepts any mix of compiled Go binaries and TOML component
// manifests, extracts one record per component, resolves the classified
// dependency graph, and writes the edge collection as JSON.
func newAnalyzeCmd() *cobra.Command {
	opts := analyzeOpts{}

	cmd := &cobra.Command{
		Use:   "analyze <path>...",
		Short: "Analyze binary components and resolve their dependency graph",
		Long: `Analyze binary components and resolve their dependency graph.

Inputs can be compiled Go binaries (read via embedded build info) or
TOML component manifests describing binaries refmap cannot read
directly. All inputs form one batch: every component becomes a root and
every reachable (root, target) pair becomes one classified edge.

Examples:
  refmap analyze ./bin/server ./bin/worker -o edges.json
  refmap analyze components.toml --csv edges.csv
  refmap analyze ./bin/* --no-cache`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runAnalyze(c.Context(), &opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "also export edges as CSV to this path")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the metadata extraction cache")

	return cmd
}

// runAnalyze scans the inputs into a batch, resolves the edge
// collection, and writes the results.
func runAnalyze(ctx context.Context, opts *analyzeOpts, paths []string) error {
	logger := loggerFromContext(ctx)
	providers := buildProviders(opts.noCache, logger)

	spin := newSpinner(ctx, fmt.Sprintf("Analyzing %d inputs...", len(paths)))
	spin.start()

	prog := newProgress(logger)
	batch, err := metadata.Scan(ctx, paths, providers...)
	if err != nil {
		spin.stopWithError("Analysis failed")
		return err
	}

	edges, err := resolve.Resolve(batch)
	if err != nil {
		spin.stopWithError("Resolution failed")
		return err
	}
	spin.stop()
	prog.done(fmt.Sprintf("Resolved %d components into %d edges", len(batch), len(edges)))

	if opts.csvPath != "" {
		if err := graphio.ExportCSV(edges, opts.csvPath); err != nil {
			return err
		}
		logger.Infof("Exported %s", opts.csvPath)
	}

	if opts.output == "" {
		return graphio.WriteJSON(edges, os.Stdout)
	}
	if err := graphio.ExportJSON(edges, opts.output); err != nil {
		return err
	}
	logger.Infof("Generated %s", opts.output)
	return nil
}

// buildProviders assembles the metadata provider chain.
// Providers are wrapped with a content-addressed file cache unless
// caching is disabled; a cache setup failure degrades to uncached
// extraction with a warning rather than failing the run.
func buildProviders(noCache bool, logger *log.Logger) []metadata.Provider {
	base := []metadata.Provider{metadata.GoBinary{}, metadata.Manifest{}}
	if noCache {
		return base
	}

	dir, err := os.UserCacheDir()
	if err != nil {
		logger.Warnf("Metadata cache disabled: %v", err)
		return base
	}
	store, err := cache.NewFileCache(filepath.Join(dir, "refmap", "metadata"))
	if err != nil {
		logger.Warnf("Metadata cache disabled: %v", err)
		return base
	}

	cached := make([]metadata.Provider, len(base))
	for i, p := range base {
		cached[i] = metadata.NewCached(p, store, 0)
	}
	return cached
}
