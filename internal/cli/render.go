package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"refmap/pkg/errors"
	"refmap/pkg/graphio"
	"refmap/pkg/render"
	"refmap/pkg/resolve"
)

// Supported output formats.
const (
	formatDOT      = "dot"
	formatSVG      = "svg"
	formatPlantUML = "plantuml"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format     string // dot, svg, or plantuml
	output     string // output path (stdout if empty)
	stylesPath string // optional TOML style rule file
	types      string // comma-separated dependency type filter
	scopes     string // comma-separated scope filter
	versions   bool   // label edges with target versions
}

// newRenderCmd creates the render command.
// It reads a resolved edge collection (produced by analyze) and emits
// diagram text or an SVG image.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "render <edges.json>",
		Short: "Render a resolved edge collection as a diagram",
		Long: `Render a resolved edge collection as a diagram.

The input is the JSON edge collection written by 'refmap analyze'.
Node styling is controlled by an ordered rule file: rules are evaluated
top to bottom, the first glob pattern matching a component name wins,
and unmatched names use the default style.

Examples:
  refmap render edges.json -f dot -o graph.dot
  refmap render edges.json -f svg --styles styles.toml -o graph.svg
  refmap render edges.json -f plantuml --types direct --scopes included`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runRender(c.Context(), &opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, plantuml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.stylesPath, "styles", "", "TOML style rule file")
	cmd.Flags().StringVar(&opts.types, "types", "", "only render these dependency types (direct,redundant,indirect)")
	cmd.Flags().StringVar(&opts.scopes, "scopes", "", "only render these scopes (included,external)")
	cmd.Flags().BoolVar(&opts.versions, "versions", false, "label edges with target versions")

	return cmd
}

// runRender loads the edges, builds render options, and writes the
// diagram in the requested format.
func runRender(ctx context.Context, opts *renderOpts, input string) error {
	logger := loggerFromContext(ctx)

	edges, err := graphio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d edges from %s", len(edges), input)

	ropts, err := buildRenderOptions(opts)
	if err != nil {
		return err
	}

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(render.ToDOT(edges, ropts))
	case formatPlantUML:
		data = []byte(render.ToPlantUML(edges, ropts))
	case formatSVG:
		logger.Info("Rendering SVG via Graphviz")
		data, err = render.RenderSVG(render.ToDOT(edges, ropts))
		if err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s (supported: dot, svg, plantuml)", opts.format)
	}

	return writeOutput(data, opts.output, logger.Infof)
}

// buildRenderOptions converts flags into render.Options.
func buildRenderOptions(opts *renderOpts) (render.Options, error) {
	ropts := render.Options{Versions: opts.versions}

	if opts.stylesPath != "" {
		styles, err := render.LoadStyles(opts.stylesPath)
		if err != nil {
			return render.Options{}, err
		}
		ropts.Styles = styles
	}

	types, err := parseTypes(opts.types)
	if err != nil {
		return render.Options{}, err
	}
	scopes, err := parseScopes(opts.scopes)
	if err != nil {
		return render.Options{}, err
	}
	ropts.Filter = render.Filter{Types: types, Scopes: scopes}

	return ropts, nil
}

// parseTypes parses a comma-separated dependency type filter.
// An empty string means no restriction.
func parseTypes(s string) ([]resolve.Type, error) {
	if s == "" {
		return nil, nil
	}
	var out []resolve.Type
	for _, part := range strings.Split(s, ",") {
		switch t := resolve.Type(strings.TrimSpace(strings.ToLower(part))); t {
		case resolve.TypeDirect, resolve.TypeRedundant, resolve.TypeIndirect:
			out = append(out, t)
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown dependency type: %s", part)
		}
	}
	return out, nil
}

// parseScopes parses a comma-separated scope filter.
// An empty string means no restriction.
func parseScopes(s string) ([]resolve.Scope, error) {
	if s == "" {
		return nil, nil
	}
	var out []resolve.Scope
	for _, part := range strings.Split(s, ",") {
		switch sc := resolve.Scope(strings.TrimSpace(strings.ToLower(part))); sc {
		case resolve.ScopeIncluded, resolve.ScopeExternal:
			out = append(out, sc)
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown scope: %s", part)
		}
	}
	return out, nil
}

// writeOutput writes data to path, or stdout when path is empty.
func writeOutput(data []byte, path string, infof func(string, ...any)) error {
	var out io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}
	if _, err := out.Write(data); err != nil {
		return err
	}
	if path != "" {
		infof("Generated %s", path)
	}
	return nil
}
