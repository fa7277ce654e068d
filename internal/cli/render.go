package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/hedge"
	"github.com/matzehuels/hedi/pkg/render"
)

const (
	formatSVG = "svg"
	formatDOT = "dot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path (derived from input when empty)
	format   string // "svg" or "dot"
	detailed bool   // include twin handles, scalar tags, and metadata in labels
	face     int    // restrict rendering to one face's boundary (-1 for all)
}

// newRenderCmd creates the render command for generating visualizations.
//
// The diagram carries no geometry, so Graphviz computes the layout; the
// result is a schematic view of the connectivity, with half-edges drawn as
// directed arcs colored by face.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		format: formatSVG,
		face:   -1,
	}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a diagram document to SVG or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatSVG && opts.format != formatDOT {
				return herrors.New(herrors.ErrCodeInvalidInput,
					"invalid format: %s (must be %q or %q)", opts.format, formatSVG, formatDOT)
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with new extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label edges with twin handles and scalar tags")
	cmd.Flags().IntVar(&opts.face, "face", opts.face, "render only this face's boundary")

	return cmd
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	doc, err := loadDocument(ctx, input)
	if err != nil {
		return err
	}

	detailed := opts.detailed || cfg.Render.Detailed
	renderOptions := render.Options{Detailed: detailed}

	var dot string
	if opts.face >= 0 {
		logger.Infof("Generating DOT for face %d", opts.face)
		dot, err = render.FaceToDOT(doc.Diagram, hedge.Face(opts.face), renderOptions)
	} else {
		logger.Info("Generating DOT")
		dot, err = render.ToDOT(doc.Diagram, renderOptions)
	}
	if err != nil {
		return err
	}

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		logger.Info("Rendering SVG")
		if data, err = render.RenderSVG(dot); err != nil {
			return err
		}
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidPath, err, "write %s", outputPath)
	}

	printSuccess("Rendered %s", doc.ID)
	printFile(outputPath)
	if opts.format == formatSVG {
		printNextStep("Open it", fmt.Sprintf("open %s", outputPath))
	}
	return nil
}
