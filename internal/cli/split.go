package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hedi/pkg/hedge"
	"github.com/matzehuels/hedi/pkg/hedgeio"
)

// splitOpts holds the command-line flags for the split command.
type splitOpts struct {
	edge   int    // half-edge to split
	output string // output file (defaults to in-place)
	label  string // optional label metadata for the new vertex
}

// newSplitCmd creates the split command, which inserts a vertex into a
// half-edge and its twin and writes the mutated document back out.
func newSplitCmd() *cobra.Command {
	opts := splitOpts{edge: -1}

	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Insert a vertex into a half-edge and its twin",
		Long: `Split retires the chosen half-edge and its twin and replaces them with
four new half-edges meeting at a fresh vertex. Both face boundaries grow by
one edge; faces themselves are preserved. The mutated document is written
back to the input file unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.edge, "edge", "e", opts.edge, "half-edge handle to split (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().StringVar(&opts.label, "label", "", "label metadata for the inserted vertex")
	_ = cmd.MarkFlagRequired("edge")

	return cmd
}

func runSplit(ctx context.Context, input string, opts *splitOpts) error {
	logger := loggerFromContext(ctx)

	doc, err := loadDocument(ctx, input)
	if err != nil {
		return err
	}
	d := doc.Diagram

	var meta hedge.Metadata
	if opts.label != "" {
		meta = hedge.Metadata{"label": opts.label}
	}
	v := d.AddVertex(meta)

	sp, err := d.InsertVertex(v, hedge.Edge(opts.edge))
	if err != nil {
		return err
	}
	logger.Infof("Split edge %d: new vertex %d, edges %d/%d and twins %d/%d",
		opts.edge, v, sp.E1, sp.E2, sp.TwinE1, sp.TwinE2)

	output := opts.output
	if output == "" {
		output = input
	}
	if err := hedgeio.ExportJSON(doc, output); err != nil {
		return err
	}

	printSuccess("Inserted vertex %d into edge %d", v, opts.edge)
	printStats(d.VertexCount(), d.EdgeCount(), d.FaceCount())
	printFile(output)
	printNextStep("Re-check the result", fmt.Sprintf("hedi validate %s", output))
	return nil
}
