package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hedi/pkg/hedge"
	"github.com/matzehuels/hedi/pkg/hedgeio"
)

// newStatsCmd creates the stats command, which prints element counts and
// per-face boundary lengths for a diagram document.
func newStatsCmd() *cobra.Command {
	var boundaries bool

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Print diagram statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), args[0], boundaries)
		},
	}
	cmd.Flags().BoolVar(&boundaries, "boundaries", false, "list every face with its boundary length")
	return cmd
}

func runStats(ctx context.Context, path string, boundaries bool) error {
	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}
	d := doc.Diagram

	fmt.Println(StyleTitle.Render(doc.ID))
	printKeyValue("vertices", fmt.Sprintf("%d", d.VertexCount()))
	printKeyValue("half-edges", fmt.Sprintf("%d", d.EdgeCount()))
	printKeyValue("faces", fmt.Sprintf("%d", d.FaceCount()))

	// Longest boundary is a useful smell test for digitized subdivisions.
	longest, longestFace := 0, -1
	for _, f := range d.Faces() {
		n, err := d.BoundaryLength(f)
		if err != nil {
			return err
		}
		if n > longest {
			longest, longestFace = n, int(f)
		}
		if boundaries {
			k, _ := d.K(mustFaceRef(d, f))
			printDetail("face %d: %d edges, k=%g", f, n, k)
		}
	}
	if longestFace >= 0 {
		printKeyValue("longest", fmt.Sprintf("face %d (%d edges)", longestFace, longest))
	}

	if !boundaries {
		printNextStep("Per-face boundaries", fmt.Sprintf("hedi stats %s --boundaries", path))
	}
	return nil
}

// mustFaceRef returns the face's reference edge; the document was validated
// on import, so every face has one.
func mustFaceRef(d *hedgeio.Diagram, f hedge.Face) hedge.Edge {
	ref, _ := d.FaceEdgeRef(f)
	return ref
}
