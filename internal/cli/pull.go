package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hedi/pkg/hedgeio"
	"github.com/matzehuels/hedi/pkg/store"
)

// newPullCmd creates the pull command, which fetches a document from the
// configured store backend and writes it to a file.
func newPullCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pull <id>",
		Short: "Fetch a stored diagram document into a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPull(cmd.Context(), args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <id>.json)")
	return cmd
}

func runPull(ctx context.Context, id, output string) error {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	s, err := store.Open(ctx, cfg.storeConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	logger.Debugf("Pulling %s from %s backend", id, cfg.Store.Backend)
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if output == "" {
		output = id + ".json"
	}
	if err := hedgeio.ExportJSON(doc, output); err != nil {
		return err
	}

	d := doc.Diagram
	printSuccess("Pulled %s", doc.ID)
	printStats(d.VertexCount(), d.EdgeCount(), d.FaceCount())
	printFile(output)
	return nil
}
