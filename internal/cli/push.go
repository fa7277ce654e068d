package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hedi/pkg/store"
)

// newPushCmd creates the push command, which uploads a document file to the
// configured store backend.
func newPushCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "push <file>",
		Short: "Store a diagram document in the configured backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(cmd.Context(), args[0], id)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "store under this ID instead of the document's own")
	return cmd
}

func runPush(ctx context.Context, path, id string) error {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}
	if id != "" {
		doc.ID = id
	}

	s, err := store.Open(ctx, cfg.storeConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	logger.Debugf("Pushing %s to %s backend", doc.ID, cfg.Store.Backend)
	if err := s.Set(ctx, doc); err != nil {
		return err
	}

	printSuccess("Pushed %s", doc.ID)
	printNextStep("Fetch it back", fmt.Sprintf("hedi pull %s", doc.ID))
	return nil
}
