package cli

import (
	"context"

	"github.com/spf13/cobra"

	herrors "github.com/matzehuels/hedi/pkg/errors"
)

// newValidateCmd creates the validate command, which loads a diagram
// document and checks it against the half-edge invariants.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a diagram document against the half-edge invariants",
		Long: `Validate loads a diagram document and verifies its structure: every
half-edge has a mutual twin with crossed endpoints, every half-edge chains to
a successor on the same face, and every face boundary closes into a finite
cycle. The command exits non-zero on the first violation found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args[0])
		},
	}
}

func runValidate(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	doc, err := loadDocument(ctx, path)
	if err != nil {
		printError("%s", herrors.UserMessage(err))
		if code := herrors.GetCode(err); code != "" {
			printDetail("code: %s", code)
		}
		return err
	}

	// Import re-checks the invariants, so reaching this point means the
	// document is consistent.
	d := doc.Diagram
	p.done("Validated " + doc.ID)
	printSuccess("%s is a consistent half-edge diagram", path)
	printStats(d.VertexCount(), d.EdgeCount(), d.FaceCount())
	return nil
}
