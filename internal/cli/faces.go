package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	herrors "github.com/matzehuels/hedi/pkg/errors"
)

// newFacesCmd creates the faces command, an interactive browser over a
// document's face boundaries.
func newFacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "faces <file>",
		Short: "Browse face boundaries interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFaces(cmd.Context(), args[0])
		},
	}
}

func runFaces(ctx context.Context, path string) error {
	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}
	if doc.Diagram.FaceCount() == 0 {
		printWarning("%s has no faces", path)
		return nil
	}

	model, err := NewFaceListModel(doc)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return herrors.Wrap(herrors.ErrCodeInternal, err, "face browser")
	}
	return nil
}
