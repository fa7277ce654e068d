package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hedi/pkg/buildinfo"
	"github.com/matzehuels/hedi/pkg/hedge"
	"github.com/matzehuels/hedi/pkg/hedgeio"
)

// Execute runs the hedi CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, loads the TOML config (from --config
// or ~/.config/hedi/config.toml), and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and config are attached to the context and accessible to all
// commands via loggerFromContext and configFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "hedi inspects and edits half-edge diagrams",
		Long:         `hedi is a CLI tool for working with half-edge diagram documents: validating their topology, inspecting face boundaries, rendering them with Graphviz, and applying edge-split mutations.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/hedi/config.toml)")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newSplitCmd())
	root.AddCommand(newFacesCmd())
	root.AddCommand(newPushCmd())
	root.AddCommand(newPullCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// loadDocument imports a document from path with the configured walk limit
// and logs the load.
func loadDocument(ctx context.Context, path string) (*hedgeio.Document, error) {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	logger.Debugf("Loading %s", path)

	doc, err := hedgeio.ImportJSON(path, hedge.WithWalkLimit(cfg.WalkLimit))
	if err != nil {
		return nil, err
	}
	d := doc.Diagram
	logger.Infof("Loaded %s: %d vertices, %d half-edges, %d faces",
		doc.ID, d.VertexCount(), d.EdgeCount(), d.FaceCount())
	return doc, nil
}
