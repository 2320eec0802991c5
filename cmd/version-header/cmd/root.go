package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/version-header/internal/logger"
	"github.com/oshokin/version-header/internal/service/generator"
	"github.com/oshokin/version-header/internal/version"
)

var (
	// projectRoot is the project directory supplied by the invoking build environment.
	projectRoot string

	// manifestPath optionally overrides manifest resolution under the project root.
	manifestPath string

	// logLevel sets the logging verbosity.
	logLevel string

	// rootCmd represents the base command that runs one generation pass.
	rootCmd = &cobra.Command{
		Use:   "version-header",
		Short: "Sync the generated Version.h with the project manifest",
		Long: "Pre-build step that reads the version field of the project manifest " +
			"(library.json or library.yaml) and regenerates include/<name>/Version.h " +
			"only when its content changed, keeping build caches warm.",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			options := &generator.Options{
				ProjectRoot:  projectRoot,
				ManifestPath: manifestPath,
			}

			_, err := generator.Run(ctx, options)

			return err
		},
	}
)

// Execute runs the version-header CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&projectRoot, "project-root", "p", ".", "project root containing the manifest")
	rootCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "explicit manifest path (overrides the project-root convention)")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "logging level (debug, info, warn, error)")
}
