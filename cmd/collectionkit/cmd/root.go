// Package cmd implements the collectionkit CLI commands.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/collectionkit/pkg/config"
	"github.com/go-drift/collectionkit/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	configDir string
	verbose   bool
	resolved  *config.Resolved
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "collectionkit",
		Short:        "Replay section mutations and inspect their notifications",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			r, err := config.Resolve(configDir)
			if err != nil {
				return err
			}
			if verbose {
				r.Verbose = true
				r.LogLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: r.LogLevel}))
			slog.SetDefault(logger)
			errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: r.Verbose})
			resolved = r
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configDir, "config", ".", "directory containing "+config.FileName)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(replayCmd(), versionCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCommand()
	root.SetOut(os.Stdout)
	return root.Execute()
}
