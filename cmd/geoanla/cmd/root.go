// Package cmd implements the geoanla command-line tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/geoanla/internal/application"
	"github.com/JonMunkholm/geoanla/internal/config"
	"github.com/JonMunkholm/geoanla/internal/logging"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFatal    = 1 // Unusable input or configuration
	ExitRejected = 2 // Rows were rejected and --fail-on-errors was set
)

// errRejected reports rejected rows as a distinct exit status.
var errRejected = errors.New("rows rejected")

// globalFlags are shared by every subcommand.
type globalFlags struct {
	subdivisions string
	dictionaries string
	logLevel     string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "geoanla",
		Short: "Validate ANLA environmental monitoring records",
		Long: `geoanla validates tabular and spatial records against the record types of
the ANLA geodatabase model: coded domains, numeric bounds, dates and the
cross-field rules of each record type.

Reference data:
  --subdivisions   municipality table (CSV with id,nombre columns)
  --dictionaries   optional YAML file of external dictionaries

Both can also be set with CATALOG_SUBDIVISIONS_PATH and
CATALOG_DICTIONARIES_PATH, or in a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.subdivisions, "subdivisions", "", "Municipality table (default: $CATALOG_SUBDIVISIONS_PATH)")
	root.PersistentFlags().StringVar(&flags.dictionaries, "dictionaries", "", "External dictionaries YAML (default: $CATALOG_DICTIONARIES_PATH)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	root.AddCommand(
		newValidateCmd(flags),
		newQueryCmd(flags),
		newSchemasCmd(),
		newDomainCmd(flags),
		newElevationCmd(flags),
	)
	return root
}

// Execute runs the tool and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, errRejected) {
		return ExitRejected
	}
	printError(root, err)
	return ExitFatal
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}

// loadApp reads configuration and builds the service. Flags win over the
// environment, which wins over .env.
func loadApp(ctx context.Context, cmd *cobra.Command, flags *globalFlags) (*application.App, *config.Config, error) {
	_ = godotenv.Load()

	if flags.subdivisions != "" {
		os.Setenv("CATALOG_SUBDIVISIONS_PATH", flags.subdivisions)
	}
	if flags.dictionaries != "" {
		os.Setenv("CATALOG_DICTIONARIES_PATH", flags.dictionaries)
	}

	logger := logging.New(cmd.ErrOrStderr(), flags.logLevel, "text")
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	app, err := application.New(ctx, cfg, application.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return app, cfg, nil
}
