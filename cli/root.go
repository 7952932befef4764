// Package cli implements the picroute command tree. Commands load a
// problem file, run the routing and assembly libraries and emit the
// result; the library packages themselves stay log free.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"picroute/assemble"
	"picroute/problem"
	"picroute/routing"
)

// Exit codes. Scripts can tell a malformed problem from geometry that
// does not fit the bend radius.
const (
	exitError      = 1
	exitBadProblem = 2
	exitInfeasible = 3
)

// Version is stamped at build time via ldflags.
var Version = "dev"

var (
	verbose bool
	logger  *zap.Logger
)

// NewRootCommand assembles the picroute command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "picroute",
		Short: "Route waveguide bundles along shared waypoints",
		Long: `picroute routes an ordered bundle of ports between two banks along a
shared waypoint polyline, one axis aligned route per pair.

Problems are described in YAML or JSON files. The route command emits
the computed paths as JSON or YAML, check validates a problem and
verifies its geometry fits the bend radius, and preview opens an
interactive terminal view.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			} else {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(NewRouteCommand())
	root.AddCommand(NewCheckCommand())
	root.AddCommand(NewPreviewCommand())

	return root
}

// Execute runs the command tree and exits with a code describing the
// failure class.
func Execute(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error. Problem file and geometry input errors
// map to exitBadProblem, a bend radius that does not fit the waypoint
// spans to exitInfeasible, anything else to exitError.
func exitCode(err error) int {
	var (
		parseErr      *problem.ParseError
		validationErr *problem.ValidationError
		pathErr       *routing.InvalidPathError
		separationErr *routing.AmbiguousSeparationError
		feasErr       *assemble.FeasibilityError
	)
	switch {
	case errors.As(err, &feasErr):
		return exitInfeasible
	case errors.As(err, &parseErr),
		errors.As(err, &validationErr),
		errors.As(err, &pathErr),
		errors.As(err, &separationErr):
		return exitBadProblem
	}
	return exitError
}

// log returns the configured logger, or a no-op logger when a command
// runs outside the root tree, as in tests.
func log() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
