// Package main is the entry point for the winr layout tool.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GasparKral/WinR/internal/event"
	"github.com/GasparKral/WinR/internal/layoutfile"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// app carries state shared by subcommands.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	logLevel string
	maxDepth int
	logger   *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "winr",
		Short:         "Inspect and preview component layout files",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.stderr, a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&a.maxDepth, "max-depth", event.DefaultMaxDepth, "maximum nested event dispatch depth")

	root.AddCommand(
		newBoundsCmd(a),
		newWatchCmd(a),
		newPreviewCmd(a),
	)
	return root
}

// newLogger builds a text logger on w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func (a *app) newRegistry() *event.Registry {
	return event.NewRegistry(
		event.WithLogger(a.logger),
		event.WithMaxDepth(a.maxDepth),
	)
}

// load reads path and builds its components on a fresh registry.
func (a *app) load(path string) (*layoutfile.Set, error) {
	doc, err := layoutfile.Load(path)
	if err != nil {
		return nil, err
	}
	reg := a.newRegistry()
	set := layoutfile.Build(doc, reg)
	a.logger.Debug("layout loaded", "path", path, "components", set.Len(), "registry", reg.ID())
	return set, nil
}
