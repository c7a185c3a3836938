// Package app implements the application layer for concord.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/concord-tools/concord/internal/core/ports"
	"github.com/concord-tools/concord/internal/engine/checker"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.WorkspaceLoader
	checker *checker.Checker
	logger  ports.Logger
	stdout  io.Writer
}

// New creates a new App instance.
func New(loader ports.WorkspaceLoader, chk *checker.Checker, log ports.Logger) *App {
	return &App{
		loader:  loader,
		checker: chk,
		logger:  log,
		stdout:  os.Stdout,
	}
}

// WithStdout redirects success-path output. Used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	// Dir is the directory to discover the workspace from. Defaults to ".".
	Dir string

	// List prints the validated name→path map on success, one
	// "name: path" line per package in discovery order.
	List bool

	// CI switches log output to JSON.
	CI bool
}

// Check loads the workspace and runs the dependency-consistency check.
// On conflict the returned error carries the full report as its message.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	if opts.CI {
		a.logger.SetJSON(true)
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	ws, err := a.loader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load workspace configuration")
	}

	result, err := a.checker.Check(ctx, ws)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf(
		"workspace consistent: %d packages verified (fingerprint %016x)",
		len(result.Names), result.Fingerprint,
	))

	if opts.List {
		for _, name := range result.Names {
			if _, err := fmt.Fprintf(a.stdout, "%s: %s\n", name, result.Paths[name]); err != nil {
				return zerr.Wrap(err, "failed to write package list")
			}
		}
	}

	return nil
}

// Components bundles the wired application pieces handed to the CLI.
type Components struct {
	App     *App
	Logger  ports.Logger
	Loader  ports.WorkspaceLoader
	Checker *checker.Checker
}
