// Package app implements the application layer for rebuild.
package app

import (
	"context"
	"fmt"
	"runtime"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/rebuild/internal/engine/decision"
	"go.trai.ch/rebuild/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	guard        *decision.Guard
	scheduler    *scheduler.Scheduler
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, guard *decision.Guard, sched *scheduler.Scheduler) *App {
	return &App{
		configLoader: loader,
		guard:        guard,
		scheduler:    sched,
	}
}

// Check makes a real decision for one unit, recording cmd as its fingerprint.
func (a *App) Check(ctx context.Context, obj domain.Object, cmd fmt.Stringer, tc domain.Toolchain) domain.Decision {
	return a.guard.Explain(ctx, obj, cmd, tc)
}

// Explain decides one unit without writing anything.
func (a *App) Explain(ctx context.Context, obj domain.Object, cmd fmt.Stringer, tc domain.Toolchain) domain.Decision {
	return a.guard.Preview(ctx, obj, cmd, tc)
}

// Dependencies returns the inputs the previous compiler run recorded for obj.
func (a *App) Dependencies(obj domain.Object, tc domain.Toolchain) ([]string, bool) {
	return a.guard.Dependencies(obj, tc)
}

// StatusOptions configures a manifest-wide evaluation.
type StatusOptions struct {
	// Config is the manifest name or path. Empty selects domain.ManifestFileName.
	Config string
	// Units restricts the evaluation to the named units. Empty selects all.
	Units []string
	// Write records each unit's command, as Check does.
	Write bool
}

// Recorded returns the command last recorded for obj.
func (a *App) Recorded(obj domain.Object) (string, bool) {
	return a.guard.Recorded(obj)
}

// StatusReport is the outcome of a manifest-wide evaluation.
type StatusReport struct {
	// Results are in manifest order.
	Results []scheduler.Result
	Summary domain.RunSummary
}

// Status decides every selected unit of the manifest found from cwd.
func (a *App) Status(ctx context.Context, cwd string, opts StatusOptions) (*StatusReport, error) {
	manifest, err := a.configLoader.Load(cwd, opts.Config)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	units, err := manifest.Select(opts.Units)
	if err != nil {
		return nil, err
	}

	mode := scheduler.ModePreview
	if opts.Write {
		mode = scheduler.ModeWrite
	}

	results, err := a.scheduler.Run(ctx, units, runtime.NumCPU(), mode)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStatusFailed.Error())
	}
	return &StatusReport{
		Results: results,
		Summary: a.scheduler.Summarize(units),
	}, nil
}
