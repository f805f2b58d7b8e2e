// Package scheduler evaluates the decisions of many compilation units concurrently.
package scheduler

import (
	"context"
	"fmt"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Decider makes one decision per call. *decision.Guard satisfies it.
type Decider interface {
	Explain(ctx context.Context, obj domain.Object, cmd fmt.Stringer, tc domain.Toolchain) domain.Decision
	Preview(ctx context.Context, obj domain.Object, cmd fmt.Stringer, tc domain.Toolchain) domain.Decision
}

// Mode selects whether decisions may update fingerprints.
type Mode uint8

const (
	// ModePreview decides without writing anything.
	ModePreview Mode = iota
	// ModeWrite records each unit's command as a real decision does.
	ModeWrite
)

// Result is the outcome for one unit.
type Result struct {
	Unit     domain.Unit
	Decision domain.Decision
	// Digest identifies the unit's command text.
	Digest string
	// Log is the output recorded on the unit's vertex.
	Log string
}

// Scheduler fans unit decisions out over a bounded number of goroutines.
type Scheduler struct {
	decider   Decider
	telemetry ports.Telemetry
}

// NewScheduler creates a new Scheduler.
func NewScheduler(decider Decider, telemetry ports.Telemetry) *Scheduler {
	return &Scheduler{
		decider:   decider,
		telemetry: telemetry,
	}
}

// Run decides every unit with at most parallelism decisions in flight.
// Results are returned in the order of units. The only error is ctx's.
func (s *Scheduler) Run(ctx context.Context, units []domain.Unit, parallelism int, mode Mode) ([]Result, error) {
	results := make([]Result, len(units))

	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, u := range units {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.decide(gctx, u, mode)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Scheduler) decide(ctx context.Context, u domain.Unit, mode Mode) Result {
	ctx, vertex := s.telemetry.Record(ctx, u.Object.Dst)

	var d domain.Decision
	if mode == ModeWrite {
		d = s.decider.Explain(ctx, u.Object, u.Command, u.Toolchain)
	} else {
		d = s.decider.Preview(ctx, u.Object, u.Command, u.Toolchain)
	}

	if !d.Rebuild {
		vertex.Cached()
	}
	vertex.Complete(nil)

	return Result{
		Unit:     u,
		Decision: d,
		Digest:   domain.Digest(u.Command.String()),
		Log:      s.telemetry.Logs(u.Object.Dst),
	}
}

// Summarize counts the outcomes recorded for units by the last Run.
func (s *Scheduler) Summarize(units []domain.Unit) domain.RunSummary {
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.Object.Dst
	}
	return s.telemetry.Summary(names)
}
