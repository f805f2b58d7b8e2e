// Package decision decides whether a compilation unit's output must be rebuilt.
package decision

import (
	"context"
	"fmt"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
)

// Engine turns the staleness signals of one compilation unit into a verdict.
// It holds no per-unit state, so different units may be decided concurrently.
// Deciding the same output concurrently races on its fingerprint; use Guard for that.
type Engine struct {
	store     ports.FingerprintStore
	oracle    ports.TimestampOracle
	extractor ports.DependencyExtractor
	logger    ports.Logger
}

// New creates a new Engine.
func New(
	store ports.FingerprintStore,
	oracle ports.TimestampOracle,
	extractor ports.DependencyExtractor,
	logger ports.Logger,
) *Engine {
	return &Engine{
		store:     store,
		oracle:    oracle,
		extractor: extractor,
		logger:    logger,
	}
}

// IsRunNeeded reports whether obj must be rebuilt with cmd.
// The fingerprint sidecar is updated to cmd's text as a side effect.
func (e *Engine) IsRunNeeded(ctx context.Context, obj domain.Object, cmd fmt.Stringer, tc domain.Toolchain) bool {
	return e.Explain(ctx, obj, cmd, tc).Rebuild
}

// Explain is IsRunNeeded returning the full decision.
func (e *Engine) Explain(ctx context.Context, obj domain.Object, cmd fmt.Stringer, tc domain.Toolchain) domain.Decision {
	return e.decide(ctx, obj, cmd, tc, false)
}

// Preview decides like Explain but never writes: a fingerprint that is absent or
// differs reports command-changed and leaves the sidecar untouched.
func (e *Engine) Preview(ctx context.Context, obj domain.Object, cmd fmt.Stringer, tc domain.Toolchain) domain.Decision {
	return e.decide(ctx, obj, cmd, tc, true)
}

// Dependencies returns the inputs recorded for obj by the previous compiler run.
func (e *Engine) Dependencies(obj domain.Object, tc domain.Toolchain) ([]string, bool) {
	return e.extractor.Extract(obj, tc)
}

// Recorded returns the command text last recorded for obj.
// The boolean is false when no readable fingerprint exists.
func (e *Engine) Recorded(obj domain.Object) (string, bool) {
	text, err := e.store.Load(obj.Dst)
	if err != nil {
		e.logger.Debug("no recorded command", "dst", obj.Dst, "error", err)
		return "", false
	}
	return text, true
}

func (e *Engine) decide(
	ctx context.Context,
	obj domain.Object,
	cmd fmt.Stringer,
	tc domain.Toolchain,
	dryRun bool,
) domain.Decision {
	text := cmd.String()
	fingerprint := domain.SidecarPath(obj.Dst, domain.CommandExt)

	if dryRun {
		if !e.store.Matches(obj.Dst, text) {
			return e.failOpen(ctx, obj, domain.ReasonCommandChanged, fingerprint, nil)
		}
	} else {
		status, err := e.store.Update(obj.Dst, text)
		if err != nil {
			return e.failOpen(ctx, obj, domain.ReasonFingerprintWriteFailed, fingerprint, err)
		}
		if status == domain.WriteStatusWritten {
			return e.failOpen(ctx, obj, domain.ReasonCommandChanged, fingerprint, nil)
		}
	}

	if !e.oracle.IsRegularFile(obj.Dst) {
		return e.failOpen(ctx, obj, domain.ReasonOutputMissing, obj.Dst, nil)
	}

	deps, ok := e.extractor.Extract(obj, tc)
	if !ok {
		return e.failOpen(ctx, obj, domain.ReasonDepsUnknown, domain.SidecarPath(obj.Dst, tc.DepsExt()), nil)
	}

	out := e.oracle.ModTime(obj.Dst)
	ins := make([]domain.Timestamp, len(deps))
	for i, dep := range deps {
		ins[i] = e.oracle.ModTime(dep)
	}

	idx, stale := FirstStale(out, ins)
	switch {
	case !stale:
		d := domain.UpToDate()
		e.record(ctx, obj, d)
		return d
	case idx == OutputIndex:
		return e.failOpen(ctx, obj, domain.ReasonOutputUnreadable, obj.Dst, nil)
	case !ins[idx].Known():
		return e.failOpen(ctx, obj, domain.ReasonInputMissing, deps[idx], nil)
	default:
		return e.failOpen(ctx, obj, domain.ReasonInputNewer, deps[idx], nil)
	}
}

// failOpen is the only place a lower-level outcome becomes a rebuild verdict.
// err is non-nil only for failures worth surfacing; everything else is a normal
// staleness signal and stays at debug level.
func (e *Engine) failOpen(
	ctx context.Context,
	obj domain.Object,
	reason domain.Reason,
	path string,
	err error,
) domain.Decision {
	if err != nil {
		e.logger.Warn(fmt.Sprintf("rebuilding %s: %v", obj.Dst, err))
	}
	d := domain.Rebuild(reason, path)
	e.record(ctx, obj, d)
	return d
}

func (e *Engine) record(ctx context.Context, obj domain.Object, d domain.Decision) {
	e.logger.Debug("decided", "dst", obj.Dst, "verdict", d.Verdict(), "reason", d.Reason, "path", d.Path)
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LevelFor(d), describe(d))
	}
}

func describe(d domain.Decision) string {
	if d.Path == "" {
		return string(d.Reason)
	}
	return string(d.Reason) + " " + d.Path
}
