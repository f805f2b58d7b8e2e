// Package rebuild decides whether a compiled artifact is stale.
//
// A unit is rebuilt when its output is missing, when the command that
// produces it differs from the one recorded next to the output, or when any
// input recorded by the previous compiler run is at least as new as the
// output. Every failure to read that state counts as stale.
//
// Decisions for different outputs may run concurrently. Concurrent decisions
// for the same output are serialized.
package rebuild

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/rebuild/internal/adapters/depfile"
	"go.trai.ch/rebuild/internal/adapters/fingerprint"
	"go.trai.ch/rebuild/internal/adapters/fs"
	"go.trai.ch/rebuild/internal/adapters/logger"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/engine/decision"
)

type (
	// Object is a source file and the artifact compiled from it.
	Object = domain.Object
	// Command is a process invocation whose text is recorded as the output's fingerprint.
	Command = domain.Command
	// Decision is a verdict with the signal that decided it.
	Decision = domain.Decision
	// Reason names the signal that decided a verdict.
	Reason = domain.Reason
)

// NewCommand builds a Command from an argv slice.
func NewCommand(argv ...string) Command {
	return domain.NewCommand(argv...)
}

var (
	defaultLogger = newLogger()
	defaultGuard  = newGuard(defaultLogger)
)

func newLogger() *logger.Logger {
	log := logger.New()
	log.SetOutput(io.Discard)
	return log
}

func newGuard(log *logger.Logger) *decision.Guard {
	return decision.NewGuard(decision.New(
		fingerprint.NewStore(),
		fs.NewOracle(),
		depfile.NewExtractor(log),
		log,
	))
}

// SetLogOutput sends the package's diagnostics to w. Nothing is logged until
// it is called; a nil w silences logging again.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	defaultLogger.SetOutput(w)
}

// IsRunNeeded reports whether obj must be rebuilt with cmd, and records cmd
// as the output's fingerprint. Set msvc when the compiler writes
// /sourceDependencies JSON instead of a Makefile rule.
func IsRunNeeded(obj Object, cmd fmt.Stringer, msvc bool) bool {
	return Explain(obj, cmd, msvc).Rebuild
}

// Explain is IsRunNeeded returning the full decision.
func Explain(obj Object, cmd fmt.Stringer, msvc bool) Decision {
	return defaultGuard.Explain(context.Background(), obj, cmd, domain.ToolchainFromMSVC(msvc))
}

// Preview decides like Explain without recording anything.
func Preview(obj Object, cmd fmt.Stringer, msvc bool) Decision {
	return defaultGuard.Preview(context.Background(), obj, cmd, domain.ToolchainFromMSVC(msvc))
}

// GetDependencies returns the inputs the previous compiler run recorded for obj.
// The boolean is false when no usable record exists.
func GetDependencies(obj Object, msvc bool) ([]string, bool) {
	return defaultGuard.Dependencies(obj, domain.ToolchainFromMSVC(msvc))
}
