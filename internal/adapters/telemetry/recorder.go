// Package telemetry records per-unit progress through progrock.
package telemetry

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of progrock, with a Tally as the
// writer it reads results back from.
type Recorder struct {
	tally *Tally
	rec   *progrock.Recorder
}

// New creates a Recorder backed by a fresh Tally.
func New() *Recorder {
	return NewRecorder(NewTally())
}

// NewRecorder creates a Recorder that streams status updates to tally.
func NewRecorder(tally *Tally) *Recorder {
	return &Recorder{
		tally: tally,
		rec:   progrock.NewRecorder(tally),
	}
}

// Record starts a vertex for the named unit. Names are digested into vertex IDs,
// so recording the same name twice restarts a single vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	id := digest.FromString(name)
	r.tally.restart(id.String())
	v := &Vertex{vertex: r.rec.Vertex(id, name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Logs returns the output recorded on the named vertex.
func (r *Recorder) Logs(name string) string {
	return r.tally.Logs(name)
}

// Summary counts the named vertexes by their final state.
func (r *Recorder) Summary(names []string) domain.RunSummary {
	return r.tally.Summary(names)
}

// Close flushes the recording session.
func (r *Recorder) Close() error {
	return r.tally.Close()
}
