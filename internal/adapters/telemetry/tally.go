package telemetry

import (
	"bytes"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/rebuild/internal/core/domain"
)

// Tally is a progrock.Writer that keeps the latest state and the output of
// every vertex it sees.
type Tally struct {
	mu       sync.Mutex
	vertexes map[string]*progrock.Vertex
	ids      map[string]string
	logs     map[string]*bytes.Buffer
}

// NewTally creates an empty Tally.
func NewTally() *Tally {
	return &Tally{
		vertexes: make(map[string]*progrock.Vertex),
		ids:      make(map[string]string),
		logs:     make(map[string]*bytes.Buffer),
	}
}

// WriteStatus records the vertexes and log chunks carried by update.
func (t *Tally) WriteStatus(update *progrock.StatusUpdate) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, v := range update.Vertexes {
		t.vertexes[v.Id] = v
		t.ids[v.Name] = v.Id
	}
	for _, l := range update.Logs {
		buf, ok := t.logs[l.Vertex]
		if !ok {
			buf = new(bytes.Buffer)
			t.logs[l.Vertex] = buf
		}
		buf.Write(l.Data)
	}
	return nil
}

// Close implements progrock.Writer. A Tally holds no resources, and it keeps
// recording after Close so a cached recorder can be reused.
func (t *Tally) Close() error {
	return nil
}

// Vertex returns the latest state of the vertex with the given name.
func (t *Tally) Vertex(name string) (*progrock.Vertex, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id, ok := t.ids[name]
	if !ok {
		return nil, false
	}
	return t.vertexes[id], true
}

// Logs returns the output written to the named vertex.
func (t *Tally) Logs(name string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if buf, ok := t.logs[t.ids[name]]; ok {
		return buf.String()
	}
	return ""
}

// Summary counts the named vertexes. Names never recorded are skipped.
func (t *Tally) Summary(names []string) domain.RunSummary {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s domain.RunSummary
	for _, name := range names {
		v, ok := t.vertexes[t.ids[name]]
		if !ok {
			continue
		}
		s.Total++
		switch {
		case v.Error != nil:
			s.Failed++
		case v.Cached:
			s.Cached++
		}
	}
	return s
}

// restart forgets the output of vertex id before it is recorded again.
func (t *Tally) restart(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.logs, id)
}
