package decision

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/rebuild/internal/core/domain"
)

// Guard serializes decisions per output stem, since outputs sharing a stem share
// sidecars. A second caller for the same stem waits for the first to finish and
// then makes its own decision with its own command. Different outputs proceed
// in parallel.
type Guard struct {
	engine *Engine

	mu    sync.Mutex
	locks map[string]*stemLock
}

// stemLock is held while a stem is being decided. refs counts holders and
// waiters so the entry can be dropped once nobody needs it.
type stemLock struct {
	mu   sync.Mutex
	refs int
}

// NewGuard wraps engine.
func NewGuard(engine *Engine) *Guard {
	return &Guard{
		engine: engine,
		locks:  make(map[string]*stemLock),
	}
}

// IsRunNeeded is the serialized form of Engine.IsRunNeeded.
func (g *Guard) IsRunNeeded(ctx context.Context, obj domain.Object, cmd fmt.Stringer, tc domain.Toolchain) bool {
	return g.Explain(ctx, obj, cmd, tc).Rebuild
}

// Explain is the serialized form of Engine.Explain.
func (g *Guard) Explain(ctx context.Context, obj domain.Object, cmd fmt.Stringer, tc domain.Toolchain) domain.Decision {
	unlock := g.lock(obj.Key())
	defer unlock()
	return g.engine.Explain(ctx, obj, cmd, tc)
}

// Preview is the serialized form of Engine.Preview. It waits for a running
// Explain of the same stem so it never reads a half-written fingerprint.
func (g *Guard) Preview(ctx context.Context, obj domain.Object, cmd fmt.Stringer, tc domain.Toolchain) domain.Decision {
	unlock := g.lock(obj.Key())
	defer unlock()
	return g.engine.Preview(ctx, obj, cmd, tc)
}

// Dependencies forwards to Engine.Dependencies. Extraction only reads, so it is not serialized.
func (g *Guard) Dependencies(obj domain.Object, tc domain.Toolchain) ([]string, bool) {
	return g.engine.Dependencies(obj, tc)
}

// Recorded forwards to Engine.Recorded.
func (g *Guard) Recorded(obj domain.Object) (string, bool) {
	return g.engine.Recorded(obj)
}

func (g *Guard) lock(key string) func() {
	g.mu.Lock()
	l, ok := g.locks[key]
	if !ok {
		l = &stemLock{}
		g.locks[key] = l
	}
	l.refs++
	g.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		g.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(g.locks, key)
		}
		g.mu.Unlock()
	}
}

