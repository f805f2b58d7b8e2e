package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/internal/adapters/telemetry"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := telemetry.New()
	require.NotNil(t, recorder)

	_, vertex := recorder.Record(context.Background(), "main.o")
	_, err := vertex.Stdout().Write([]byte("output\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelDebug, "debug msg")
	vertex.Complete(nil)

	assert.Equal(t, "output\n[DEBUG] debug msg\n", recorder.Logs("main.o"))
	assert.NoError(t, recorder.Close())
}

func TestRecorder_RecordPutsVertexInContext(t *testing.T) {
	recorder := telemetry.NewRecorder(telemetry.NewTally())

	ctx, vertex := recorder.Record(context.Background(), "main.o")

	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, got)
}

func TestRecorder_VertexStates(t *testing.T) {
	tally := telemetry.NewTally()
	recorder := telemetry.NewRecorder(tally)
	ctx := context.Background()

	_, upToDate := recorder.Record(ctx, "up-to-date.o")
	upToDate.Cached()
	upToDate.Complete(nil)

	_, rebuilt := recorder.Record(ctx, "rebuilt.o")
	rebuilt.Log(domain.LogLevelInfo, "input-newer include/a.h")
	rebuilt.Complete(nil)

	_, failed := recorder.Record(ctx, "failed.o")
	failed.Complete(errors.New("boom"))

	require.NoError(t, recorder.Close())

	v, ok := tally.Vertex("up-to-date.o")
	require.True(t, ok)
	assert.True(t, v.Cached)
	assert.NotNil(t, v.Completed)

	v, ok = tally.Vertex("rebuilt.o")
	require.True(t, ok)
	assert.False(t, v.Cached)
	assert.NotNil(t, v.Completed)
	assert.Nil(t, v.Error)
	assert.Equal(t, "[INFO] input-newer include/a.h\n", recorder.Logs("rebuilt.o"))

	v, ok = tally.Vertex("failed.o")
	require.True(t, ok)
	require.NotNil(t, v.Error)
	assert.Equal(t, "boom", *v.Error)

	_, ok = tally.Vertex("never.o")
	assert.False(t, ok)
	assert.Empty(t, recorder.Logs("never.o"))
}

func TestRecorder_Summary(t *testing.T) {
	recorder := telemetry.New()
	ctx := context.Background()

	for _, name := range []string{"a.o", "b.o", "c.o"} {
		_, v := recorder.Record(ctx, name)
		if name == "a.o" {
			v.Cached()
		}
		if name == "c.o" {
			v.Complete(errors.New("boom"))
			continue
		}
		v.Complete(nil)
	}

	s := recorder.Summary([]string{"a.o", "b.o", "c.o", "never.o"})
	assert.Equal(t, domain.RunSummary{Total: 3, Cached: 1, Failed: 1}, s)
	assert.Equal(t, 1, s.Stale())

	assert.Equal(t, domain.RunSummary{Total: 1}, recorder.Summary([]string{"b.o"}))
}

func TestRecorder_RestartForgetsOutput(t *testing.T) {
	recorder := telemetry.New()

	_, first := recorder.Record(context.Background(), "main.o")
	first.Log(domain.LogLevelInfo, "command-changed main.command")
	first.Complete(nil)

	_, second := recorder.Record(context.Background(), "main.o")
	second.Cached()
	second.Log(domain.LogLevelDebug, "up-to-date")
	second.Complete(nil)

	assert.Equal(t, "[DEBUG] up-to-date\n", recorder.Logs("main.o"))
	assert.Equal(t, domain.RunSummary{Total: 1, Cached: 1}, recorder.Summary([]string{"main.o"}))
}
