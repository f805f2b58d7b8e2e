package decision_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/internal/adapters/depfile"
	"go.trai.ch/rebuild/internal/adapters/fingerprint"
	"go.trai.ch/rebuild/internal/adapters/fs"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports/mocks"
	"go.trai.ch/rebuild/internal/engine/decision"
	"go.uber.org/mock/gomock"
)

// workspace is a build directory populated with real files.
type workspace struct {
	t      *testing.T
	dir    string
	engine *decision.Engine
	obj    domain.Object
	now    time.Time
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	dir := t.TempDir()
	return &workspace{
		t:   t,
		dir: dir,
		engine: decision.New(
			fingerprint.NewStore(),
			fs.NewOracle(),
			depfile.NewExtractor(log),
			log,
		),
		obj: domain.Object{Src: filepath.Join(dir, "main.c"), Dst: filepath.Join(dir, "main.o")},
		now: time.Now().Add(-time.Hour).Truncate(time.Second),
	}
}

func (w *workspace) path(name string) string {
	return filepath.Join(w.dir, name)
}

// write creates name with content and stamps it offset from the workspace clock.
func (w *workspace) write(name, content string, offset time.Duration) {
	w.t.Helper()
	p := w.path(name)
	require.NoError(w.t, os.WriteFile(p, []byte(content), 0o600))
	w.touch(name, offset)
}

func (w *workspace) touch(name string, offset time.Duration) {
	w.t.Helper()
	ts := w.now.Add(offset)
	require.NoError(w.t, os.Chtimes(w.path(name), ts, ts))
}

func (w *workspace) decide(cmd domain.Command, tc domain.Toolchain) domain.Decision {
	return w.engine.Explain(context.Background(), w.obj, cmd, tc)
}

// primed writes the output, its headers and a Makefile rule, and records cmd.
func primed(t *testing.T, cmd domain.Command) *workspace {
	t.Helper()
	w := newWorkspace(t)
	w.write("main.c", "int main(void) { return 0; }", -2*time.Minute)
	w.write("a.h", "", -2*time.Minute)
	w.write("b.h", "", -2*time.Minute)
	w.write("main.o", "obj", 0)
	w.write("main.dep", "main.o: "+w.path("a.h")+" "+w.path("b.h")+"\n", 0)

	require.True(t, w.decide(cmd, domain.ToolchainGNU).Rebuild, "first decision records the command")
	return w
}

func TestScenario_FirstBuild(t *testing.T) {
	w := newWorkspace(t)
	cmd := domain.NewCommand("cc", "-c", "main.c")

	d := w.decide(cmd, domain.ToolchainGNU)

	assert.True(t, d.Rebuild)
	content, err := os.ReadFile(w.path("main.command"))
	require.NoError(t, err)
	assert.Equal(t, cmd.String(), string(content))
}

func TestScenario_HeadersOlderThanOutput(t *testing.T) {
	cmd := domain.NewCommand("cc", "-c", "main.c")
	w := primed(t, cmd)

	assert.Equal(t, domain.UpToDate(), w.decide(cmd, domain.ToolchainGNU))
}

func TestScenario_HeaderSameTimeAsOutput(t *testing.T) {
	cmd := domain.NewCommand("cc", "-c", "main.c")
	w := primed(t, cmd)
	w.touch("a.h", 0)

	d := w.decide(cmd, domain.ToolchainGNU)

	assert.Equal(t, domain.Rebuild(domain.ReasonInputNewer, w.path("a.h")), d)
}

func TestScenario_HeaderDeleted(t *testing.T) {
	cmd := domain.NewCommand("cc", "-c", "main.c")
	w := primed(t, cmd)
	require.NoError(t, os.Remove(w.path("b.h")))

	d := w.decide(cmd, domain.ToolchainGNU)

	assert.Equal(t, domain.Rebuild(domain.ReasonInputMissing, w.path("b.h")), d)
}

func TestScenario_OutputDeleted(t *testing.T) {
	cmd := domain.NewCommand("cc", "-c", "main.c")
	w := primed(t, cmd)
	require.NoError(t, os.Remove(w.path("main.o")))

	assert.Equal(t, domain.ReasonOutputMissing, w.decide(cmd, domain.ToolchainGNU).Reason)
}

func TestScenario_DepFileMissing(t *testing.T) {
	cmd := domain.NewCommand("cc", "-c", "main.c")
	w := primed(t, cmd)
	require.NoError(t, os.Remove(w.path("main.dep")))

	assert.Equal(t, domain.ReasonDepsUnknown, w.decide(cmd, domain.ToolchainGNU).Reason)
}

func TestScenario_CommandChangeThenStable(t *testing.T) {
	cmd := domain.NewCommand("cc", "-c", "main.c")
	w := primed(t, cmd)

	changed := domain.NewCommand("cc", "-O2", "-c", "main.c")
	assert.True(t, w.decide(changed, domain.ToolchainGNU).Rebuild)
	assert.False(t, w.decide(changed, domain.ToolchainGNU).Rebuild)

	content, err := os.ReadFile(w.path("main.command"))
	require.NoError(t, err)
	assert.Equal(t, changed.String(), string(content))
}

func TestScenario_SourceDependencies(t *testing.T) {
	cmd := domain.NewCommand("cl", "/c", "main.c", "/sourceDependencies", "main.json")
	w := newWorkspace(t)
	w.write("main.c", "", -2*time.Minute)
	w.write("a.h", "", -2*time.Minute)
	w.write("main.o", "obj", 0)
	w.write("main.json", `{"Version":"1.2","Data":{"Includes":["`+filepath.ToSlash(w.path("a.h"))+`"]}}`, 0)
	require.True(t, w.decide(cmd, domain.ToolchainMSVC).Rebuild)

	assert.False(t, w.decide(cmd, domain.ToolchainMSVC).Rebuild)

	w.touch("main.c", time.Second)
	assert.Equal(t, domain.Rebuild(domain.ReasonInputNewer, w.obj.Src), w.decide(cmd, domain.ToolchainMSVC))
}

func TestScenario_SourceDependenciesWithoutIncludes(t *testing.T) {
	cmd := domain.NewCommand("cl", "/c", "main.c")
	w := newWorkspace(t)
	w.write("main.c", "", -2*time.Minute)
	w.write("main.o", "obj", 0)
	w.write("main.json", `{"Version":"1.2","Data":{"Source":"main.c"}}`, 0)
	require.True(t, w.decide(cmd, domain.ToolchainMSVC).Rebuild)

	assert.Equal(t, domain.ReasonDepsUnknown, w.decide(cmd, domain.ToolchainMSVC).Reason)
}

func TestScenario_PreviewLeavesFingerprintAlone(t *testing.T) {
	cmd := domain.NewCommand("cc", "-c", "main.c")
	w := primed(t, cmd)

	changed := domain.NewCommand("cc", "-g", "-c", "main.c")
	ctx := context.Background()
	assert.Equal(t, domain.ReasonCommandChanged, w.engine.Preview(ctx, w.obj, changed, domain.ToolchainGNU).Reason)
	assert.Equal(t, domain.ReasonCommandChanged, w.engine.Preview(ctx, w.obj, changed, domain.ToolchainGNU).Reason)
	assert.Equal(t, domain.UpToDate(), w.engine.Preview(ctx, w.obj, cmd, domain.ToolchainGNU))
}
