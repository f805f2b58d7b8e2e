package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/internal/app"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/rebuild/internal/core/ports/mocks"
	"go.trai.ch/rebuild/internal/engine/decision"
	"go.trai.ch/rebuild/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader    *mocks.MockConfigLoader
	store     *mocks.MockFingerprintStore
	oracle    *mocks.MockTimestampOracle
	extractor *mocks.MockDependencyExtractor
	telemetry *mocks.MockTelemetry
}

func setupApp(t *testing.T) (*app.App, *appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &appMocks{
		loader:    mocks.NewMockConfigLoader(ctrl),
		store:     mocks.NewMockFingerprintStore(ctrl),
		oracle:    mocks.NewMockTimestampOracle(ctrl),
		extractor: mocks.NewMockDependencyExtractor(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	m.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			v := mocks.NewMockVertex(ctrl)
			v.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
			v.EXPECT().Cached().AnyTimes()
			v.EXPECT().Complete(nil).AnyTimes()
			return ports.ContextWithVertex(ctx, v), v
		}).AnyTimes()
	m.telemetry.EXPECT().Logs(gomock.Any()).Return("").AnyTimes()

	guard := decision.NewGuard(decision.New(m.store, m.oracle, m.extractor, log))
	return app.New(m.loader, guard, scheduler.NewScheduler(guard, m.telemetry)), m
}

var (
	mainObj = domain.Object{Src: "/w/src/main.c", Dst: "/w/build/main.o"}
	mainCmd = domain.NewCommand("cc", "-c", "src/main.c")
)

func testManifest() *domain.Manifest {
	return &domain.Manifest{
		Root: "/w",
		Units: []domain.Unit{
			{Name: "main", Object: mainObj, Command: mainCmd},
			{Name: "util", Object: domain.Object{Src: "/w/src/util.c", Dst: "/w/build/util.o"}, Command: mainCmd},
		},
	}
}

func TestApp_Check(t *testing.T) {
	a, m := setupApp(t)
	m.store.EXPECT().Update(mainObj.Dst, mainCmd.String()).Return(domain.WriteStatusWritten, nil)

	d := a.Check(context.Background(), mainObj, mainCmd, domain.ToolchainGNU)

	assert.True(t, d.Rebuild)
	assert.Equal(t, domain.ReasonCommandChanged, d.Reason)
}

func TestApp_Explain(t *testing.T) {
	a, m := setupApp(t)
	m.store.EXPECT().Matches(mainObj.Dst, mainCmd.String()).Return(true)
	m.oracle.EXPECT().IsRegularFile(mainObj.Dst).Return(false)

	d := a.Explain(context.Background(), mainObj, mainCmd, domain.ToolchainGNU)

	assert.Equal(t, domain.Rebuild(domain.ReasonOutputMissing, mainObj.Dst), d)
}

func TestApp_Dependencies(t *testing.T) {
	a, m := setupApp(t)
	m.extractor.EXPECT().Extract(mainObj, domain.ToolchainMSVC).Return(nil, false)

	_, ok := a.Dependencies(mainObj, domain.ToolchainMSVC)
	assert.False(t, ok)
}

func TestApp_Recorded(t *testing.T) {
	a, m := setupApp(t)
	m.store.EXPECT().Load(mainObj.Dst).Return(mainCmd.String(), nil)

	text, ok := a.Recorded(mainObj)

	assert.True(t, ok)
	assert.Equal(t, mainCmd.String(), text)
}

func TestApp_Status_PreviewsEveryUnit(t *testing.T) {
	a, m := setupApp(t)
	m.loader.EXPECT().Load("/w/sub", "").Return(testManifest(), nil)
	m.store.EXPECT().Matches(gomock.Any(), gomock.Any()).Return(false).Times(2)
	m.telemetry.EXPECT().Summary([]string{"/w/build/main.o", "/w/build/util.o"}).Return(domain.RunSummary{Total: 2})

	report, err := a.Status(context.Background(), "/w/sub", app.StatusOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.RunSummary{Total: 2}, report.Summary)
	results := report.Results
	require.Len(t, results, 2)
	assert.Equal(t, "main", results[0].Unit.Name)
	assert.Equal(t, "util", results[1].Unit.Name)
	for _, r := range results {
		assert.Equal(t, domain.ReasonCommandChanged, r.Decision.Reason)
	}
}

func TestApp_Status_WriteSelectedUnit(t *testing.T) {
	a, m := setupApp(t)
	m.loader.EXPECT().Load("/w", "custom.yaml").Return(testManifest(), nil)
	m.store.EXPECT().Update("/w/build/util.o", mainCmd.String()).Return(domain.WriteStatusUnchanged, nil)
	m.oracle.EXPECT().IsRegularFile("/w/build/util.o").Return(false)
	m.telemetry.EXPECT().Summary([]string{"/w/build/util.o"}).Return(domain.RunSummary{Total: 1})

	report, err := a.Status(context.Background(), "/w", app.StatusOptions{
		Config: "custom.yaml",
		Units:  []string{"util"},
		Write:  true,
	})

	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, domain.ReasonOutputMissing, report.Results[0].Decision.Reason)
}

func TestApp_Status_UnknownUnit(t *testing.T) {
	a, m := setupApp(t)
	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(testManifest(), nil)

	_, err := a.Status(context.Background(), "/w", app.StatusOptions{Units: []string{"nope"}})

	require.ErrorContains(t, err, domain.ErrUnitNotFound.Error())
}

func TestApp_Status_LoadFailure(t *testing.T) {
	a, m := setupApp(t)
	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := a.Status(context.Background(), "/w", app.StatusOptions{})

	require.ErrorContains(t, err, "failed to load configuration")
}

func TestApp_Status_Canceled(t *testing.T) {
	a, m := setupApp(t)
	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(testManifest(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Status(ctx, "/w", app.StatusOptions{})

	require.ErrorContains(t, err, domain.ErrStatusFailed.Error())
}
