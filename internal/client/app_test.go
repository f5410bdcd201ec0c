package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/service"
	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	identity  []func(ctx context.Context) error
	dashboard []func(ws *service.Workspace) (bool, error)

	identityCalls  int
	dashboardCalls int
	backends       []string
}

func (f *fakeUI) IdentityFlow(ctx context.Context) error {
	fn := f.identity[f.identityCalls]
	f.identityCalls++
	return fn(ctx)
}

func (f *fakeUI) Dashboard(_ context.Context, ws *service.Workspace) (bool, error) {
	f.backends = append(f.backends, ws.Store.BackendName())
	fn := f.dashboard[f.dashboardCalls]
	f.dashboardCalls++
	return fn(ws)
}

func newTestServices(t *testing.T) *service.ClientServices {
	t.Helper()

	db, err := store.NewConnectSQLite(context.Background(), config.ClientDB{DSN: ":memory:", Driver: config.DriverModernc}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	kv := store.NewKeyValueStore(db, logger.Nop())
	t.Cleanup(func() { _ = kv.Close() })

	services, err := service.NewClientServices(&store.ClientStorages{KV: kv}, nil, config.ClientApp{
		SessionSignKey:  "test-sign-key",
		SessionIssuer:   "studytrack-test",
		SessionDuration: 30 * 24 * time.Hour,
		Mode:            config.ModeLocal,
	}, logger.Nop())
	require.NoError(t, err)
	return services
}

func newTestApp(t *testing.T, services *service.ClientServices, ui UI) *App {
	t.Helper()
	app, err := NewApp(services, ui, config.ClientWorkers{SyncInterval: time.Hour}, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(newTestServices(t), nil, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_QuitFromIdentityFlow(t *testing.T) {
	ui := &fakeUI{identity: []func(context.Context) error{
		func(context.Context) error { return tui.ErrUserQuit },
	}}

	err := newTestApp(t, newTestServices(t), ui).run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, ui.identityCalls)
	assert.Zero(t, ui.dashboardCalls)
}

func TestApp_IdentityFlowError(t *testing.T) {
	boom := errors.New("terminal is gone")
	ui := &fakeUI{identity: []func(context.Context) error{
		func(context.Context) error { return boom },
	}}

	err := newTestApp(t, newTestServices(t), ui).run(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestApp_GuestSession(t *testing.T) {
	ui := &fakeUI{
		identity: []func(context.Context) error{
			func(context.Context) error { return nil },
		},
		dashboard: []func(*service.Workspace) (bool, error){
			func(*service.Workspace) (bool, error) { return false, nil },
		},
	}

	err := newTestApp(t, newTestServices(t), ui).run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{""}, ui.backends)
}

func TestApp_LogoutStartsOver(t *testing.T) {
	services := newTestServices(t)
	ui := &fakeUI{
		identity: []func(context.Context) error{
			func(ctx context.Context) error {
				_, err := services.Directory.CreateAccount(ctx, "alice", "🎓")
				return err
			},
			func(context.Context) error { return tui.ErrUserQuit },
		},
		dashboard: []func(*service.Workspace) (bool, error){
			func(ws *service.Workspace) (bool, error) {
				assert.Equal(t, "alice", ws.Store.User().Name)
				return true, nil
			},
		},
	}

	err := newTestApp(t, services, ui).run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, ui.identityCalls)
	assert.Equal(t, []string{service.BackendDirectory}, ui.backends)

	_, ok := services.Directory.GetCurrentAccount(context.Background())
	assert.False(t, ok)
}

func TestApp_ActiveIdentitySkipsFlow(t *testing.T) {
	services := newTestServices(t)
	_, err := services.Directory.CreateAccount(context.Background(), "bob", "🎓")
	require.NoError(t, err)

	ui := &fakeUI{dashboard: []func(*service.Workspace) (bool, error){
		func(*service.Workspace) (bool, error) { return false, nil },
	}}

	require.NoError(t, newTestApp(t, services, ui).run(context.Background()))
	assert.Zero(t, ui.identityCalls)
	assert.Equal(t, 1, ui.dashboardCalls)
}

func TestApp_DashboardError(t *testing.T) {
	services := newTestServices(t)
	_, err := services.Directory.CreateAccount(context.Background(), "bob", "🎓")
	require.NoError(t, err)

	boom := errors.New("render failed")
	ui := &fakeUI{dashboard: []func(*service.Workspace) (bool, error){
		func(*service.Workspace) (bool, error) { return false, boom },
	}}

	err = newTestApp(t, services, ui).run(context.Background())
	assert.ErrorIs(t, err, boom)
}
