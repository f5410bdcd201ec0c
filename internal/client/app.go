package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/service"
	"github.com/MKhiriev/studytrack/internal/tui"
	"github.com/MKhiriev/studytrack/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       UI
	cfg      config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client services and ui are required")
	}
	return &App{services: services, ui: ui, cfg: cfg, logger: logger}, nil
}

// Run opens the active identity, asks for one when there is none and shows
// the dashboard. A logout ends every identity and starts over.
func (a *App) Run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	for {
		ws := a.services.Open(ctx)
		if ws.Store.BackendName() == "" {
			if err := a.ui.IdentityFlow(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return fmt.Errorf("identity flow: %w", err)
			}
			ws = a.services.Open(ctx)
		}

		logout, err := a.session(ctx, ws)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Str("func", "App.run").Msg("logout finished with errors")
		}
	}
}

func (a *App) session(ctx context.Context, ws *service.Workspace) (bool, error) {
	jobs := workers.NewWorkers(
		workers.NewLeaderboardSyncWorker(ws.Store, a.cfg.SyncInterval, a.logger),
	)
	jobs.Start(ctx)
	defer jobs.Stop()

	logout, err := a.ui.Dashboard(ctx, ws)
	if err != nil {
		return false, fmt.Errorf("dashboard: %w", err)
	}

	if err = ws.Store.SyncLeaderboard(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.session").Msg("final leaderboard sync failed")
	}
	return logout, nil
}
