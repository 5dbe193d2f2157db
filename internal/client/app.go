package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/service"
	"github.com/notekeeper-app/notekeeper/internal/store"
	"github.com/notekeeper-app/notekeeper/internal/tui"
)

// App is the client application: it restores or establishes a session and
// keeps the main loop running until the user quits.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are not initialized")
	}
	if ui == nil {
		return nil, errors.New("terminal ui is not initialized")
	}

	return &App{services: services, tui: ui, logger: log}, nil
}

// Run restores the cached session when possible, otherwise walks the user
// through the login flow, then enters the main loop. A logout from the main
// loop signs the user out and starts over.
func (a *App) Run() error {
	ctx := context.Background()

	_, err := a.services.SessionService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) && !errors.Is(err, service.ErrSessionExpired) {
			return fmt.Errorf("restore session: %w", err)
		}

		if _, err = a.tui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		if err = a.services.SessionService.SignOut(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("failed to clear cached session on logout")
		}
		return a.Run()
	}

	return nil
}
