// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

// Package tui is the terminal front end of the colisops console. It
// runs in two phases: a login form until a session is established,
// then a tabbed board over the entity screens of the authenticated
// role. Admins get the fleet boards (agencies, vehicles, employees),
// operators get the shipment boards (couriers, deliveries, invoices).
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oelbekkali/colisops/internal/console"
	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/internal/service"
	"github.com/oelbekkali/colisops/internal/session"
	"github.com/oelbekkali/colisops/models"
)

// ErrUserQuit reports that the user closed the program from the login
// screen rather than authenticating.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	manager  *session.Manager
	services *service.Services
	logger   *logger.Logger
}

func New(manager *session.Manager, services *service.Services, log *logger.Logger) *TUI {
	return &TUI{manager: manager, services: services, logger: log}
}

// Run drives the login/board cycle until the user quits. A logout from
// the board returns to the login form; a quit from either phase ends
// the program.
func (t *TUI) Run(ctx context.Context) error {
	for {
		user, ok := t.manager.CurrentUser()
		if !ok {
			loggedIn, err := t.loginFlow(ctx)
			if err != nil {
				if errors.Is(err, ErrUserQuit) {
					return nil
				}
				return err
			}
			user = loggedIn
		}

		logout, err := t.boardLoop(ctx, user)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err := t.manager.Logout(ctx); err != nil {
			t.logger.Warn().Err(err).Msg("logout failed")
		}
	}
}

func (t *TUI) loginFlow(ctx context.Context) (models.User, error) {
	model := newLoginModel(ctx, t.manager)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}
	return result.user, nil
}

func (t *TUI) boardLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newShellModel(ctx, user, console.NewScreens(t.services), t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(shellModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
