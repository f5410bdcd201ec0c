// Package tui implements the terminal dashboard of studytrack on top of
// Bubble Tea: an identity picker shown while nobody is signed in, and the
// dashboard itself with the profile, daily challenges, the focus timer, the
// leaderboard and study groups.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/service"
	"github.com/MKhiriev/studytrack/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

const defaultAvatar = "🎓"

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// IdentityFlow lets the user pick a local profile, sign in, create an
// account or continue as a guest. It returns [ErrUserQuit] when the user
// leaves instead.
func (t *TUI) IdentityFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageProfiles: NewProfilesModel(ctx, t.services.Directory),
		pageLogin:    NewLoginModel(ctx, t.signIn),
		pageRegister: NewRegisterModel(ctx, t.signUp),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// Dashboard runs the dashboard over ws until the user quits or logs out.
func (t *TUI) Dashboard(ctx context.Context, ws *service.Workspace) (logout bool, err error) {
	model := newDashboardModel(ctx, ws, t.services.Groups, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) remote() bool {
	return t.services.Mode() == config.ModeRemote && t.services.Remote != nil
}

func (t *TUI) signIn(ctx context.Context, username, password string, remember bool) error {
	if t.remote() {
		_, err := t.services.Remote.SignIn(ctx, username, password)
		return err
	}
	_, err := t.services.Auth.Login(ctx, username, password, remember)
	return err
}

func (t *TUI) signUp(ctx context.Context, username, password string) error {
	if t.remote() {
		_, err := t.services.Remote.SignUp(ctx, username, password, defaultAvatar)
		return err
	}
	_, err := t.services.Auth.SignUp(ctx, username, password, defaultAvatar)
	return err
}
