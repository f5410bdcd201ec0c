package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/service"
	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
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

func newTestDashboard(t *testing.T) (dashboardModel, *service.Workspace) {
	t.Helper()
	services := newTestServices(t)
	ws := services.Open(context.Background())
	return newDashboardModel(context.Background(), ws, services.Groups, models.NewAppBuildInfo("1.0.0", "2026-03-10", "abc")), ws
}

func TestViewHelpers(t *testing.T) {
	t.Run("progress bar", func(t *testing.T) {
		assert.Equal(t, "[██░░]", progressBar(1, 2, 4))
		assert.Equal(t, "[████]", progressBar(9, 2, 4))
		assert.Equal(t, "[░░░░]", progressBar(-3, 2, 4))
		assert.Equal(t, "[████]", progressBar(0, 0, 4))
		assert.Equal(t, "", progressBar(1, 2, 0))
	})

	t.Run("clock", func(t *testing.T) {
		assert.Equal(t, "25:00", formatClock(25*time.Minute))
		assert.Equal(t, "00:09", formatClock(9*time.Second))
		assert.Equal(t, "1:02:03", formatClock(time.Hour+2*time.Minute+3*time.Second))
		assert.Equal(t, "00:00", formatClock(-time.Second))
	})

	t.Run("minutes", func(t *testing.T) {
		assert.Equal(t, "45m", formatMinutes(45))
		assert.Equal(t, "2h 05m", formatMinutes(125))
	})

	t.Run("fit text", func(t *testing.T) {
		assert.Equal(t, "short", fitText("short", 10))
		assert.Equal(t, "Mathem...", fitText("Mathematics", 9))
		assert.Equal(t, "Ма", fitText("Математика", 2))
	})
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "No network or the server is unavailable", humanizeError(errors.New("dial tcp 127.0.0.1:8090: connect: connection refused")))
	assert.Equal(t, service.MessageFor(service.ErrInvalidCredentials), humanizeError(fmt.Errorf("login: %w", service.ErrInvalidCredentials)))
}

func TestRootModel_Navigation(t *testing.T) {
	pages := map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: NewLoginModel(context.Background(), func(context.Context, string, string, bool) error { return nil }),
	}
	root := NewRootModel(pages, pageMenu, models.NewAppBuildInfo("1.0.0", "", ""))

	updated, _ := root.Update(runes("v"))
	root = updated.(RootModel)
	assert.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "Version     │ 1.0.0")
	assert.Contains(t, root.View(), "Commit      │ N/A")

	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	root = updated.(RootModel)
	assert.False(t, root.showBuildInfo)

	// "Sign in" is the third item.
	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyDown})
	root = updated.(RootModel)
	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyDown})
	root = updated.(RootModel)
	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageLogin, nav.Page)

	updated, _ = root.Update(nav)
	root = updated.(RootModel)
	assert.IsType(t, &LoginModel{}, root.current)
	assert.Contains(t, root.View(), "SIGN IN")

	updated, cmd = root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	root = updated.(RootModel)
	assert.True(t, root.quitByUser)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_GuestQuitsFlow(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel()}, pageMenu, models.AppBuildInfo{})

	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	result, ok := cmd().(IdentityResult)
	require.True(t, ok)
	assert.NoError(t, result.Err)

	updated, cmd := root.Update(result)
	assert.False(t, updated.(RootModel).quitByUser)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_ForwardsFailedIdentity(t *testing.T) {
	login := NewLoginModel(context.Background(), nil)
	root := NewRootModel(map[string]tea.Model{pageLogin: login}, pageLogin, models.AppBuildInfo{})

	_, cmd := root.Update(IdentityResult{Err: service.ErrInvalidCredentials})
	assert.Nil(t, cmd)
	assert.Equal(t, service.MessageFor(service.ErrInvalidCredentials), login.errMsg)
}

func TestLoginModel(t *testing.T) {
	var gotUser, gotPass string
	var gotRemember bool
	m := NewLoginModel(context.Background(), func(_ context.Context, username, password string, remember bool) error {
		gotUser, gotPass, gotRemember = username, password, remember
		return nil
	})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Username and password are required", m.errMsg)

	m.inputs[0].SetValue("  alice ")
	m.inputs[1].SetValue("secret")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, m.remember)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Empty(t, m.errMsg)

	// A second enter while submitting is ignored.
	_, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, again)

	result, ok := cmd().(IdentityResult)
	require.True(t, ok)
	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, "alice", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.True(t, gotRemember)
}

func TestLoginModel_FocusCycles(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu}, cmd())
}

func TestRegisterModel(t *testing.T) {
	called := false
	m := NewRegisterModel(context.Background(), func(context.Context, string, string) error {
		called = true
		return service.ErrUsernameTaken
	})

	m.inputs[0].SetValue("alice")
	m.inputs[1].SetValue("secret")
	m.inputs[2].SetValue("secreT")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Passwords do not match", m.errMsg)

	m.inputs[2].SetValue("secret")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.True(t, called)

	m.Update(msg)
	assert.False(t, m.submitting)
	assert.Equal(t, service.MessageFor(service.ErrUsernameTaken), m.errMsg)
}

func TestProfilesModel(t *testing.T) {
	ctx := context.Background()
	services := newTestServices(t)
	m := NewProfilesModel(ctx, services.Directory)

	m.Update(m.Init()())
	assert.Empty(t, m.profiles)
	assert.Contains(t, m.View(), "No local profiles yet")

	m.Update(runes("n"))
	require.True(t, m.creating)
	m.input.SetValue("Alice")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	result := cmd().(IdentityResult)
	require.NoError(t, result.Err)

	current, ok := services.Directory.GetCurrentAccount(ctx)
	require.True(t, ok)
	assert.Equal(t, "Alice", current.Username)

	require.NoError(t, services.Directory.Logout(ctx))
	m.Update(m.Init()())
	require.Len(t, m.profiles, 1)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	result = cmd().(IdentityResult)
	require.NoError(t, result.Err)
	assert.Equal(t, "Alice", result.Username)

	_, ok = services.Directory.GetCurrentAccount(ctx)
	assert.True(t, ok)
}

func TestDashboard_DailyActions(t *testing.T) {
	m, ws := newTestDashboard(t)
	xp := ws.Store.User().XP

	_, cmd := m.Update(runes("c"))
	require.NotNil(t, cmd)
	done := cmd().(actionDoneMsg)
	require.NoError(t, done.err)
	assert.Equal(t, fmt.Sprintf("Checked in, +%d XP", service.CheckInXP), done.status)
	assert.True(t, done.reload)
	assert.Equal(t, xp+service.CheckInXP, ws.Store.User().XP)

	_, cmd = m.Update(runes("c"))
	assert.Equal(t, "Already checked in today", cmd().(actionDoneMsg).status)

	_, cmd = m.Update(runes("x"))
	assert.Equal(t, fmt.Sprintf("Claimed +%d XP", service.DailyClaimXP), cmd().(actionDoneMsg).status)

	updated, _ := m.Update(done)
	m = updated.(dashboardModel)
	assert.Equal(t, done.status, m.status)

	updated, _ = m.Update(clearStatusMsg{})
	assert.Empty(t, updated.(dashboardModel).status)
}

func TestDashboard_FocusTimer(t *testing.T) {
	m, ws := newTestDashboard(t)

	updated, _ := m.Update(runes("s"))
	m = updated.(dashboardModel)
	assert.Equal(t, viewFocus, m.view)
	assert.True(t, ws.Timer.IsStudySessionActive())
	assert.Contains(t, m.View(), "focusing")

	updated, _ = m.Update(runes("s"))
	m = updated.(dashboardModel)
	require.NotEmpty(t, m.overlay)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(dashboardModel)
	assert.Empty(t, m.overlay)

	updated, cmd := m.Update(runes("f"))
	m = updated.(dashboardModel)
	assert.True(t, m.completing)
	done := cmd().(actionDoneMsg)
	require.NoError(t, done.err)
	assert.Equal(t, "Session complete, logged 25 min", done.status)
	assert.Equal(t, 25, ws.Store.TotalStudyMinutes())
	assert.False(t, ws.Timer.IsStudySessionActive())

	updated, _ = m.Update(done)
	assert.False(t, updated.(dashboardModel).completing)
}

func TestDashboard_AbandonLogsNothing(t *testing.T) {
	m, ws := newTestDashboard(t)

	updated, _ := m.Update(runes("s"))
	updated, _ = updated.(dashboardModel).Update(runes("a"))
	m = updated.(dashboardModel)

	assert.False(t, ws.Timer.IsStudySessionActive())
	assert.Equal(t, "Focus session abandoned", m.status)
	assert.Zero(t, ws.Store.TotalStudyMinutes())
}

func TestDashboard_LeaderboardAndViews(t *testing.T) {
	m, ws := newTestDashboard(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated, _ = updated.(dashboardModel).Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(dashboardModel)
	assert.Equal(t, viewLeaderboard, m.view)

	updated, cmd := m.Update(runes("]"))
	m = updated.(dashboardModel)
	assert.Equal(t, models.CategoryStudyTime, leaderboardCategories[m.category])

	loaded := cmd().(leaderboardLoadedMsg)
	require.NoError(t, loaded.err)
	updated, _ = m.Update(loaded)
	m = updated.(dashboardModel)
	require.NotEmpty(t, m.entries)
	assert.Equal(t, ws.Store.UserID(), m.entries[0].UserID)
	assert.Contains(t, m.View(), "Ranking by studyTime")

	updated, _ = m.Update(runes("["))
	assert.Equal(t, models.CategoryTotalXP, leaderboardCategories[updated.(dashboardModel).category])

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, viewFocus, updated.(dashboardModel).view)
}

func TestDashboard_GroupsNeedHostedAccount(t *testing.T) {
	m, _ := newTestDashboard(t)
	m.view = viewGroups

	assert.Nil(t, m.loadGroups())
	assert.Contains(t, m.View(), "Study groups need a hosted account")
}

func TestDashboard_CopyGroupCode(t *testing.T) {
	m, _ := newTestDashboard(t)
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}
	m.view = viewGroups
	m.groupList = []models.StudyGroup{{Name: "Maths", Code: "ABC123"}, {Name: "Physics", Code: "XYZ789"}}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated, _ = updated.(dashboardModel).Update(runes("y"))
	m = updated.(dashboardModel)
	assert.Equal(t, "XYZ789", copied)
	assert.Equal(t, "Join code XYZ789 copied", m.status)

	m.copy = func(string) error { return errors.New("no clipboard utility") }
	updated, _ = m.Update(runes("y"))
	assert.Contains(t, updated.(dashboardModel).overlay, "no clipboard utility")
}

func TestDashboard_LogoutAndQuit(t *testing.T) {
	m, ws := newTestDashboard(t)
	require.NoError(t, ws.Timer.Start("", 25))

	updated, cmd := m.Update(runes("L"))
	assert.True(t, updated.(dashboardModel).logout)
	assert.False(t, ws.Timer.IsStudySessionActive())
	assert.IsType(t, tea.QuitMsg{}, cmd())

	updated, cmd = m.Update(runes("q"))
	assert.False(t, updated.(dashboardModel).logout)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTUI_NewRequiresServices(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)

	ui, err := New(newTestServices(t), models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.False(t, ui.remote())
}
