package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/studytrack/internal/service"
	"github.com/MKhiriev/studytrack/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ProfilesModel lists the password-less accounts of this device and
// creates new ones.
type ProfilesModel struct {
	ctx       context.Context
	directory service.AccountDirectory

	profiles []models.UserSummary
	idx      int

	creating bool
	input    textinput.Model
	errMsg   string
}

func NewProfilesModel(ctx context.Context, directory service.AccountDirectory) *ProfilesModel {
	input := textinput.New()
	input.Placeholder = "username"
	input.CharLimit = 32
	input.Width = 32

	return &ProfilesModel{ctx: ctx, directory: directory, input: input}
}

func (m *ProfilesModel) Init() tea.Cmd {
	ctx := m.ctx
	directory := m.directory
	return func() tea.Msg {
		return profilesLoadedMsg{profiles: directory.GetAllUserProfiles(ctx)}
	}
}

func (m *ProfilesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		m.profiles = msg.profiles
		m.idx = min(m.idx, max(len(m.profiles)-1, 0))
		return m, nil
	case IdentityResult:
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
		}
		return m, nil
	case tea.KeyMsg:
		if m.creating {
			return m.updateCreate(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *ProfilesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.profiles)-1 {
			m.idx++
		}
	case msg.String() == "n":
		m.creating = true
		m.errMsg = ""
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, keys.enter):
		if len(m.profiles) == 0 {
			return m, nil
		}
		return m, m.cmdLogin(m.profiles[m.idx])
	}
	return m, nil
}

func (m *ProfilesModel) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.creating = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		username := strings.TrimSpace(m.input.Value())
		if username == "" {
			m.errMsg = "Username is required"
			return m, nil
		}
		m.creating = false
		m.input.Blur()
		return m, m.cmdCreate(username)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ProfilesModel) View() string {
	var b strings.Builder

	if len(m.profiles) == 0 {
		b.WriteString("No local profiles yet\n")
	}
	for i, p := range m.profiles {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %-20s │ lvl %d │ %5d XP │ %s\n",
			cursor, p.Avatar, fitText(p.Username, 20), p.Level, p.XP, formatMinutes(p.TotalStudyMinutes)))
	}

	if m.creating {
		b.WriteString("\nNew profile: [")
		b.WriteString(m.input.View())
		b.WriteString("]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "enter: open │ n: new profile │ esc: back"
	if m.creating {
		hotKeys = "enter: create │ esc: cancel"
	}
	return renderPage("LOCAL PROFILES", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ProfilesModel) cmdLogin(p models.UserSummary) tea.Cmd {
	ctx := m.ctx
	directory := m.directory
	return func() tea.Msg {
		_, err := directory.LoginAccount(ctx, p.UserID)
		return IdentityResult{Username: p.Username, Err: err}
	}
}

func (m *ProfilesModel) cmdCreate(username string) tea.Cmd {
	ctx := m.ctx
	directory := m.directory
	return func() tea.Msg {
		_, err := directory.CreateAccount(ctx, username, defaultAvatar)
		return IdentityResult{Username: username, Err: err}
	}
}
