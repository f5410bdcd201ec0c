package tui

import (
	"github.com/MKhiriev/studytrack/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Identity flow pages.
const (
	pageMenu     = "menu"
	pageProfiles = "profiles"
	pageLogin    = "login"
	pageRegister = "register"
)

// RootModel routes the identity flow between its pages. It owns ctrl+c,
// the about window of the menu page and [NavigateTo]; a successful
// [IdentityResult] ends the program so the dashboard can take over.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleGlobalKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case IdentityResult:
		if msg.Err == nil {
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// handleGlobalKey consumes keys that mean the same on every page. While
// the about window is open every other key is swallowed.
func (r *RootModel) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		r.quitByUser = true
		return true, tea.Quit
	}

	if r.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			r.showBuildInfo = false
		}
		return true, nil
	}

	if key.Matches(msg, keys.version) && r.onMenu() {
		r.showBuildInfo = true
		return true, nil
	}
	return false, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}
	r.current = next
	r.showBuildInfo = false

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, next.Init()
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("STUDYTRACK", "", "")
	default:
		return r.current.View()
	}
}

func (r RootModel) onMenu() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
