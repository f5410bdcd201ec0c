package tui

import (
	"time"

	"github.com/MKhiriev/studytrack/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the identity flow to Page. Payload, when set, is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// IdentityResult ends an identity flow step. A nil Err makes the root model
// quit so the dashboard can open.
type IdentityResult struct {
	Username string
	Err      error
}

type profilesLoadedMsg struct {
	profiles []models.UserSummary
}

type tickMsg time.Time

// actionDoneMsg reports a finished dashboard action. reload refreshes the
// leaderboard.
type actionDoneMsg struct {
	status string
	err    error
	reload bool
}

type leaderboardLoadedMsg struct {
	entries []models.LeaderboardEntry
	err     error
}

type groupsLoadedMsg struct {
	groups []models.StudyGroup
	err    error
}

type clearStatusMsg struct{}
