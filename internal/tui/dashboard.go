package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/studytrack/internal/service"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type dashboardView int

const (
	viewOverview dashboardView = iota
	viewFocus
	viewLeaderboard
	viewGroups
)

var viewTitles = []string{"Overview", "Focus", "Leaderboard", "Groups"}

var leaderboardCategories = []models.LeaderboardCategory{
	models.CategoryTotalXP,
	models.CategoryStudyTime,
	models.CategoryStudyStreak,
	models.CategoryStudySessions,
	models.CategoryFlashcardsCompleted,
}

var timeFilters = []models.TimeFilter{
	models.TimeFilterAll,
	models.TimeFilterToday,
	models.TimeFilterWeek,
	models.TimeFilterMonth,
}

const statusTTL = 3 * time.Second

// dashboardModel is the main screen shown once an identity is active.
type dashboardModel struct {
	ctx    context.Context
	ws     *service.Workspace
	groups service.GroupService
	copy   func(string) error

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	view       dashboardView
	subjectIdx int // -1 is general study
	category   int
	filter     int
	entries    []models.LeaderboardEntry
	groupList  []models.StudyGroup
	groupIdx   int
	completing bool

	status   string
	overlay  string // error shown on top of the dashboard
	logout   bool
}

func newDashboardModel(ctx context.Context, ws *service.Workspace, groups service.GroupService, buildInfo models.AppBuildInfo) dashboardModel {
	return dashboardModel{
		ctx:        ctx,
		ws:         ws,
		groups:     groups,
		copy:       clipboard.WriteAll,
		buildInfo:  buildInfo,
		subjectIdx: -1,
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.loadLeaderboard(), m.loadGroups())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		state := m.ws.Timer.State()
		if state.Active && state.Running && state.Remaining == 0 && !m.completing {
			m.completing = true
			return m, tea.Batch(tickCmd(), m.completeTimer())
		}
		return m, tickCmd()

	case actionDoneMsg:
		m.completing = false
		if msg.err != nil {
			m.overlay = humanizeError(msg.err)
			return m, nil
		}
		m.status = msg.status
		cmds := []tea.Cmd{clearStatusCmd()}
		if msg.reload {
			cmds = append(cmds, m.loadLeaderboard())
		}
		return m, tea.Batch(cmds...)

	case leaderboardLoadedMsg:
		if msg.err != nil {
			m.overlay = humanizeError(msg.err)
			return m, nil
		}
		m.entries = msg.entries
		return m, nil

	case groupsLoadedMsg:
		if msg.err != nil {
			m.overlay = humanizeError(msg.err)
			return m, nil
		}
		m.groupList = msg.groups
		m.groupIdx = min(m.groupIdx, max(len(m.groupList)-1, 0))
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != "" {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = ""
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.ws.Timer.Cancel()
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.tab):
		m.view = (m.view + 1) % dashboardView(len(viewTitles))
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.view = (m.view - 1 + dashboardView(len(viewTitles))) % dashboardView(len(viewTitles))
		return m, nil
	case key.Matches(msg, keys.refresh):
		return m, tea.Batch(m.loadLeaderboard(), m.loadGroups())
	case key.Matches(msg, keys.checkIn):
		return m, m.checkIn()
	case key.Matches(msg, keys.claim):
		return m, m.claimXP()
	case key.Matches(msg, keys.quiz):
		return m, m.recordQuiz()
	case key.Matches(msg, keys.timerStart):
		return m.startTimer()
	case key.Matches(msg, keys.timerPause):
		return m, m.togglePause()
	case key.Matches(msg, keys.timerFinish):
		if !m.ws.Timer.IsStudySessionActive() || m.completing {
			return m, nil
		}
		m.completing = true
		return m, m.completeTimer()
	case key.Matches(msg, keys.timerCancel):
		if m.ws.Timer.IsStudySessionActive() {
			m.ws.Timer.Cancel()
			m.status = "Focus session abandoned"
		}
		return m, nil
	case key.Matches(msg, keys.subject):
		if m.ws.Timer.IsStudySessionActive() {
			return m, nil
		}
		subjects := m.ws.Store.Subjects()
		m.subjectIdx++
		if m.subjectIdx >= len(subjects) {
			m.subjectIdx = -1
		}
		return m, nil
	case key.Matches(msg, keys.category):
		m.category = (m.category + 1) % len(leaderboardCategories)
		return m, m.loadLeaderboard()
	case key.Matches(msg, keys.categoryPrev):
		m.category = (m.category - 1 + len(leaderboardCategories)) % len(leaderboardCategories)
		return m, m.loadLeaderboard()
	case key.Matches(msg, keys.filter):
		m.filter = (m.filter + 1) % len(timeFilters)
		return m, m.loadLeaderboard()
	case key.Matches(msg, keys.up):
		if m.view == viewGroups && m.groupIdx > 0 {
			m.groupIdx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.view == viewGroups && m.groupIdx < len(m.groupList)-1 {
			m.groupIdx++
		}
		return m, nil
	case key.Matches(msg, keys.copyCode):
		return m.copyGroupCode()
	}

	return m, nil
}

func (m dashboardModel) selectedSubject() (models.Subject, bool) {
	subjects := m.ws.Store.Subjects()
	if m.subjectIdx < 0 || m.subjectIdx >= len(subjects) {
		return models.Subject{}, false
	}
	return subjects[m.subjectIdx], true
}

func (m dashboardModel) startTimer() (tea.Model, tea.Cmd) {
	subjectID := ""
	if subject, ok := m.selectedSubject(); ok {
		subjectID = subject.ID
	}
	if err := m.ws.Timer.Start(subjectID, m.ws.Store.Settings().PomodoroMinutes); err != nil {
		m.overlay = humanizeError(err)
		return m, nil
	}
	m.view = viewFocus
	m.status = "Focus session started"
	return m, nil
}

func (m dashboardModel) togglePause() tea.Cmd {
	ctx := m.ctx
	timer := m.ws.Timer
	state := timer.State()
	if !state.Active {
		return nil
	}
	if !state.Running {
		return func() tea.Msg {
			return actionDoneMsg{status: "Focus session resumed", err: timer.Resume()}
		}
	}
	return func() tea.Msg {
		session, err := timer.Pause(ctx)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		if session == nil {
			return actionDoneMsg{status: "Paused"}
		}
		return actionDoneMsg{status: fmt.Sprintf("Paused, logged %d min", session.Duration), reload: true}
	}
}

func (m dashboardModel) completeTimer() tea.Cmd {
	ctx := m.ctx
	timer := m.ws.Timer
	return func() tea.Msg {
		session, err := timer.Complete(ctx)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Session complete, logged %d min", session.Duration), reload: true}
	}
}

func (m dashboardModel) checkIn() tea.Cmd {
	ctx := m.ctx
	st := m.ws.Store
	return func() tea.Msg {
		res := st.CompleteDailyCheckIn(ctx)
		if res.AlreadyClaimed {
			return actionDoneMsg{status: "Already checked in today"}
		}
		return actionDoneMsg{status: fmt.Sprintf("Checked in, +%d XP", res.XP), reload: true}
	}
}

func (m dashboardModel) claimXP() tea.Cmd {
	ctx := m.ctx
	st := m.ws.Store
	return func() tea.Msg {
		res := st.ClaimDailyXP(ctx)
		if res.AlreadyClaimed {
			return actionDoneMsg{status: "Daily XP already claimed"}
		}
		return actionDoneMsg{status: fmt.Sprintf("Claimed +%d XP", res.XP), reload: true}
	}
}

func (m dashboardModel) recordQuiz() tea.Cmd {
	ctx := m.ctx
	st := m.ws.Store
	return func() tea.Msg {
		st.RecordQuizCompleted(ctx)
		return actionDoneMsg{status: "Quiz recorded", reload: true}
	}
}

func (m dashboardModel) loadLeaderboard() tea.Cmd {
	ctx := m.ctx
	lb := m.ws.Leaderboard
	category := leaderboardCategories[m.category]
	filter := timeFilters[m.filter]
	return func() tea.Msg {
		entries, err := lb.GetLeaderboard(ctx, category, filter, "")
		return leaderboardLoadedMsg{entries: entries, err: err}
	}
}

// groupsEnabled reports whether study groups are reachable: they live on
// the hosted backend only.
func (m dashboardModel) groupsEnabled() bool {
	return m.groups != nil && m.ws.Store.BackendName() == service.BackendRemote
}

func (m dashboardModel) loadGroups() tea.Cmd {
	if !m.groupsEnabled() {
		return nil
	}
	ctx := m.ctx
	groups := m.groups
	userID := m.ws.Store.UserID()
	return func() tea.Msg {
		list, err := groups.UserGroups(ctx, userID)
		return groupsLoadedMsg{groups: list, err: err}
	}
}

func (m dashboardModel) copyGroupCode() (tea.Model, tea.Cmd) {
	if m.view != viewGroups || len(m.groupList) == 0 {
		return m, nil
	}
	code := m.groupList[m.groupIdx].Code
	if err := m.copy(code); err != nil {
		m.overlay = "Clipboard is not available: " + err.Error()
		return m, nil
	}
	m.status = "Join code " + code + " copied"
	return m, clearStatusCmd()
}

func (m dashboardModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}
	if m.overlay != "" {
		return appStyle.Render(renderOverlay("Error", m.overlay, "enter / esc: close"))
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.view {
	case viewOverview:
		b.WriteString(m.renderOverview())
	case viewFocus:
		b.WriteString(m.renderFocus())
	case viewLeaderboard:
		b.WriteString(m.renderLeaderboard())
	case viewGroups:
		b.WriteString(m.renderGroups())
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(okStyle.Render(m.status))
	}

	return renderPage("STUDYTRACK", b.String(), m.hotKeys())
}

func (m dashboardModel) renderTabs() string {
	tabs := make([]string, 0, len(viewTitles))
	for i, title := range viewTitles {
		if dashboardView(i) == m.view {
			tabs = append(tabs, activeTabStyle.Render(title))
			continue
		}
		tabs = append(tabs, tabStyle.Render(title))
	}
	return strings.Join(tabs, " │ ")
}

func (m dashboardModel) renderOverview() string {
	st := m.ws.Store
	user := st.User()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s │ level %d │ %d XP │ 🔥 %d day streak\n", user.Avatar, user.Name, user.Level, user.XP, user.Streak)
	fmt.Fprintf(&b, "Studied: %s total │ %s today\n", formatMinutes(st.TotalStudyMinutes()), formatMinutes(st.StudyMinutesForDay(utils.FormatDate(time.Now()))))

	checkIn := "available (c)"
	if !st.CanCheckIn() {
		checkIn = "done"
	}
	claim := "available (x)"
	if !st.CanClaimDailyXP() {
		claim = "claimed"
	}
	fmt.Fprintf(&b, "Check-in: %s │ Daily XP: %s\n", checkIn, claim)

	b.WriteString("\nDaily challenges\n")
	for _, c := range st.DailyChallenges() {
		mark := " "
		if c.Completed {
			mark = "✓"
		}
		fmt.Fprintf(&b, "%s %-32s %s %d/%d  +%d XP\n", mark, fitText(c.Text, 32), progressBar(c.Current, c.Target, 12), c.Current, c.Target, c.XP)
	}

	if badges := st.Badges(); len(badges) > 0 {
		b.WriteString("\nBadges: ")
		icons := make([]string, 0, len(badges))
		for _, badge := range badges {
			icons = append(icons, badge.Icon+" "+badge.Name)
		}
		b.WriteString(strings.Join(icons, ", "))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m dashboardModel) renderFocus() string {
	state := m.ws.Timer.State()

	subject := "General study"
	if s, ok := m.selectedSubject(); ok {
		subject = s.Name
	}
	if state.Active {
		subject = "General study"
		if s, ok := m.ws.Store.Subject(state.SubjectID); ok {
			subject = s.Name
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n\n", subject)
	if !state.Active {
		fmt.Fprintf(&b, "%s  press s to focus for %d min", formatClock(time.Duration(m.ws.Store.Settings().PomodoroMinutes)*time.Minute), m.ws.Store.Settings().PomodoroMinutes)
		return b.String()
	}

	label := "focusing"
	if !state.Running {
		label = "paused"
	}
	done := state.Planned - state.Remaining
	fmt.Fprintf(&b, "%s  %s\n", formatClock(state.Remaining), label)
	b.WriteString(progressBar(int(done.Seconds()), int(state.Planned.Seconds()), 40))
	return b.String()
}

func (m dashboardModel) renderLeaderboard() string {
	category := leaderboardCategories[m.category]

	var b strings.Builder
	fmt.Fprintf(&b, "Ranking by %s │ %s\n\n", category, timeFilters[m.filter])
	if len(m.entries) == 0 {
		b.WriteString("Nobody has studied yet")
		return b.String()
	}

	self := m.ws.Store.UserID()
	for i, e := range m.entries {
		line := fmt.Sprintf("%3d. %s %-20s %8d", i+1, e.Avatar, fitText(e.Username, 20), e.Stat(category))
		if e.UserID == self {
			line = ownRowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m dashboardModel) renderGroups() string {
	if !m.groupsEnabled() {
		return "Study groups need a hosted account"
	}
	if len(m.groupList) == 0 {
		return "You are not in any study group"
	}

	var b strings.Builder
	for i, g := range m.groupList {
		cursor := " "
		if i == m.groupIdx {
			cursor = ">"
		}
		fmt.Fprintf(&b, "%s %-24s code %s\n", cursor, fitText(g.Name, 24), g.Code)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m dashboardModel) hotKeys() string {
	common := "tab: view │ r: refresh │ L: logout │ v: version │ q: quit"
	switch m.view {
	case viewOverview:
		return "c: check in │ x: claim XP │ z: quiz done │ " + common
	case viewFocus:
		return "s: start │ p: pause/resume │ f: finish │ a: abandon │ b: subject │ " + common
	case viewLeaderboard:
		return "[ ]: category │ t: period │ " + common
	case viewGroups:
		return "↑/↓: select │ y: copy code │ " + common
	}
	return common
}
