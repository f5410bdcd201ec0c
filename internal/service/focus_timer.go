package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

// MinLoggedPause is the shortest focus interval a pause still logs.
const MinLoggedPause = 30 * time.Second

// TimerState is a snapshot of a [FocusTimer].
type TimerState struct {
	Active    bool
	Running   bool
	SubjectID string
	Planned   time.Duration
	Remaining time.Duration
}

// FocusTimer is a pomodoro timer over an injected clock. Time spent focused
// is logged as study sessions: on a pause after at least [MinLoggedPause],
// and always on completion. Each stretch of time is logged once.
type FocusTimer struct {
	sessions SessionLogger
	clock    utils.Clock

	mu        sync.Mutex
	active    bool
	running   bool
	subjectID string
	planned   time.Duration
	elapsed   time.Duration // focused time before startedAt
	logged    time.Duration // whole minutes already saved as sessions
	startedAt time.Time

	logger *logger.Logger
}

func NewFocusTimer(sessions SessionLogger, clock utils.Clock, log *logger.Logger) *FocusTimer {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &FocusTimer{sessions: sessions, clock: clock, logger: log}
}

// Start begins a focus interval of minutes on subjectID ("" for general
// study).
func (t *FocusTimer) Start(subjectID string, minutes int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active {
		return ErrTimerRunning
	}
	if minutes <= 0 {
		return ErrInvalidDuration
	}
	t.active = true
	t.running = true
	t.subjectID = subjectID
	t.planned = time.Duration(minutes) * time.Minute
	t.elapsed = 0
	t.logged = 0
	t.startedAt = t.clock.Now()
	return nil
}

// Pause stops the clock. The unlogged focus time is logged when it reaches
// [MinLoggedPause]; the returned session is nil otherwise.
func (t *FocusTimer) Pause(ctx context.Context) (*models.Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return nil, ErrTimerNotRunning
	}
	t.elapsed = t.focused()
	t.running = false

	if t.elapsed-t.logged < MinLoggedPause {
		return nil, nil
	}
	session, err := t.log(ctx, t.elapsed-t.logged)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (t *FocusTimer) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return ErrTimerNotRunning
	}
	if t.running {
		return ErrTimerRunning
	}
	t.running = true
	t.startedAt = t.clock.Now()
	return nil
}

// Complete ends the interval and logs the planned minutes not logged yet.
func (t *FocusTimer) Complete(ctx context.Context) (models.Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return models.Session{}, ErrTimerNotRunning
	}
	rest := max(t.planned-t.logged, time.Minute)
	session, err := t.log(ctx, rest)
	t.reset()
	return session, err
}

// Cancel ends the interval without logging anything.
func (t *FocusTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reset()
}

// Remaining returns the planned time left, never negative.
func (t *FocusTimer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining()
}

func (t *FocusTimer) IsStudySessionActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

func (t *FocusTimer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TimerState{
		Active:    t.active,
		Running:   t.running,
		SubjectID: t.subjectID,
		Planned:   t.planned,
		Remaining: t.remaining(),
	}
}

func (t *FocusTimer) focused() time.Duration {
	if !t.running {
		return t.elapsed
	}
	return t.elapsed + t.clock.Now().Sub(t.startedAt)
}

func (t *FocusTimer) remaining() time.Duration {
	if !t.active {
		return 0
	}
	return max(t.planned-t.focused(), 0)
}

func (t *FocusTimer) log(ctx context.Context, d time.Duration) (models.Session, error) {
	session, err := t.sessions.LogSession(ctx, d.Minutes(), t.subjectID)
	if err != nil {
		t.logger.Err(err).Str("func", "FocusTimer.log").Dur("focused", d).Msg("failed to log focus session")
		return models.Session{}, err
	}
	t.logged += time.Duration(session.Duration) * time.Minute
	return session, nil
}

func (t *FocusTimer) reset() {
	t.active = false
	t.running = false
	t.subjectID = ""
	t.planned = 0
	t.elapsed = 0
	t.logged = 0
}
