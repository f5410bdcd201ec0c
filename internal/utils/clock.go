package utils

import (
	"sync"
	"time"
)

// DateLayout is the calendar-date format used for every per-day ledger key.
const DateLayout = "2006-01-02"

// Clock abstracts the wall clock so day-boundary rules can be tested.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a settable clock for tests and replays.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock returns a clock frozen at now.
func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

// Now returns the frozen instant.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Today formats the clock's current local date.
func Today(c Clock) string {
	return FormatDate(c.Now())
}

// FormatDate formats t as a calendar date in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of calendar days from date a to date b.
// Unparseable input yields ok == false.
func DaysBetween(a, b string) (days int, ok bool) {
	ta, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0, false
	}
	tb, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0, false
	}
	return int(tb.Sub(ta).Hours() / 24), true
}
