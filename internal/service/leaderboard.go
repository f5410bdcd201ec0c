package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

// generalSubject collects study time without a known subject.
const generalSubject = "general"

var filterDays = map[models.TimeFilter]int{
	models.TimeFilterToday: 0,
	models.TimeFilterWeek:  7,
	models.TimeFilterMonth: 30,
}

func validCategory(category models.LeaderboardCategory) bool {
	var probe models.LeaderboardEntry
	return probe.SetStat(category, 0)
}

// rankEntries filters entries by last activity and subject, then sorts them
// descending by category. Ties keep their input order.
func rankEntries(entries []models.LeaderboardEntry, category models.LeaderboardCategory, filter models.TimeFilter, subject string, now time.Time) ([]models.LeaderboardEntry, error) {
	if !validCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidData, category)
	}
	maxDays, limited := filterDays[filter]
	if !limited && filter != models.TimeFilterAll && filter != "" {
		return nil, fmt.Errorf("%w: unknown time filter %q", ErrInvalidData, filter)
	}

	today := utils.FormatDate(now)
	out := make([]models.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if limited {
			days, ok := utils.DaysBetween(e.LastActive, today)
			if !ok || days > maxDays {
				continue
			}
		}
		if subject != "" && e.SubjectBreakdown[subject].StudyTime <= 0 {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stat(category) > out[j].Stat(category)
	})
	return out, nil
}

// applyStat updates one aggregate of entry and stamps the activity.
func applyStat(entry *models.LeaderboardEntry, category models.LeaderboardCategory, value int, increment bool, now time.Time) {
	if increment {
		value += entry.Stat(category)
	}
	entry.SetStat(category, value)
	entry.LastActive = utils.FormatDate(now)
	entry.LastUpdated = now
}

func addStudyTime(entry *models.LeaderboardEntry, minutes int, subject string, now time.Time) {
	if subject == "" {
		subject = generalSubject
	}
	if entry.SubjectBreakdown == nil {
		entry.SubjectBreakdown = map[string]models.SubjectStats{}
	}
	stats := entry.SubjectBreakdown[subject]
	stats.StudyTime += minutes
	entry.SubjectBreakdown[subject] = stats
	applyStat(entry, models.CategoryStudyTime, minutes, true, now)
}

func newEntry(userID, username, avatar string, now time.Time) models.LeaderboardEntry {
	return models.LeaderboardEntry{
		UserID:           userID,
		Username:         username,
		Avatar:           avatar,
		SubjectBreakdown: map[string]models.SubjectStats{},
		LastActive:       utils.FormatDate(now),
		LastUpdated:      now,
		JoinedAt:         now,
	}
}

// localLeaderboard keeps the entries of every account on the device in the
// shared namespace, in join order.
type localLeaderboard struct {
	kv    store.KeyValueStore
	clock utils.Clock

	mu sync.Mutex

	logger *logger.Logger
}

// NewLocalLeaderboard constructs the device-local [Leaderboard].
func NewLocalLeaderboard(kv store.KeyValueStore, clock utils.Clock, logger *logger.Logger) Leaderboard {
	return &localLeaderboard{kv: kv, clock: clock, logger: logger}
}

func (l *localLeaderboard) load(ctx context.Context) []models.LeaderboardEntry {
	entries, _ := store.Load[[]models.LeaderboardEntry](ctx, l.kv, slotLeaderboard, store.NamespaceShared)
	return entries
}

func (l *localLeaderboard) save(ctx context.Context, entries []models.LeaderboardEntry) error {
	if err := l.kv.Set(ctx, slotLeaderboard, entries, store.NamespaceShared); err != nil {
		l.logger.Err(err).Str("func", "localLeaderboard.save").Msg("failed to store leaderboard")
		return err
	}
	return nil
}

// update applies fn to the entry of userID, creating it when missing.
func (l *localLeaderboard) update(ctx context.Context, userID string, fn func(*models.LeaderboardEntry)) error {
	if userID == "" {
		return ErrInvalidData
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.load(ctx)
	idx := findEntry(entries, userID)
	if idx < 0 {
		entries = append(entries, newEntry(userID, "", "", l.clock.Now()))
		idx = len(entries) - 1
	}
	fn(&entries[idx])
	return l.save(ctx, entries)
}

func findEntry(entries []models.LeaderboardEntry, userID string) int {
	for i := range entries {
		if entries[i].UserID == userID {
			return i
		}
	}
	return -1
}

func (l *localLeaderboard) InitializeUser(ctx context.Context, userID, username, avatar string) error {
	return l.update(ctx, userID, func(e *models.LeaderboardEntry) {
		e.Username = username
		e.Avatar = avatar
	})
}

func (l *localLeaderboard) UpdateStat(ctx context.Context, userID string, category models.LeaderboardCategory, value int, increment bool) error {
	if !validCategory(category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidData, category)
	}
	now := l.clock.Now()
	return l.update(ctx, userID, func(e *models.LeaderboardEntry) {
		applyStat(e, category, value, increment, now)
	})
}

func (l *localLeaderboard) UpdateStudyTime(ctx context.Context, userID string, minutes int, subject string) error {
	now := l.clock.Now()
	return l.update(ctx, userID, func(e *models.LeaderboardEntry) {
		addStudyTime(e, minutes, subject, now)
	})
}

func (l *localLeaderboard) UpdateStudySessions(ctx context.Context, userID string) error {
	return l.UpdateStat(ctx, userID, models.CategoryStudySessions, 1, true)
}

func (l *localLeaderboard) UpdateFlashcards(ctx context.Context, userID string, count int) error {
	return l.UpdateStat(ctx, userID, models.CategoryFlashcardsCompleted, count, true)
}

func (l *localLeaderboard) UpdateXP(ctx context.Context, userID string, totalXP int) error {
	return l.UpdateStat(ctx, userID, models.CategoryTotalXP, totalXP, false)
}

func (l *localLeaderboard) UpdateStreak(ctx context.Context, userID string, streak int) error {
	return l.UpdateStat(ctx, userID, models.CategoryStudyStreak, streak, false)
}

func (l *localLeaderboard) GetLeaderboard(ctx context.Context, category models.LeaderboardCategory, filter models.TimeFilter, subject string) ([]models.LeaderboardEntry, error) {
	l.mu.Lock()
	entries := l.load(ctx)
	l.mu.Unlock()
	return rankEntries(entries, category, filter, subject, l.clock.Now())
}

func (l *localLeaderboard) SyncUser(ctx context.Context, entry models.LeaderboardEntry) error {
	if entry.UserID == "" {
		return ErrInvalidData
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.load(ctx)
	if idx := findEntry(entries, entry.UserID); idx >= 0 {
		entry.JoinedAt = entries[idx].JoinedAt
		entries[idx] = entry
	} else {
		if entry.JoinedAt.IsZero() {
			entry.JoinedAt = l.clock.Now()
		}
		entries = append(entries, entry)
	}
	return l.save(ctx, entries)
}
