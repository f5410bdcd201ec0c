package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/studytrack/internal/adapter"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

// remoteLeaderboard keeps entries in the hosted leaderboard document.
// Updates read the current entry and merge the changed fields back, so two
// devices writing the same field race and the last write wins.
type remoteLeaderboard struct {
	backend adapter.Backend
	clock   utils.Clock
	logger  *logger.Logger
}

// NewRemoteLeaderboard constructs the hosted [Leaderboard].
func NewRemoteLeaderboard(backend adapter.Backend, clock utils.Clock, logger *logger.Logger) Leaderboard {
	return &remoteLeaderboard{backend: backend, clock: clock, logger: logger}
}

func (r *remoteLeaderboard) entries(ctx context.Context) ([]models.LeaderboardEntry, error) {
	res := r.backend.GetLeaderboard(ctx)
	if !res.Success {
		return nil, remoteFailure(res.Message)
	}
	return res.Data, nil
}

func (r *remoteLeaderboard) entry(ctx context.Context, userID string) (models.LeaderboardEntry, bool, error) {
	entries, err := r.entries(ctx)
	if err != nil {
		return models.LeaderboardEntry{}, false, err
	}
	if idx := findEntry(entries, userID); idx >= 0 {
		return entries[idx], true, nil
	}
	return models.LeaderboardEntry{}, false, nil
}

func (r *remoteLeaderboard) set(ctx context.Context, entry models.LeaderboardEntry) error {
	if res := r.backend.SetLeaderboardEntry(ctx, entry); !res.Success {
		r.logger.Warn().Str("func", "remoteLeaderboard.set").Str("account_id", entry.UserID).Str("message", res.Message).Msg("leaderboard write failed")
		return remoteFailure(res.Message)
	}
	return nil
}

func (r *remoteLeaderboard) merge(ctx context.Context, userID string, fields map[string]any) error {
	if res := r.backend.UpdateLeaderboardEntry(ctx, userID, fields); !res.Success {
		r.logger.Warn().Str("func", "remoteLeaderboard.merge").Str("account_id", userID).Str("message", res.Message).Msg("leaderboard update failed")
		return remoteFailure(res.Message)
	}
	return nil
}

func (r *remoteLeaderboard) InitializeUser(ctx context.Context, userID, username, avatar string) error {
	if userID == "" {
		return ErrInvalidData
	}
	_, found, err := r.entry(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		return r.set(ctx, newEntry(userID, username, avatar, r.clock.Now()))
	}
	return r.merge(ctx, userID, map[string]any{"username": username, "avatar": avatar})
}

// change reads the entry of userID, applies fn and writes back the fields
// fn reports. A missing entry is created wholesale.
func (r *remoteLeaderboard) change(ctx context.Context, userID string, fn func(*models.LeaderboardEntry) map[string]any) error {
	if userID == "" {
		return ErrInvalidData
	}
	entry, found, err := r.entry(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		entry = newEntry(userID, "", "", r.clock.Now())
		fn(&entry)
		return r.set(ctx, entry)
	}

	fields := fn(&entry)
	fields["lastActive"] = entry.LastActive
	fields["lastUpdated"] = entry.LastUpdated
	return r.merge(ctx, userID, fields)
}

func (r *remoteLeaderboard) UpdateStat(ctx context.Context, userID string, category models.LeaderboardCategory, value int, increment bool) error {
	if !validCategory(category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidData, category)
	}
	now := r.clock.Now()
	return r.change(ctx, userID, func(e *models.LeaderboardEntry) map[string]any {
		applyStat(e, category, value, increment, now)
		return map[string]any{string(category): e.Stat(category)}
	})
}

func (r *remoteLeaderboard) UpdateStudyTime(ctx context.Context, userID string, minutes int, subject string) error {
	if subject == "" {
		subject = generalSubject
	}
	now := r.clock.Now()
	return r.change(ctx, userID, func(e *models.LeaderboardEntry) map[string]any {
		addStudyTime(e, minutes, subject, now)
		return map[string]any{
			string(models.CategoryStudyTime): e.StudyTime,
			"subjectBreakdown":               map[string]any{subject: e.SubjectBreakdown[subject]},
		}
	})
}

func (r *remoteLeaderboard) UpdateStudySessions(ctx context.Context, userID string) error {
	return r.UpdateStat(ctx, userID, models.CategoryStudySessions, 1, true)
}

func (r *remoteLeaderboard) UpdateFlashcards(ctx context.Context, userID string, count int) error {
	return r.UpdateStat(ctx, userID, models.CategoryFlashcardsCompleted, count, true)
}

func (r *remoteLeaderboard) UpdateXP(ctx context.Context, userID string, totalXP int) error {
	return r.UpdateStat(ctx, userID, models.CategoryTotalXP, totalXP, false)
}

func (r *remoteLeaderboard) UpdateStreak(ctx context.Context, userID string, streak int) error {
	return r.UpdateStat(ctx, userID, models.CategoryStudyStreak, streak, false)
}

func (r *remoteLeaderboard) GetLeaderboard(ctx context.Context, category models.LeaderboardCategory, filter models.TimeFilter, subject string) ([]models.LeaderboardEntry, error) {
	entries, err := r.entries(ctx)
	if err != nil {
		return nil, err
	}
	return rankEntries(entries, category, filter, subject, r.clock.Now())
}

func (r *remoteLeaderboard) SyncUser(ctx context.Context, entry models.LeaderboardEntry) error {
	if entry.UserID == "" {
		return ErrInvalidData
	}
	existing, found, err := r.entry(ctx, entry.UserID)
	if err != nil {
		return err
	}
	if found {
		entry.JoinedAt = existing.JoinedAt
	} else if entry.JoinedAt.IsZero() {
		entry.JoinedAt = r.clock.Now()
	}
	return r.set(ctx, entry)
}
