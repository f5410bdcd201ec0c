package service

import (
	"context"
	"math"

	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

// LogSession records a completed study interval. duration is in minutes
// and is rounded to a whole minute before anything else happens. Sessions
// on a subject scheduled today count towards the timetable bonus.
func (s *Store) LogSession(ctx context.Context, duration float64, subjectID string) (models.Session, error) {
	minutes := int(math.Round(duration))
	if minutes < 1 {
		return models.Session{}, ErrInvalidDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := models.Session{Timestamp: s.clock.Now(), Duration: minutes, SubjectID: subjectID}
	s.state.Sessions = append(s.state.Sessions, session)
	s.persist(ctx, models.KeySessions)
	s.recordActivity(ctx, ActivityStudySession)

	if subjectID != "" && s.scheduledToday(subjectID) {
		s.updateTimetableStudyProgress(ctx, subjectID, minutes)
	}

	s.checkAchievements(ctx)
	s.checkBadgeProgress(ctx)
	s.updateChallengeProgress(ctx, models.ChallengeStudyTime, minutes)

	subject := s.subjectName(subjectID)
	s.pushLeaderboard("Store.LogSession", func(l Leaderboard) error {
		return l.UpdateStudyTime(ctx, s.userID, minutes, subject)
	})
	s.pushLeaderboard("Store.LogSession", func(l Leaderboard) error {
		return l.UpdateStudySessions(ctx, s.userID)
	})

	s.logger.Debug().Str("func", "Store.LogSession").Int("minutes", minutes).Str("subject_id", subjectID).Msg("session logged")
	return session, nil
}

func (s *Store) scheduledToday(subjectID string) bool {
	weekday := s.clock.Now().Weekday()
	for _, slot := range s.state.Timetable {
		if slot.Day == weekday && slot.SubjectID == subjectID {
			return true
		}
	}
	return false
}

// subjectName resolves the leaderboard bucket of a session. Unknown and
// deleted subjects fall into the general bucket.
func (s *Store) subjectName(subjectID string) string {
	if subjectID == "" {
		return generalSubject
	}
	for _, subject := range s.state.Subjects {
		if subject.ID == subjectID {
			return subject.Name
		}
	}
	return generalSubject
}

// TotalStudyMinutes sums every logged session.
func (s *Store) TotalStudyMinutes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalStudyMinutes()
}

func (s *Store) totalStudyMinutes() int {
	total := 0
	for _, session := range s.state.Sessions {
		total += session.Duration
	}
	return total
}

// StudyMinutesBySubject groups study time by subject name.
func (s *Store) StudyMinutesBySubject() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.studyMinutesBySubject()
}

func (s *Store) studyMinutesBySubject() map[string]int {
	out := map[string]int{}
	for _, session := range s.state.Sessions {
		out[s.subjectName(session.SubjectID)] += session.Duration
	}
	return out
}

// StudyMinutesForDay sums the sessions logged on date (YYYY-MM-DD, local
// time of the session).
func (s *Store) StudyMinutesForDay(date string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, session := range s.state.Sessions {
		if utils.FormatDate(session.Timestamp.In(s.clock.Now().Location())) == date {
			total += session.Duration
		}
	}
	return total
}

// SyncLeaderboard recomputes the user's entry from the raw collections and
// overwrites it wholesale. It corrects drift left by failed best-effort
// updates.
func (s *Store) SyncLeaderboard(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.leaderboard == nil {
		return nil
	}
	return s.leaderboard.SyncUser(ctx, s.leaderboardEntry())
}

func (s *Store) syncLeaderboard(ctx context.Context) {
	if s.leaderboard == nil {
		return
	}
	if err := s.leaderboard.SyncUser(ctx, s.leaderboardEntry()); err != nil {
		s.logger.Warn().Err(err).Str("func", "Store.syncLeaderboard").Str("account_id", s.userID).Msg("leaderboard resync failed")
	}
}

func (s *Store) leaderboardEntry() models.LeaderboardEntry {
	now := s.clock.Now()

	mastered := 0
	for _, deck := range s.state.Flashcards {
		for _, card := range deck.Cards {
			if card.Mastered {
				mastered++
			}
		}
	}

	breakdown := map[string]models.SubjectStats{}
	for name, minutes := range s.studyMinutesBySubject() {
		breakdown[name] = models.SubjectStats{StudyTime: minutes}
	}

	return models.LeaderboardEntry{
		UserID:              s.userID,
		Username:            s.state.User.Name,
		Avatar:              s.state.User.Avatar,
		StudyTime:           s.totalStudyMinutes(),
		StudyStreak:         s.state.User.Streak,
		StudySessions:       len(s.state.Sessions),
		FlashcardsCompleted: mastered,
		TotalXP:             s.state.User.XP,
		SubjectBreakdown:    breakdown,
		LastActive:          utils.FormatDate(now),
		LastUpdated:         now,
	}
}
