package service

import (
	"context"

	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

// XP rewards and the ledger types guarding them.
const (
	XPTypeGeneral   = "general"
	XPTypeCheckIn   = "daily_checkin"
	XPTypeClaim     = "daily_claim"
	xpTypeTimetable = "timetable_"
	xpTypeChallenge = "challenge_"

	CheckInXP        = 10
	DailyClaimXP     = 25
	TimetableBonusXP = 50

	// TimetableGoalMinutes is the per-subject daily study time that earns
	// the timetable bonus.
	TimetableGoalMinutes = 60
)

// Activity types counted in the daily activity ledger.
const (
	ActivityStudySession = "study_session"
	ActivityQuiz         = "quiz"
	ActivityCheckIn      = "checkin"
	ActivityXPClaim      = "xp_claim"
	ActivityCardReview   = "card_review"
)

// AddXP credits amount to the user at most once per calendar day and
// xpType. A repeated call on the same day reports AlreadyAwarded and leaves
// the total unchanged. XP is a running total; the level is not derived
// from it.
func (s *Store) AddXP(ctx context.Context, amount int, xpType string) models.XPResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addXP(ctx, amount, xpType)
}

func (s *Store) addXP(ctx context.Context, amount int, xpType string) models.XPResult {
	if xpType == "" {
		xpType = XPTypeGeneral
	}
	today := s.today()

	if award, ok := s.state.DailyXPAwards[xpType]; ok && award.Date == today {
		return models.XPResult{AlreadyAwarded: true, TotalXP: s.state.User.XP}
	}
	if amount <= 0 {
		return models.XPResult{TotalXP: s.state.User.XP}
	}

	s.state.User.XP += amount
	s.state.DailyXPAwards[xpType] = models.XPAward{Date: today, Amount: amount}
	s.persist(ctx, models.KeyUser, models.KeyDailyXPAwards)

	total := s.state.User.XP
	s.logger.Debug().Str("func", "Store.AddXP").Str("xp_type", xpType).Int("amount", amount).Int("total", total).Msg("xp awarded")

	s.pushLeaderboard("Store.AddXP", func(l Leaderboard) error {
		return l.UpdateXP(ctx, s.userID, total)
	})
	s.checkBadgeProgress(ctx)
	s.checkAchievements(ctx)

	return models.XPResult{Awarded: true, Amount: amount, TotalXP: total}
}

// CheckStreak compares the last login date with today: a one day gap
// extends the streak, a longer gap resets it to zero and the same day is a
// no-op without a save. It returns the resulting streak.
func (s *Store) CheckStreak(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkStreak(ctx)
}

func (s *Store) checkStreak(ctx context.Context) int {
	today := s.today()
	user := &s.state.User

	days, ok := utils.DaysBetween(user.LastLogin, today)
	switch {
	case ok && days <= 0:
		return user.Streak
	case ok && days == 1:
		user.Streak++
	case ok:
		user.Streak = 0
	case user.LastLogin != "":
		user.Streak = 0
	}
	user.LastLogin = today
	s.persist(ctx, models.KeyUser)

	streak := user.Streak
	s.pushLeaderboard("Store.CheckStreak", func(l Leaderboard) error {
		return l.UpdateStreak(ctx, s.userID, streak)
	})
	s.checkBadgeProgress(ctx)
	s.checkAchievements(ctx)
	return streak
}

// UpdateTimetableStudyProgress adds minutes to today's progress of
// subjectID. Reaching [TimetableGoalMinutes] awards [TimetableBonusXP] once
// per subject and day.
func (s *Store) UpdateTimetableStudyProgress(ctx context.Context, subjectID string, minutes int) models.XPResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTimetableStudyProgress(ctx, subjectID, minutes)
}

func (s *Store) updateTimetableStudyProgress(ctx context.Context, subjectID string, minutes int) models.XPResult {
	today := s.today()

	progress := s.state.TimetableStudyProgress[today]
	if progress == nil {
		progress = map[string]int{}
		s.state.TimetableStudyProgress[today] = progress
	}
	progress[subjectID] += minutes
	s.persist(ctx, models.KeyTimetableStudyProgress)

	rewards := s.state.TimetableStudyRewards[today]
	if progress[subjectID] < TimetableGoalMinutes || rewards[subjectID] {
		return models.XPResult{TotalXP: s.state.User.XP}
	}

	if rewards == nil {
		rewards = map[string]bool{}
		s.state.TimetableStudyRewards[today] = rewards
	}
	rewards[subjectID] = true
	s.persist(ctx, models.KeyTimetableStudyRewards)

	return s.addXP(ctx, TimetableBonusXP, xpTypeTimetable+subjectID)
}

// RecordActivity counts one activity of the given type for today.
func (s *Store) RecordActivity(ctx context.Context, activity string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordActivity(ctx, activity)
}

func (s *Store) recordActivity(ctx context.Context, activity string) int {
	today := s.today()
	counts := s.state.DailyActivities[today]
	if counts == nil {
		counts = map[string]int{}
		s.state.DailyActivities[today] = counts
	}
	counts[activity]++
	s.persist(ctx, models.KeyDailyActivities)
	return counts[activity]
}

// ActivityCount returns how often activity was recorded on date.
func (s *Store) ActivityCount(date, activity string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DailyActivities[date][activity]
}

// CompleteDailyCheckIn awards [CheckInXP] once per day.
func (s *Store) CompleteDailyCheckIn(ctx context.Context) models.ClaimResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	if s.state.LastCheckIn == today {
		return models.ClaimResult{AlreadyClaimed: true}
	}
	s.state.LastCheckIn = today
	s.persist(ctx, models.KeyLastCheckIn)
	s.recordActivity(ctx, ActivityCheckIn)

	res := s.addXP(ctx, CheckInXP, XPTypeCheckIn)
	return models.ClaimResult{Claimed: true, XP: res.Amount}
}

// ClaimDailyXP awards [DailyClaimXP] once per day, independently of the
// check-in.
func (s *Store) ClaimDailyXP(ctx context.Context) models.ClaimResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	if s.state.LastXPClaim == today {
		return models.ClaimResult{AlreadyClaimed: true}
	}
	s.state.LastXPClaim = today
	s.persist(ctx, models.KeyLastXPClaim)
	s.recordActivity(ctx, ActivityXPClaim)

	res := s.addXP(ctx, DailyClaimXP, XPTypeClaim)
	return models.ClaimResult{Claimed: true, XP: res.Amount}
}

func (s *Store) CanCheckIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LastCheckIn != s.today()
}

func (s *Store) CanClaimDailyXP() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LastXPClaim != s.today()
}
