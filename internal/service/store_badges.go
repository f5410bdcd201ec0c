package service

import (
	"context"

	"github.com/MKhiriev/studytrack/models"
)

// BadgeTemplates are the badges a user can unlock.
var BadgeTemplates = []models.BadgeTemplate{
	{ID: "first_steps", Name: "First Steps", Icon: "🎯", Description: "Complete your first study session", Type: models.BadgeMilestone, Target: 1},
	{ID: "dedicated", Name: "Dedicated Learner", Icon: "📚", Description: "Complete 10 study sessions", Type: models.BadgeMilestone, Target: 10},
	{ID: "hour_one", Name: "Hour One", Icon: "⏱️", Description: "Study for 1 hour in total", Type: models.BadgeHours, Target: 1},
	{ID: "scholar", Name: "Scholar", Icon: "🎓", Description: "Study for 10 hours in total", Type: models.BadgeHours, Target: 10},
	{ID: "marathon", Name: "Marathon", Icon: "🏃", Description: "Study for 50 hours in total", Type: models.BadgeHours, Target: 50},
	{ID: "rising_star", Name: "Rising Star", Icon: "⭐", Description: "Earn 500 XP", Type: models.BadgeXP, Target: 500},
	{ID: "xp_master", Name: "XP Master", Icon: "🌟", Description: "Earn 2000 XP", Type: models.BadgeXP, Target: 2000},
	{ID: "on_fire", Name: "On Fire", Icon: "🔥", Description: "Keep a 3 day streak", Type: models.BadgeStreak, Target: 3},
	{ID: "week_warrior", Name: "Week Warrior", Icon: "🗓️", Description: "Keep a 7 day streak", Type: models.BadgeStreak, Target: 7},
	{ID: "unstoppable", Name: "Unstoppable", Icon: "💪", Description: "Keep a 30 day streak", Type: models.BadgeStreak, Target: 30},
	{ID: "explorer", Name: "Explorer", Icon: "🧭", Description: "Study 3 different subjects", Type: models.BadgeSubject, Target: 3},
}

type achievementRule struct {
	achievement models.Achievement
	met         func(metrics) bool
}

var achievementRules = []achievementRule{
	{models.Achievement{ID: "first_hour", Name: "First Hour", Icon: "⏰", Description: "Studied for one hour"}, func(m metrics) bool { return m.minutes >= 60 }},
	{models.Achievement{ID: "ten_hours", Name: "Ten Hours", Icon: "📖", Description: "Studied for ten hours"}, func(m metrics) bool { return m.minutes >= 600 }},
	{models.Achievement{ID: "xp_100", Name: "Century", Icon: "💯", Description: "Earned 100 XP"}, func(m metrics) bool { return m.xp >= 100 }},
	{models.Achievement{ID: "xp_1000", Name: "Thousand Club", Icon: "🏆", Description: "Earned 1000 XP"}, func(m metrics) bool { return m.xp >= 1000 }},
	{models.Achievement{ID: "streak_7", Name: "Consistent", Icon: "📅", Description: "Kept a 7 day streak"}, func(m metrics) bool { return m.streak >= 7 }},
}

// metrics are the totals badges and achievements are measured against.
type metrics struct {
	sessions int
	minutes  int
	xp       int
	streak   int
	subjects int
}

func (s *Store) metrics() metrics {
	m := metrics{
		sessions: len(s.state.Sessions),
		xp:       s.state.User.XP,
		streak:   s.state.User.Streak,
	}
	studied := map[string]struct{}{}
	for _, session := range s.state.Sessions {
		m.minutes += session.Duration
		if session.SubjectID != "" {
			studied[session.SubjectID] = struct{}{}
		}
	}
	m.subjects = len(studied)
	return m
}

func (m metrics) badgeMetric(t models.BadgeType) int {
	switch t {
	case models.BadgeMilestone:
		return m.sessions
	case models.BadgeHours:
		return m.minutes / 60
	case models.BadgeXP:
		return m.xp
	case models.BadgeStreak:
		return m.streak
	case models.BadgeSubject:
		return m.subjects
	default:
		return 0
	}
}

func badgeProgress(metric, target int) int {
	if target <= 0 {
		return 100
	}
	return min(100, metric*100/target)
}

// CheckBadgeProgress unlocks every badge whose target is reached and
// returns the newly unlocked ones. Re-running it never unlocks a badge
// twice.
func (s *Store) CheckBadgeProgress(ctx context.Context) []models.UnlockedBadge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkBadgeProgress(ctx)
}

func (s *Store) checkBadgeProgress(ctx context.Context) []models.UnlockedBadge {
	m := s.metrics()
	unlocked := make(map[string]struct{}, len(s.state.Badges))
	for _, b := range s.state.Badges {
		unlocked[b.ID] = struct{}{}
	}

	var fresh []models.UnlockedBadge
	for _, t := range BadgeTemplates {
		if _, ok := unlocked[t.ID]; ok {
			continue
		}
		if badgeProgress(m.badgeMetric(t.Type), t.Target) < 100 {
			continue
		}
		fresh = append(fresh, models.UnlockedBadge{ID: t.ID, Name: t.Name, Icon: t.Icon, UnlockedAt: s.clock.Now()})
	}
	if len(fresh) == 0 {
		return nil
	}

	s.state.Badges = append(s.state.Badges, fresh...)
	s.persist(ctx, models.KeyBadges)
	s.logger.Info().Str("func", "Store.CheckBadgeProgress").Int("unlocked", len(fresh)).Msg("badges unlocked")
	return fresh
}

// BadgeProgress reports the progress towards every badge.
func (s *Store) BadgeProgress() []models.BadgeProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.metrics()
	unlocked := make(map[string]struct{}, len(s.state.Badges))
	for _, b := range s.state.Badges {
		unlocked[b.ID] = struct{}{}
	}

	out := make([]models.BadgeProgress, 0, len(BadgeTemplates))
	for _, t := range BadgeTemplates {
		_, ok := unlocked[t.ID]
		progress := badgeProgress(m.badgeMetric(t.Type), t.Target)
		if ok {
			progress = 100
		}
		out = append(out, models.BadgeProgress{Badge: t, Progress: progress, Unlocked: ok})
	}
	return out
}

// CheckAchievements unlocks every achievement whose threshold is met and
// returns the newly unlocked ones.
func (s *Store) CheckAchievements(ctx context.Context) []models.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkAchievements(ctx)
}

func (s *Store) checkAchievements(ctx context.Context) []models.Achievement {
	m := s.metrics()
	unlocked := make(map[string]struct{}, len(s.state.Achievements))
	for _, a := range s.state.Achievements {
		unlocked[a.ID] = struct{}{}
	}

	var fresh []models.Achievement
	for _, rule := range achievementRules {
		if _, ok := unlocked[rule.achievement.ID]; ok || !rule.met(m) {
			continue
		}
		a := rule.achievement
		a.UnlockedAt = s.clock.Now()
		fresh = append(fresh, a)
	}
	if len(fresh) == 0 {
		return nil
	}

	s.state.Achievements = append(s.state.Achievements, fresh...)
	s.persist(ctx, models.KeyAchievements)
	return fresh
}
