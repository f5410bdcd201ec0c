package service

import (
	"context"

	"github.com/MKhiriev/studytrack/models"
)

// dailyChallengeSet is regenerated every calendar day. Progress is not
// carried over.
var dailyChallengeSet = []models.DailyChallenge{
	{ID: "study_30", Text: "Study for 30 minutes", Type: models.ChallengeStudyTime, Target: 30, XP: 50},
	{ID: "quiz_1", Text: "Complete a flashcard quiz", Type: models.ChallengeQuizComplete, Target: 1, XP: 30},
	{ID: "login_1", Text: "Log in today", Type: models.ChallengeLogin, Target: 1, XP: 10},
}

// GenerateDailyChallenges replaces the challenge set with a fresh one dated
// today.
func (s *Store) GenerateDailyChallenges(ctx context.Context) []models.DailyChallenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generateDailyChallenges(ctx)
	return clone(s.state.DailyChallenges)
}

func (s *Store) generateDailyChallenges(ctx context.Context) {
	challenges := make([]models.DailyChallenge, len(dailyChallengeSet))
	copy(challenges, dailyChallengeSet)
	s.state.DailyChallenges = challenges
	s.state.LastChallengeDate = s.today()
	s.persist(ctx, models.KeyDailyChallenges, models.KeyLastChallengeDate)
}

// CheckDailyChallengesReset regenerates the challenges when they were made
// on another day and reports whether it did.
func (s *Store) CheckDailyChallengesReset(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkDailyChallengesReset(ctx)
}

func (s *Store) checkDailyChallengesReset(ctx context.Context) bool {
	if s.state.LastChallengeDate == s.today() && len(s.state.DailyChallenges) > 0 {
		return false
	}
	s.generateDailyChallenges(ctx)
	return true
}

// UpdateChallengeProgress advances every open challenge of challengeType by
// amount. Progress is clamped at the target; a challenge completes once and
// pays its XP once. It returns the challenges completed by this call.
func (s *Store) UpdateChallengeProgress(ctx context.Context, challengeType models.ChallengeType, amount int) []models.DailyChallenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateChallengeProgress(ctx, challengeType, amount)
}

func (s *Store) updateChallengeProgress(ctx context.Context, challengeType models.ChallengeType, amount int) []models.DailyChallenge {
	if amount <= 0 {
		return nil
	}
	s.checkDailyChallengesReset(ctx)

	var (
		changed   bool
		completed []models.DailyChallenge
	)
	for i := range s.state.DailyChallenges {
		c := &s.state.DailyChallenges[i]
		if c.Type != challengeType || c.Completed {
			continue
		}
		c.Current = min(c.Target, c.Current+amount)
		changed = true
		if c.Current >= c.Target {
			c.Completed = true
			completed = append(completed, *c)
		}
	}
	if !changed {
		return nil
	}
	s.persist(ctx, models.KeyDailyChallenges)

	for _, c := range completed {
		s.addXP(ctx, c.XP, xpTypeChallenge+c.ID)
	}
	return completed
}

// RecordQuizCompleted advances the quiz challenge and counts the activity.
func (s *Store) RecordQuizCompleted(ctx context.Context) []models.DailyChallenge {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recordActivity(ctx, ActivityQuiz)
	return s.updateChallengeProgress(ctx, models.ChallengeQuizComplete, 1)
}
