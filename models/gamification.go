package models

import "time"

// ChallengeType is the discriminator used when advancing challenge progress.
type ChallengeType string

const (
	ChallengeStudyTime    ChallengeType = "study_time"
	ChallengeQuizComplete ChallengeType = "quiz_complete"
	ChallengeLogin        ChallengeType = "login"
)

// DailyChallenge is one of the challenges regenerated every calendar day.
// Current never exceeds Target and Completed never flips back.
type DailyChallenge struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Type      ChallengeType `json:"type"`
	Target    int           `json:"target"`
	Current   int           `json:"current"`
	Completed bool          `json:"completed"`
	XP        int           `json:"xp"`
}

// BadgeType selects the metric a badge template is measured against.
type BadgeType string

const (
	BadgeMilestone BadgeType = "milestone"
	BadgeHours     BadgeType = "hours"
	BadgeXP        BadgeType = "xp"
	BadgeStreak    BadgeType = "streak"
	BadgeSubject   BadgeType = "subject"
)

// BadgeTemplate is an immutable badge definition.
type BadgeTemplate struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Type        BadgeType
	Target      int
}

// UnlockedBadge records a badge the user has earned.
type UnlockedBadge struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Icon       string    `json:"icon"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// BadgeProgress is the percentage progress towards one badge.
type BadgeProgress struct {
	Badge    BadgeTemplate
	Progress int
	Unlocked bool
}

// Achievement is an unlocked achievement record.
type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

// XPAward is the ledger entry guarding one XP type per calendar day.
type XPAward struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
}

// XPResult reports the outcome of an XP award. AlreadyAwarded is an expected
// outcome, not a failure.
type XPResult struct {
	Awarded        bool
	AlreadyAwarded bool
	Amount         int
	TotalXP        int
}

// ClaimResult reports the outcome of a once-per-day gate.
type ClaimResult struct {
	Claimed        bool
	AlreadyClaimed bool
	XP             int
}
