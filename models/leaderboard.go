package models

import "time"

// LeaderboardCategory names a sortable aggregate of a leaderboard entry.
// The same values identify the stat updated by the leaderboard accumulator.
type LeaderboardCategory string

const (
	CategoryStudyTime           LeaderboardCategory = "studyTime"
	CategoryStudyStreak         LeaderboardCategory = "studyStreak"
	CategoryStudySessions       LeaderboardCategory = "studySessions"
	CategoryFlashcardsCompleted LeaderboardCategory = "flashcardsCompleted"
	CategoryTotalXP             LeaderboardCategory = "totalXP"
)

// TimeFilter restricts a ranking by the entry's last activity date.
type TimeFilter string

const (
	TimeFilterToday TimeFilter = "today"
	TimeFilterWeek  TimeFilter = "week"
	TimeFilterMonth TimeFilter = "month"
	TimeFilterAll   TimeFilter = "all"
)

// SubjectStats is the per-subject breakdown of an entry.
type SubjectStats struct {
	StudyTime int `json:"studyTime"`
	XP        int `json:"xp"`
}

// LeaderboardEntry is the per-user aggregate shared on the leaderboard.
type LeaderboardEntry struct {
	UserID              string                  `json:"userId"`
	Username            string                  `json:"username"`
	Avatar              string                  `json:"avatar"`
	StudyTime           int                     `json:"studyTime"`
	StudyStreak         int                     `json:"studyStreak"`
	StudySessions       int                     `json:"studySessions"`
	FlashcardsCompleted int                     `json:"flashcardsCompleted"`
	TotalXP             int                     `json:"totalXP"`
	SubjectBreakdown    map[string]SubjectStats `json:"subjectBreakdown"`
	LastActive          string                  `json:"lastActive"`
	LastUpdated         time.Time               `json:"lastUpdated"`

	// JoinedAt is set once when the entry is created and orders entries
	// with equal stats.
	JoinedAt time.Time `json:"joinedAt"`
}

// Stat returns the value of the given category.
func (e LeaderboardEntry) Stat(category LeaderboardCategory) int {
	switch category {
	case CategoryStudyTime:
		return e.StudyTime
	case CategoryStudyStreak:
		return e.StudyStreak
	case CategoryStudySessions:
		return e.StudySessions
	case CategoryFlashcardsCompleted:
		return e.FlashcardsCompleted
	case CategoryTotalXP:
		return e.TotalXP
	default:
		return 0
	}
}

// SetStat sets the value of the given category. Unknown categories are
// ignored and reported as false.
func (e *LeaderboardEntry) SetStat(category LeaderboardCategory, value int) bool {
	switch category {
	case CategoryStudyTime:
		e.StudyTime = value
	case CategoryStudyStreak:
		e.StudyStreak = value
	case CategoryStudySessions:
		e.StudySessions = value
	case CategoryFlashcardsCompleted:
		e.FlashcardsCompleted = value
	case CategoryTotalXP:
		e.TotalXP = value
	default:
		return false
	}
	return true
}
