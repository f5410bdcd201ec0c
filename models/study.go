package models

import "time"

// Session is one completed study interval. Duration is in whole minutes.
type Session struct {
	Timestamp time.Time `json:"timestamp"`
	Duration  int       `json:"duration"`
	SubjectID string    `json:"subjectId,omitempty"`
}

// Difficulty of a topic.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Subject groups topics under a colored label.
type Subject struct {
	ID     string  `json:"id"`
	Name   string  `json:"name" validate:"required,notblank"`
	Color  string  `json:"color"`
	Topics []Topic `json:"topics"`
}

// Progress returns the completed share of topics in [0, 1], or 0 when the
// subject has no topics.
func (s Subject) Progress() float64 {
	if len(s.Topics) == 0 {
		return 0
	}
	done := 0
	for _, t := range s.Topics {
		if t.Completed {
			done++
		}
	}
	return float64(done) / float64(len(s.Topics))
}

// Topic is a unit of work inside a subject.
type Topic struct {
	ID            string     `json:"id"`
	Name          string     `json:"name" validate:"required"`
	Completed     bool       `json:"completed"`
	Difficulty    Difficulty `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	EstimatedTime int        `json:"estimatedTime" validate:"gte=0"`
	Notes         string     `json:"notes,omitempty"`
}

// Deck is a flashcard deck.
type Deck struct {
	ID    string `json:"id"`
	Title string `json:"title" validate:"required"`
	Icon  string `json:"icon"`
	Cards []Card `json:"cards"`
}

// Card is a single flashcard with its review schedule.
type Card struct {
	ID              string     `json:"id"`
	Front           string     `json:"front" validate:"required"`
	Back            string     `json:"back" validate:"required"`
	Image           string     `json:"image,omitempty"`
	Mastered        bool       `json:"mastered,omitempty"`
	NextReview      *time.Time `json:"nextReview,omitempty"`
	IntervalMinutes int        `json:"intervalMinutes,omitempty"`
}

// IsDue reports whether the card should be shown at now.
func (c Card) IsDue(now time.Time) bool {
	return c.NextReview == nil || !c.NextReview.After(now)
}

// ReviewRating is the answer quality given when reviewing a card.
type ReviewRating string

const (
	RatingAgain  ReviewRating = "again"
	RatingGood   ReviewRating = "good"
	RatingMaster ReviewRating = "master"
)

// ReviewResult is the outcome of a card review.
type ReviewResult struct {
	Card          Card
	NewlyMastered bool
}

// CountdownType classifies a countdown.
type CountdownType string

const (
	CountdownExam  CountdownType = "exam"
	CountdownTest  CountdownType = "test"
	CountdownEvent CountdownType = "event"
)

// Countdown is a dated goal shown with the remaining time.
type Countdown struct {
	ID    string        `json:"id"`
	Title string        `json:"title" validate:"required"`
	Type  CountdownType `json:"type" validate:"required,oneof=exam test event"`
	Date  time.Time     `json:"date" validate:"required"`
}

// VisionItem is an entry of the vision board.
type VisionItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"required"`
	Image     string    `json:"image,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TimetableSlot schedules a subject on a weekday.
type TimetableSlot struct {
	ID        string       `json:"id"`
	Day       time.Weekday `json:"day" validate:"gte=0,lte=6"`
	SubjectID string       `json:"subjectId" validate:"required"`
	Start     string       `json:"start"`
	End       string       `json:"end"`
}

// Note is a free-text note, optionally bound to a subject.
type Note struct {
	ID        string    `json:"id"`
	SubjectID string    `json:"subjectId,omitempty"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Paper is a past exam paper attempt.
type Paper struct {
	ID        string    `json:"id"`
	SubjectID string    `json:"subjectId,omitempty"`
	Title     string    `json:"title" validate:"required"`
	Year      int       `json:"year"`
	Score     int       `json:"score" validate:"gte=0"`
	Total     int       `json:"total" validate:"gte=0"`
	TakenAt   time.Time `json:"takenAt"`
}

// Settings are the user's preferences.
type Settings struct {
	Theme             string `json:"theme"`
	PomodoroMinutes   int    `json:"pomodoroMinutes"`
	ShortBreakMinutes int    `json:"shortBreakMinutes"`
	LongBreakMinutes  int    `json:"longBreakMinutes"`
	DailyGoalMinutes  int    `json:"dailyGoalMinutes"`
	Notifications     bool   `json:"notifications"`
	Sound             bool   `json:"sound"`
}

// DefaultSettings returns the preferences of a new account.
func DefaultSettings() Settings {
	return Settings{
		Theme:             "light",
		PomodoroMinutes:   25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		DailyGoalMinutes:  60,
		Notifications:     true,
		Sound:             true,
	}
}

// SettingsUpdate is a typed partial settings change. Nil fields are kept.
type SettingsUpdate struct {
	Theme             *string
	PomodoroMinutes   *int
	ShortBreakMinutes *int
	LongBreakMinutes  *int
	DailyGoalMinutes  *int
	Notifications     *bool
	Sound             *bool
}
