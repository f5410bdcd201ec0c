package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/mock"
	"github.com/MKhiriev/studytrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStore_Subjects(t *testing.T) {
	st, ctx := newInitializedStore(t)

	maths, err := st.AddSubject(ctx, "  Maths ", "#f00")
	require.NoError(t, err)
	assert.Equal(t, "Maths", maths.Name)
	assert.NotEmpty(t, maths.ID)

	_, err = st.AddSubject(ctx, "maths", "#0f0")
	assert.ErrorIs(t, err, ErrDuplicateSubject)

	_, err = st.AddSubject(ctx, "   ", "#0f0")
	assert.ErrorIs(t, err, ErrInvalidData)

	physics, err := st.AddSubject(ctx, "Physics", "")
	require.NoError(t, err)
	_, err = st.UpdateSubject(ctx, physics.ID, "MATHS", "")
	assert.ErrorIs(t, err, ErrDuplicateSubject)

	updated, err := st.UpdateSubject(ctx, physics.ID, "Applied Physics", "#00f")
	require.NoError(t, err)
	assert.Equal(t, "Applied Physics", updated.Name)

	_, err = st.UpdateSubject(ctx, "missing", "Art", "")
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.Len(t, st.Subjects(), 2)
	assert.ErrorIs(t, st.DeleteSubject(ctx, "missing"), ErrItemNotFound)
}

func TestStore_Topics(t *testing.T) {
	st, ctx := newInitializedStore(t)

	subject, err := st.AddSubject(ctx, "Maths", "")
	require.NoError(t, err)

	topic, err := st.AddTopic(ctx, subject.ID, models.Topic{Name: "Algebra", EstimatedTime: 30})
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyMedium, topic.Difficulty)

	_, err = st.AddTopic(ctx, "missing", models.Topic{Name: "Geometry"})
	assert.ErrorIs(t, err, ErrUnknownSubject)

	_, err = st.AddTopic(ctx, subject.ID, models.Topic{Name: "Calculus", Difficulty: "Impossible"})
	assert.ErrorIs(t, err, ErrInvalidData)

	toggled, err := st.ToggleTopic(ctx, subject.ID, topic.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	got, ok := st.Subject(subject.ID)
	require.True(t, ok)
	assert.InDelta(t, 1.0, got.Progress(), 0.0001)

	topic.Name = "Linear Algebra"
	topic.Completed = false
	require.NoError(t, st.UpdateTopic(ctx, subject.ID, topic))
	got, _ = st.Subject(subject.ID)
	assert.Equal(t, "Linear Algebra", got.Topics[0].Name)

	require.NoError(t, st.DeleteTopic(ctx, subject.ID, topic.ID))
	assert.ErrorIs(t, st.DeleteTopic(ctx, subject.ID, topic.ID), ErrItemNotFound)
}

func TestStore_ReviewCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	clock := newTestClock()
	lb := mock.NewMockLeaderboard(ctrl)
	lb.EXPECT().InitializeUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	lb.EXPECT().UpdateXP(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	lb.EXPECT().UpdateFlashcards(gomock.Any(), GuestUserID, 1).Return(nil).Times(1)

	st := newTestStore(t, newTestKV(t), clock, nil, lb)
	st.Init(ctx)

	deck, err := st.AddDeck(ctx, "Biology", "🧬")
	require.NoError(t, err)
	card, err := st.AddCard(ctx, deck.ID, models.Card{Front: "Cell", Back: "Unit of life", Mastered: true})
	require.NoError(t, err)
	assert.False(t, card.Mastered)

	due, err := st.DueCards(deck.ID)
	require.NoError(t, err)
	assert.Len(t, due, 1)

	res, err := st.ReviewCard(ctx, deck.ID, card.ID, models.RatingAgain)
	require.NoError(t, err)
	assert.False(t, res.NewlyMastered)
	assert.Equal(t, 1, res.Card.IntervalMinutes)
	require.NotNil(t, res.Card.NextReview)
	assert.True(t, res.Card.NextReview.Equal(testNow.Add(time.Minute)))

	due, err = st.DueCards(deck.ID)
	require.NoError(t, err)
	assert.Empty(t, due)

	clock.Advance(2 * time.Minute)
	due, err = st.DueCards(deck.ID)
	require.NoError(t, err)
	assert.Len(t, due, 1)

	res, err = st.ReviewCard(ctx, deck.ID, card.ID, models.RatingMaster)
	require.NoError(t, err)
	assert.True(t, res.NewlyMastered)
	assert.True(t, res.Card.Mastered)
	assert.Equal(t, 24*60, res.Card.IntervalMinutes)

	res, err = st.ReviewCard(ctx, deck.ID, card.ID, models.RatingMaster)
	require.NoError(t, err)
	assert.False(t, res.NewlyMastered, "mastering counts once")

	_, err = st.ReviewCard(ctx, deck.ID, card.ID, "perfect")
	assert.ErrorIs(t, err, ErrUnknownRating)
	_, err = st.ReviewCard(ctx, deck.ID, "missing", models.RatingGood)
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.Equal(t, 3, st.ActivityCount("2026-03-10", ActivityCardReview))

	require.NoError(t, st.DeleteCard(ctx, deck.ID, card.ID))
	require.NoError(t, st.DeleteDeck(ctx, deck.ID))
	assert.Empty(t, st.Decks())
}

func TestStore_Countdowns(t *testing.T) {
	st, ctx := newInitializedStore(t)

	_, err := st.AddCountdown(ctx, models.Countdown{Title: "Old exam", Type: models.CountdownExam, Date: testNow.Add(-time.Hour)})
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = st.AddCountdown(ctx, models.Countdown{Title: "Now", Type: models.CountdownExam, Date: testNow})
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = st.AddCountdown(ctx, models.Countdown{Title: "Party", Type: "party", Date: testNow.Add(time.Hour)})
	assert.ErrorIs(t, err, ErrInvalidData)

	later, err := st.AddCountdown(ctx, models.Countdown{Title: "Finals", Type: models.CountdownExam, Date: testNow.AddDate(0, 2, 0)})
	require.NoError(t, err)
	sooner, err := st.AddCountdown(ctx, models.Countdown{Title: "Quiz", Type: models.CountdownTest, Date: testNow.AddDate(0, 0, 3)})
	require.NoError(t, err)

	got := st.Countdowns()
	require.Len(t, got, 2)
	assert.Equal(t, sooner.ID, got[0].ID)
	assert.Equal(t, later.ID, got[1].ID)

	require.NoError(t, st.DeleteCountdown(ctx, sooner.ID))
	assert.ErrorIs(t, st.DeleteCountdown(ctx, sooner.ID), ErrItemNotFound)
}

func TestStore_Timetable(t *testing.T) {
	st, ctx := newInitializedStore(t)

	subject, err := st.AddSubject(ctx, "Maths", "")
	require.NoError(t, err)

	_, err = st.AddTimetableSlot(ctx, models.TimetableSlot{Day: time.Tuesday, SubjectID: "missing"})
	assert.ErrorIs(t, err, ErrUnknownSubject)

	for _, slot := range []models.TimetableSlot{
		{Day: time.Tuesday, SubjectID: subject.ID, Start: "14:00", End: "15:00"},
		{Day: time.Monday, SubjectID: subject.ID, Start: "08:00", End: "09:00"},
		{Day: time.Tuesday, SubjectID: subject.ID, Start: "08:30", End: "09:30"},
	} {
		_, err = st.AddTimetableSlot(ctx, slot)
		require.NoError(t, err)
	}

	today := st.TodaysTimetable()
	require.Len(t, today, 2)
	assert.Equal(t, "08:30", today[0].Start)
	assert.Equal(t, "14:00", today[1].Start)

	require.NoError(t, st.DeleteTimetableSlot(ctx, today[0].ID))
	assert.Len(t, st.Timetable(), 2)
}

func TestStore_VisionBoard(t *testing.T) {
	st, ctx := newInitializedStore(t)

	item, err := st.AddVisionItem(ctx, models.VisionItem{Title: "Get into med school"})
	require.NoError(t, err)
	assert.Equal(t, testNow, item.CreatedAt)

	_, err = st.AddVisionItem(ctx, models.VisionItem{})
	assert.ErrorIs(t, err, ErrInvalidData)

	assert.Len(t, st.VisionBoard(), 1)
	require.NoError(t, st.DeleteVisionItem(ctx, item.ID))
	assert.Empty(t, st.VisionBoard())
}

func TestStore_NotesAndPapers(t *testing.T) {
	st, ctx := newInitializedStore(t)

	note, err := st.SaveNote(ctx, models.Note{Title: "Formulas", Content: "a^2 + b^2"})
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)

	note.Content = "a^2 + b^2 = c^2"
	updated, err := st.SaveNote(ctx, note)
	require.NoError(t, err)
	assert.Equal(t, note.ID, updated.ID)
	require.Len(t, st.Notes(), 1)
	assert.Equal(t, "a^2 + b^2 = c^2", st.Notes()[0].Content)

	_, err = st.SaveNote(ctx, models.Note{ID: "missing", Title: "Ghost"})
	assert.ErrorIs(t, err, ErrItemNotFound)
	require.NoError(t, st.DeleteNote(ctx, note.ID))

	_, err = st.AddPaper(ctx, models.Paper{Title: "2024 Paper 1", Score: 90, Total: 80})
	assert.ErrorIs(t, err, ErrInvalidData)

	paper, err := st.AddPaper(ctx, models.Paper{Title: "2024 Paper 1", Year: 2024, Score: 72, Total: 80})
	require.NoError(t, err)
	assert.Equal(t, testNow, paper.TakenAt)
	assert.Len(t, st.Papers(), 1)
	require.NoError(t, st.DeletePaper(ctx, paper.ID))
	assert.ErrorIs(t, st.DeletePaper(ctx, paper.ID), ErrItemNotFound)
}

func TestStore_UpdateSettings(t *testing.T) {
	st, ctx := newInitializedStore(t)

	theme := "dark"
	pomodoro := 50
	zero := 0
	sound := false

	got := st.UpdateSettings(ctx, models.SettingsUpdate{
		Theme:            &theme,
		PomodoroMinutes:  &pomodoro,
		DailyGoalMinutes: &zero,
		Sound:            &sound,
	})

	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, 50, got.PomodoroMinutes)
	assert.Equal(t, 60, got.DailyGoalMinutes, "non-positive durations are ignored")
	assert.False(t, got.Sound)
	assert.True(t, got.Notifications)
	assert.Equal(t, got, st.Settings())
}

func TestStore_ValidationErrorsAreWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	v := mock.NewMockValidator(ctrl)
	v.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(errors.New("title: required"))

	st := NewStore(StoreDeps{KV: newTestKV(t), Validator: v, Clock: newTestClock(), Logger: logger.Nop()})

	_, err := st.AddDeck(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Contains(t, err.Error(), "title: required")
	assert.Empty(t, st.Decks())
}

func TestMergeSettings(t *testing.T) {
	dark := "dark"
	off := false
	on := true
	goal := 90
	negative := -5
	empty := ""

	tests := []struct {
		name   string
		update models.SettingsUpdate
		want   func(s *models.Settings)
	}{
		{name: "empty update keeps everything", update: models.SettingsUpdate{}, want: func(*models.Settings) {}},
		{name: "theme and goal", update: models.SettingsUpdate{Theme: &dark, DailyGoalMinutes: &goal}, want: func(s *models.Settings) {
			s.Theme = dark
			s.DailyGoalMinutes = goal
		}},
		{name: "false and empty values apply", update: models.SettingsUpdate{Theme: &empty, Sound: &off, Notifications: &off}, want: func(s *models.Settings) {
			s.Theme = ""
			s.Sound = false
			s.Notifications = false
		}},
		{name: "true keeps true", update: models.SettingsUpdate{Sound: &on}, want: func(*models.Settings) {}},
		{name: "non-positive minutes are ignored", update: models.SettingsUpdate{PomodoroMinutes: &negative, LongBreakMinutes: &negative}, want: func(*models.Settings) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := models.DefaultSettings()
			want := models.DefaultSettings()
			tt.want(&want)

			require.NoError(t, mergeSettings(&got, tt.update))
			assert.Equal(t, want, got)
		})
	}
}
