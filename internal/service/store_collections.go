package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/studytrack/models"
)

func (s *Store) validate(ctx context.Context, v any) error {
	if err := s.validator.Validate(ctx, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	return nil
}

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	idx := indexByID(items, id, idOf)
	if idx < 0 {
		return items, false
	}
	return slices.Delete(items, idx, idx+1), true
}

func subjectIDOf(v models.Subject) string { return v.ID }
func topicIDOf(v models.Topic) string { return v.ID }
func deckIDOf(v models.Deck) string { return v.ID }
func cardIDOf(v models.Card) string { return v.ID }
func countdownIDOf(v models.Countdown) string { return v.ID }
func visionItemIDOf(v models.VisionItem) string { return v.ID }
func slotIDOf(v models.TimetableSlot) string { return v.ID }
func noteIDOf(v models.Note) string { return v.ID }
func paperIDOf(v models.Paper) string { return v.ID }

// Subjects

// AddSubject creates a subject. Names are unique per account,
// case-insensitively.
func (s *Store) AddSubject(ctx context.Context, name, color string) (models.Subject, error) {
	subject := models.Subject{Name: strings.TrimSpace(name), Color: color, Topics: []models.Topic{}}
	if err := s.validate(ctx, subject); err != nil {
		return models.Subject{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subjectNameTaken(subject.Name, "") {
		return models.Subject{}, ErrDuplicateSubject
	}
	subject.ID = s.ids.Generate()
	s.state.Subjects = append(s.state.Subjects, subject)
	s.persist(ctx, models.KeySubjects)
	return clone(subject), nil
}

func (s *Store) subjectNameTaken(name, exceptID string) bool {
	for _, subject := range s.state.Subjects {
		if subject.ID != exceptID && strings.EqualFold(subject.Name, name) {
			return true
		}
	}
	return false
}

func (s *Store) UpdateSubject(ctx context.Context, id, name, color string) (models.Subject, error) {
	name = strings.TrimSpace(name)
	if err := s.validate(ctx, models.Subject{Name: name}); err != nil {
		return models.Subject{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexByID(s.state.Subjects, id, subjectIDOf)
	if idx < 0 {
		return models.Subject{}, ErrItemNotFound
	}
	if s.subjectNameTaken(name, id) {
		return models.Subject{}, ErrDuplicateSubject
	}
	s.state.Subjects[idx].Name = name
	s.state.Subjects[idx].Color = color
	s.persist(ctx, models.KeySubjects)
	return clone(s.state.Subjects[idx]), nil
}

// DeleteSubject removes the subject with its topics and timetable slots.
// Sessions that reference it are kept and count as general study time.
func (s *Store) DeleteSubject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subjects, ok := removeByID(s.state.Subjects, id, subjectIDOf)
	if !ok {
		return ErrItemNotFound
	}
	s.state.Subjects = subjects
	s.persist(ctx, models.KeySubjects)

	timetable := slices.DeleteFunc(s.state.Timetable, func(slot models.TimetableSlot) bool { return slot.SubjectID == id })
	if len(timetable) != len(s.state.Timetable) {
		s.state.Timetable = timetable
		s.persist(ctx, models.KeyTimetable)
	}
	return nil
}

func (s *Store) Subjects() []models.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state.Subjects)
}

func (s *Store) Subject(id string) (models.Subject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := indexByID(s.state.Subjects, id, subjectIDOf)
	if idx < 0 {
		return models.Subject{}, false
	}
	return clone(s.state.Subjects[idx]), true
}

// Topics

func (s *Store) AddTopic(ctx context.Context, subjectID string, topic models.Topic) (models.Topic, error) {
	topic.Name = strings.TrimSpace(topic.Name)
	if topic.Difficulty == "" {
		topic.Difficulty = models.DifficultyMedium
	}
	if err := s.validate(ctx, topic); err != nil {
		return models.Topic{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subject, err := s.subject(subjectID)
	if err != nil {
		return models.Topic{}, err
	}
	topic.ID = s.ids.Generate()
	subject.Topics = append(subject.Topics, topic)
	s.persist(ctx, models.KeySubjects)
	return topic, nil
}

func (s *Store) UpdateTopic(ctx context.Context, subjectID string, topic models.Topic) error {
	if err := s.validate(ctx, topic); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subject, err := s.subject(subjectID)
	if err != nil {
		return err
	}
	idx := indexByID(subject.Topics, topic.ID, topicIDOf)
	if idx < 0 {
		return ErrItemNotFound
	}
	subject.Topics[idx] = topic
	s.persist(ctx, models.KeySubjects)
	return nil
}

// ToggleTopic flips the completed flag of a topic.
func (s *Store) ToggleTopic(ctx context.Context, subjectID, id string) (models.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subject, err := s.subject(subjectID)
	if err != nil {
		return models.Topic{}, err
	}
	idx := indexByID(subject.Topics, id, topicIDOf)
	if idx < 0 {
		return models.Topic{}, ErrItemNotFound
	}
	subject.Topics[idx].Completed = !subject.Topics[idx].Completed
	s.persist(ctx, models.KeySubjects)
	return subject.Topics[idx], nil
}

func (s *Store) DeleteTopic(ctx context.Context, subjectID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subject, err := s.subject(subjectID)
	if err != nil {
		return err
	}
	topics, ok := removeByID(subject.Topics, id, topicIDOf)
	if !ok {
		return ErrItemNotFound
	}
	subject.Topics = topics
	s.persist(ctx, models.KeySubjects)
	return nil
}

func (s *Store) subject(id string) (*models.Subject, error) {
	idx := indexByID(s.state.Subjects, id, subjectIDOf)
	if idx < 0 {
		return nil, ErrUnknownSubject
	}
	return &s.state.Subjects[idx], nil
}

// Flashcards

func (s *Store) AddDeck(ctx context.Context, title, icon string) (models.Deck, error) {
	deck := models.Deck{Title: strings.TrimSpace(title), Icon: icon, Cards: []models.Card{}}
	if err := s.validate(ctx, deck); err != nil {
		return models.Deck{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deck.ID = s.ids.Generate()
	s.state.Flashcards = append(s.state.Flashcards, deck)
	s.persist(ctx, models.KeyFlashcards)
	return clone(deck), nil
}

func (s *Store) DeleteDeck(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	decks, ok := removeByID(s.state.Flashcards, id, deckIDOf)
	if !ok {
		return ErrItemNotFound
	}
	s.state.Flashcards = decks
	s.persist(ctx, models.KeyFlashcards)
	return nil
}

func (s *Store) Decks() []models.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state.Flashcards)
}

func (s *Store) AddCard(ctx context.Context, deckID string, card models.Card) (models.Card, error) {
	card.Mastered = false
	card.NextReview = nil
	card.IntervalMinutes = 0
	if err := s.validate(ctx, card); err != nil {
		return models.Card{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deck, err := s.deck(deckID)
	if err != nil {
		return models.Card{}, err
	}
	card.ID = s.ids.Generate()
	deck.Cards = append(deck.Cards, card)
	s.persist(ctx, models.KeyFlashcards)
	return card, nil
}

func (s *Store) DeleteCard(ctx context.Context, deckID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck, err := s.deck(deckID)
	if err != nil {
		return err
	}
	cards, ok := removeByID(deck.Cards, id, cardIDOf)
	if !ok {
		return ErrItemNotFound
	}
	deck.Cards = cards
	s.persist(ctx, models.KeyFlashcards)
	return nil
}

// DueCards returns the cards of a deck that are due now.
func (s *Store) DueCards(deckID string) ([]models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck, err := s.deck(deckID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	var due []models.Card
	for _, card := range deck.Cards {
		if card.IsDue(now) {
			due = append(due, card)
		}
	}
	return clone(due), nil
}

// Review intervals per rating.
const (
	againInterval  = time.Minute
	goodInterval   = 5 * time.Minute
	masterInterval = 24 * time.Hour
)

// ReviewCard schedules the next review of a card. "master" marks the card
// mastered; only the first mastering counts on the leaderboard.
func (s *Store) ReviewCard(ctx context.Context, deckID, id string, rating models.ReviewRating) (models.ReviewResult, error) {
	var interval time.Duration
	switch rating {
	case models.RatingAgain:
		interval = againInterval
	case models.RatingGood:
		interval = goodInterval
	case models.RatingMaster:
		interval = masterInterval
	default:
		return models.ReviewResult{}, fmt.Errorf("%w: %q", ErrUnknownRating, rating)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deck, err := s.deck(deckID)
	if err != nil {
		return models.ReviewResult{}, err
	}
	idx := indexByID(deck.Cards, id, cardIDOf)
	if idx < 0 {
		return models.ReviewResult{}, ErrItemNotFound
	}

	card := &deck.Cards[idx]
	next := s.clock.Now().Add(interval)
	card.NextReview = &next
	card.IntervalMinutes = int(interval / time.Minute)

	newlyMastered := rating == models.RatingMaster && !card.Mastered
	if newlyMastered {
		card.Mastered = true
	}
	result := models.ReviewResult{Card: clone(*card), NewlyMastered: newlyMastered}

	s.persist(ctx, models.KeyFlashcards)
	s.recordActivity(ctx, ActivityCardReview)

	if newlyMastered {
		s.pushLeaderboard("Store.ReviewCard", func(l Leaderboard) error {
			return l.UpdateFlashcards(ctx, s.userID, 1)
		})
	}
	return result, nil
}

func (s *Store) deck(id string) (*models.Deck, error) {
	idx := indexByID(s.state.Flashcards, id, deckIDOf)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	return &s.state.Flashcards[idx], nil
}

// Countdowns

// AddCountdown stores a countdown. The date must lie in the future.
func (s *Store) AddCountdown(ctx context.Context, countdown models.Countdown) (models.Countdown, error) {
	countdown.Title = strings.TrimSpace(countdown.Title)
	if err := s.validate(ctx, countdown); err != nil {
		return models.Countdown{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !countdown.Date.After(s.clock.Now()) {
		return models.Countdown{}, ErrInvalidDate
	}
	countdown.ID = s.ids.Generate()
	s.state.Countdowns = append(s.state.Countdowns, countdown)
	s.persist(ctx, models.KeyCountdowns)
	return countdown, nil
}

func (s *Store) DeleteCountdown(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	countdowns, ok := removeByID(s.state.Countdowns, id, countdownIDOf)
	if !ok {
		return ErrItemNotFound
	}
	s.state.Countdowns = countdowns
	s.persist(ctx, models.KeyCountdowns)
	return nil
}

// Countdowns returns the countdowns ordered by date, soonest first.
func (s *Store) Countdowns() []models.Countdown {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := clone(s.state.Countdowns)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Vision board

func (s *Store) AddVisionItem(ctx context.Context, item models.VisionItem) (models.VisionItem, error) {
	item.Title = strings.TrimSpace(item.Title)
	if err := s.validate(ctx, item); err != nil {
		return models.VisionItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.ids.Generate()
	item.CreatedAt = s.clock.Now()
	s.state.VisionBoard = append(s.state.VisionBoard, item)
	s.persist(ctx, models.KeyVisionBoard)
	return item, nil
}

func (s *Store) DeleteVisionItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := removeByID(s.state.VisionBoard, id, visionItemIDOf)
	if !ok {
		return ErrItemNotFound
	}
	s.state.VisionBoard = items
	s.persist(ctx, models.KeyVisionBoard)
	return nil
}

func (s *Store) VisionBoard() []models.VisionItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state.VisionBoard)
}

// Timetable

// AddTimetableSlot schedules an existing subject on a weekday.
func (s *Store) AddTimetableSlot(ctx context.Context, slot models.TimetableSlot) (models.TimetableSlot, error) {
	if err := s.validate(ctx, slot); err != nil {
		return models.TimetableSlot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.subject(slot.SubjectID); err != nil {
		return models.TimetableSlot{}, err
	}
	slot.ID = s.ids.Generate()
	s.state.Timetable = append(s.state.Timetable, slot)
	s.persist(ctx, models.KeyTimetable)
	return slot, nil
}

func (s *Store) DeleteTimetableSlot(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, ok := removeByID(s.state.Timetable, id, slotIDOf)
	if !ok {
		return ErrItemNotFound
	}
	s.state.Timetable = slots
	s.persist(ctx, models.KeyTimetable)
	return nil
}

func (s *Store) Timetable() []models.TimetableSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state.Timetable)
}

// TodaysTimetable returns today's slots ordered by start time.
func (s *Store) TodaysTimetable() []models.TimetableSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	weekday := s.clock.Now().Weekday()
	var out []models.TimetableSlot
	for _, slot := range s.state.Timetable {
		if slot.Day == weekday {
			out = append(out, slot)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// TimetableProgress returns today's studied minutes of subjectID.
func (s *Store) TimetableProgress(subjectID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TimetableStudyProgress[s.today()][subjectID]
}

// Notes

// SaveNote creates a note when it has no id and replaces it otherwise.
func (s *Store) SaveNote(ctx context.Context, note models.Note) (models.Note, error) {
	note.Title = strings.TrimSpace(note.Title)
	if err := s.validate(ctx, note); err != nil {
		return models.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note.UpdatedAt = s.clock.Now()
	if note.ID == "" {
		note.ID = s.ids.Generate()
		s.state.Notes = append(s.state.Notes, note)
	} else {
		idx := indexByID(s.state.Notes, note.ID, noteIDOf)
		if idx < 0 {
			return models.Note{}, ErrItemNotFound
		}
		s.state.Notes[idx] = note
	}
	s.persist(ctx, models.KeyNotes)
	return note, nil
}

func (s *Store) DeleteNote(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, ok := removeByID(s.state.Notes, id, noteIDOf)
	if !ok {
		return ErrItemNotFound
	}
	s.state.Notes = notes
	s.persist(ctx, models.KeyNotes)
	return nil
}

func (s *Store) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state.Notes)
}

// Papers

func (s *Store) AddPaper(ctx context.Context, paper models.Paper) (models.Paper, error) {
	paper.Title = strings.TrimSpace(paper.Title)
	if err := s.validate(ctx, paper); err != nil {
		return models.Paper{}, err
	}
	if paper.Total > 0 && paper.Score > paper.Total {
		return models.Paper{}, fmt.Errorf("%w: score exceeds total", ErrInvalidData)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	paper.ID = s.ids.Generate()
	if paper.TakenAt.IsZero() {
		paper.TakenAt = s.clock.Now()
	}
	s.state.Papers = append(s.state.Papers, paper)
	s.persist(ctx, models.KeyPapers)
	return paper, nil
}

func (s *Store) DeletePaper(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	papers, ok := removeByID(s.state.Papers, id, paperIDOf)
	if !ok {
		return ErrItemNotFound
	}
	s.state.Papers = papers
	s.persist(ctx, models.KeyPapers)
	return nil
}

func (s *Store) Papers() []models.Paper {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state.Papers)
}

// Settings

// UpdateSettings applies the non-nil fields of update. A rejected patch
// leaves the settings unchanged.
func (s *Store) UpdateSettings(ctx context.Context, update models.SettingsUpdate) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := mergeSettings(&s.state.Settings, update); err != nil {
		s.logger.Err(err).Str("func", "Store.UpdateSettings").Msg("failed to merge settings")
		return s.state.Settings
	}
	s.persist(ctx, models.KeySettings)
	return s.state.Settings
}

// mergeSettings copies the set fields of update onto dst. Durations must be
// positive; anything else keeps the stored value. False and "" are applied
// like any other value.
func mergeSettings(dst *models.Settings, update models.SettingsUpdate) error {
	patch := make(map[string]any)
	if update.Theme != nil {
		patch["theme"] = *update.Theme
	}
	for name, minutes := range map[string]*int{
		"pomodoroMinutes":   update.PomodoroMinutes,
		"shortBreakMinutes": update.ShortBreakMinutes,
		"longBreakMinutes":  update.LongBreakMinutes,
		"dailyGoalMinutes":  update.DailyGoalMinutes,
	} {
		if minutes != nil && *minutes > 0 {
			patch[name] = *minutes
		}
	}
	if update.Notifications != nil {
		patch["notifications"] = *update.Notifications
	}
	if update.Sound != nil {
		patch["sound"] = *update.Sound
	}
	if len(patch) == 0 {
		return nil
	}
	return mergo.Map(dst, patch, mergo.WithOverride, mergo.WithOverwriteWithEmptyValue)
}
