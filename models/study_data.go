// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// StateKey names a top-level slot of the study state tree. Every key is
// persisted independently.
type StateKey string

const (
	KeyUser                   StateKey = "user"
	KeySubjects               StateKey = "subjects"
	KeyFlashcards             StateKey = "flashcards"
	KeySessions               StateKey = "sessions"
	KeyAchievements           StateKey = "achievements"
	KeyCountdowns             StateKey = "countdowns"
	KeyVisionBoard            StateKey = "visionBoard"
	KeyBadges                 StateKey = "badges"
	KeySettings               StateKey = "settings"
	KeyDailyChallenges        StateKey = "dailyChallenges"
	KeyLastChallengeDate      StateKey = "lastChallengeDate"
	KeyTimetable              StateKey = "timetable"
	KeyTimetableStudyProgress StateKey = "timetableStudyProgress"
	KeyTimetableStudyRewards  StateKey = "timetableStudyRewards"
	KeyDailyXPAwards          StateKey = "dailyXPAwards"
	KeyDailyActivities        StateKey = "dailyActivities"
	KeyLastCheckIn            StateKey = "lastCheckIn"
	KeyLastXPClaim            StateKey = "lastXPClaim"
	KeyNotes                  StateKey = "notes"
	KeyPapers                 StateKey = "papers"
)

// AllStateKeys lists every state key in a stable order.
var AllStateKeys = []StateKey{
	KeyUser, KeySubjects, KeyFlashcards, KeySessions, KeyAchievements,
	KeyCountdowns, KeyVisionBoard, KeyBadges, KeySettings, KeyDailyChallenges,
	KeyLastChallengeDate, KeyTimetable, KeyTimetableStudyProgress,
	KeyTimetableStudyRewards, KeyDailyXPAwards, KeyDailyActivities,
	KeyLastCheckIn, KeyLastXPClaim, KeyNotes, KeyPapers,
}

// ErrUnknownStateKey is returned for a key that is not part of the state tree.
var ErrUnknownStateKey = errors.New("unknown state key")

// StudyData is the full study state tree of one user.
type StudyData struct {
	User                   UserProfile                `json:"user"`
	Subjects               []Subject                  `json:"subjects"`
	Flashcards             []Deck                     `json:"flashcards"`
	Sessions               []Session                  `json:"sessions"`
	Achievements           []Achievement              `json:"achievements"`
	Countdowns             []Countdown                `json:"countdowns"`
	VisionBoard            []VisionItem               `json:"visionBoard"`
	Badges                 []UnlockedBadge            `json:"badges"`
	Settings               Settings                   `json:"settings"`
	DailyChallenges        []DailyChallenge           `json:"dailyChallenges"`
	LastChallengeDate      string                     `json:"lastChallengeDate"`
	Timetable              []TimetableSlot            `json:"timetable"`
	TimetableStudyProgress map[string]map[string]int  `json:"timetableStudyProgress"`
	TimetableStudyRewards  map[string]map[string]bool `json:"timetableStudyRewards"`
	DailyXPAwards          map[string]XPAward         `json:"dailyXPAwards"`
	DailyActivities        map[string]map[string]int  `json:"dailyActivities"`
	LastCheckIn            string                     `json:"lastCheckIn"`
	LastXPClaim            string                     `json:"lastXPClaim"`
	Notes                  []Note                     `json:"notes"`
	Papers                 []Paper                    `json:"papers"`
}

// DefaultStudyData returns the state of a brand-new user: level 1, no XP,
// no streak, empty collections and default settings.
func DefaultStudyData(userID, name, avatar, today string) StudyData {
	return StudyData{
		User: UserProfile{
			Name:      name,
			Avatar:    avatar,
			Level:     1,
			LastLogin: today,
			UserID:    userID,
		},
		Subjects:               []Subject{},
		Flashcards:             []Deck{},
		Sessions:               []Session{},
		Achievements:           []Achievement{},
		Countdowns:             []Countdown{},
		VisionBoard:            []VisionItem{},
		Badges:                 []UnlockedBadge{},
		Settings:               DefaultSettings(),
		DailyChallenges:        []DailyChallenge{},
		Timetable:              []TimetableSlot{},
		TimetableStudyProgress: map[string]map[string]int{},
		TimetableStudyRewards:  map[string]map[string]bool{},
		DailyXPAwards:          map[string]XPAward{},
		DailyActivities:        map[string]map[string]int{},
		Notes:                  []Note{},
		Papers:                 []Paper{},
	}
}

// field returns an addressable value for key.
func (d *StudyData) field(key StateKey) (reflect.Value, error) {
	var ptr any
	switch key {
	case KeyUser:
		ptr = &d.User
	case KeySubjects:
		ptr = &d.Subjects
	case KeyFlashcards:
		ptr = &d.Flashcards
	case KeySessions:
		ptr = &d.Sessions
	case KeyAchievements:
		ptr = &d.Achievements
	case KeyCountdowns:
		ptr = &d.Countdowns
	case KeyVisionBoard:
		ptr = &d.VisionBoard
	case KeyBadges:
		ptr = &d.Badges
	case KeySettings:
		ptr = &d.Settings
	case KeyDailyChallenges:
		ptr = &d.DailyChallenges
	case KeyLastChallengeDate:
		ptr = &d.LastChallengeDate
	case KeyTimetable:
		ptr = &d.Timetable
	case KeyTimetableStudyProgress:
		ptr = &d.TimetableStudyProgress
	case KeyTimetableStudyRewards:
		ptr = &d.TimetableStudyRewards
	case KeyDailyXPAwards:
		ptr = &d.DailyXPAwards
	case KeyDailyActivities:
		ptr = &d.DailyActivities
	case KeyLastCheckIn:
		ptr = &d.LastCheckIn
	case KeyLastXPClaim:
		ptr = &d.LastXPClaim
	case KeyNotes:
		ptr = &d.Notes
	case KeyPapers:
		ptr = &d.Papers
	default:
		return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownStateKey, key)
	}
	return reflect.ValueOf(ptr).Elem(), nil
}

// MarshalField encodes the current value of key. The returned document is
// an independent snapshot of the in-memory value.
func (d *StudyData) MarshalField(key StateKey) (json.RawMessage, error) {
	v, err := d.field(key)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("marshal %q: %w", key, err)
	}
	return raw, nil
}

// SetField replaces the value of key with the decoded document. The previous
// value is discarded, including map contents.
func (d *StudyData) SetField(key StateKey, raw json.RawMessage) error {
	v, err := d.field(key)
	if err != nil {
		return err
	}
	fresh := reflect.New(v.Type())
	if err = json.Unmarshal(raw, fresh.Interface()); err != nil {
		return fmt.Errorf("unmarshal %q: %w", key, err)
	}
	v.Set(fresh.Elem())
	return nil
}

// Clone returns a deep copy of the state tree.
func (d *StudyData) Clone() StudyData {
	raw, err := json.Marshal(d)
	if err != nil {
		return *d
	}
	var out StudyData
	if err = json.Unmarshal(raw, &out); err != nil {
		return *d
	}
	return out
}

// Normalize replaces nil collections with empty ones so the tree always
// serializes collections as arrays and maps.
func (d *StudyData) Normalize() {
	if d.Subjects == nil {
		d.Subjects = []Subject{}
	}
	if d.Flashcards == nil {
		d.Flashcards = []Deck{}
	}
	if d.Sessions == nil {
		d.Sessions = []Session{}
	}
	if d.Achievements == nil {
		d.Achievements = []Achievement{}
	}
	if d.Countdowns == nil {
		d.Countdowns = []Countdown{}
	}
	if d.VisionBoard == nil {
		d.VisionBoard = []VisionItem{}
	}
	if d.Badges == nil {
		d.Badges = []UnlockedBadge{}
	}
	if d.DailyChallenges == nil {
		d.DailyChallenges = []DailyChallenge{}
	}
	if d.Timetable == nil {
		d.Timetable = []TimetableSlot{}
	}
	if d.TimetableStudyProgress == nil {
		d.TimetableStudyProgress = map[string]map[string]int{}
	}
	if d.TimetableStudyRewards == nil {
		d.TimetableStudyRewards = map[string]map[string]bool{}
	}
	if d.DailyXPAwards == nil {
		d.DailyXPAwards = map[string]XPAward{}
	}
	if d.DailyActivities == nil {
		d.DailyActivities = map[string]map[string]int{}
	}
	if d.Notes == nil {
		d.Notes = []Note{}
	}
	if d.Papers == nil {
		d.Papers = []Paper{}
	}
	if d.User.Level == 0 {
		d.User.Level = 1
	}
	if d.Settings == (Settings{}) {
		d.Settings = DefaultSettings()
	}
}
