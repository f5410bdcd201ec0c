// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/internal/validators"
	"github.com/MKhiriev/studytrack/models"
)

const (
	// GuestUserID owns the state of a store without an identity.
	GuestUserID = "guest"
	guestName   = "Student"
)

// StoreDeps are the collaborators of a [Store]. KV is required; the rest
// fall back to defaults when nil.
type StoreDeps struct {
	KV store.KeyValueStore

	// Backend persists the state of the active identity. A nil backend
	// keeps transient defaults that only live in the local slots of the
	// guest user.
	Backend StateBackend

	// Leaderboard receives best-effort aggregate updates. Nil disables them.
	Leaderboard Leaderboard

	Validator validators.Validator
	IDs       utils.IDGenerator
	Clock     utils.Clock
	Logger    *logger.Logger
}

// Store owns the in-memory state tree of the active user. Mutations are
// applied in memory first and then persisted to the local slot of the key
// and to the backend. Persistence failures are logged, never returned.
//
// A Store is safe for concurrent use; calls are serialised.
type Store struct {
	kv          store.KeyValueStore
	backend     StateBackend
	leaderboard Leaderboard
	validator   validators.Validator
	ids         utils.IDGenerator
	clock       utils.Clock

	mu     sync.Mutex
	userID string
	state  models.StudyData

	logger *logger.Logger
}

// NewStore constructs a Store. Call [Store.Init] before use.
func NewStore(deps StoreDeps) *Store {
	s := &Store{
		kv:          deps.KV,
		backend:     deps.Backend,
		leaderboard: deps.Leaderboard,
		validator:   deps.Validator,
		ids:         deps.IDs,
		clock:       deps.Clock,
		logger:      deps.Logger,
		userID:      GuestUserID,
	}
	if s.validator == nil {
		s.validator = validators.NewValidator()
	}
	if s.ids == nil {
		s.ids = utils.NewUUIDGenerator()
	}
	if s.clock == nil {
		s.clock = utils.SystemClock{}
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	if s.backend != nil && s.backend.UserID() != "" {
		s.userID = s.backend.UserID()
	}
	s.state = models.DefaultStudyData(s.userID, guestName, "", utils.Today(s.clock))
	return s
}

// UserID returns the owner of the state.
func (s *Store) UserID() string {
	return s.userID
}

// BackendName names the active state backend, or "" for transient state.
func (s *Store) BackendName() string {
	if s.backend == nil {
		return ""
	}
	return s.backend.Name()
}

// Init loads the state: backend values first, then local slots on top of
// them, then defaults for anything missing. It then runs the streak check,
// the daily challenge reset, the login challenge and registers the user on
// the leaderboard.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithAccount(s.userID)
	today := utils.Today(s.clock)
	s.state = models.DefaultStudyData(s.userID, guestName, "", today)

	if s.backend != nil {
		data, err := s.backend.Load(ctx)
		if err != nil {
			log.Warn().Err(err).Str("func", "Store.Init").Str("backend", s.backend.Name()).Msg("failed to load backend state, using local state")
		}
		for key, raw := range data {
			s.apply(key, raw, "backend")
		}
	}

	for _, key := range models.AllStateKeys {
		if raw := s.kv.Get(ctx, stateSlot(s.userID, key), store.NamespacePrivate); len(raw) > 0 {
			s.apply(key, raw, "local")
		}
	}

	s.state.Normalize()
	s.state.User.UserID = s.userID

	s.checkStreak(ctx)
	s.checkDailyChallengesReset(ctx)
	s.updateChallengeProgress(ctx, models.ChallengeLogin, 1)

	if s.leaderboard != nil {
		if err := s.leaderboard.InitializeUser(ctx, s.userID, s.state.User.Name, s.state.User.Avatar); err != nil {
			log.Warn().Err(err).Str("func", "Store.Init").Msg("failed to register on leaderboard")
		}
	}
	log.Info().Str("func", "Store.Init").Str("backend", s.BackendName()).Msg("state loaded")
}

func (s *Store) apply(key models.StateKey, raw json.RawMessage, source string) {
	if len(raw) == 0 || string(raw) == "null" {
		return
	}
	if err := s.state.SetField(key, raw); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "Store.apply").
			Str("key", string(key)).
			Str("source", source).
			Msg("ignoring malformed state value")
	}
}

// Save persists key and resynchronises the leaderboard entry. Failures are
// logged.
func (s *Store) Save(ctx context.Context, key models.StateKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persist(ctx, key)
	s.syncLeaderboard(ctx)
}

// persist writes the snapshot of each key to its local slot and to the
// backend. The snapshot is encoded before any write, so later in-memory
// mutations never leak into a pending write.
func (s *Store) persist(ctx context.Context, keys ...models.StateKey) {
	for _, key := range keys {
		raw, err := s.state.MarshalField(key)
		if err != nil {
			s.logger.Err(err).Str("func", "Store.persist").Str("key", string(key)).Msg("failed to encode state")
			continue
		}

		if err = s.kv.Set(ctx, stateSlot(s.userID, key), raw, store.NamespacePrivate); err != nil {
			s.logger.Warn().Err(err).Str("func", "Store.persist").Str("key", string(key)).Msg("failed to write local slot")
		}

		if s.backend == nil {
			continue
		}
		if err = s.backend.Save(ctx, key, raw); err != nil {
			s.logger.Warn().Err(err).
				Str("func", "Store.persist").
				Str("key", string(key)).
				Str("backend", s.backend.Name()).
				Msg("failed to write backend state")
		}
	}
}

// Snapshot returns a deep copy of the whole state tree.
func (s *Store) Snapshot() models.StudyData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) User() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User
}

func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

func (s *Store) Sessions() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state.Sessions)
}

func (s *Store) Achievements() []models.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state.Achievements)
}

func (s *Store) Badges() []models.UnlockedBadge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state.Badges)
}

func (s *Store) DailyChallenges() []models.DailyChallenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state.DailyChallenges)
}

// clone deep-copies v through its JSON form. Values that do not survive a
// round trip are returned as the zero value.
func clone[T any](v T) T {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out
	}
	_ = json.Unmarshal(raw, &out)
	return out
}

func (s *Store) today() string {
	return utils.Today(s.clock)
}

// pushLeaderboard runs a best-effort leaderboard update.
func (s *Store) pushLeaderboard(fn string, update func(Leaderboard) error) {
	if s.leaderboard == nil {
		return
	}
	if err := update(s.leaderboard); err != nil {
		s.logger.Warn().Err(err).Str("func", fn).Str("account_id", s.userID).Msg("leaderboard update failed")
	}
}
