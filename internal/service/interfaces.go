// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the state layer of studytrack: the two local
// identity layers, the hosted identity, the pluggable state backends, the
// application [Store] with its gamification rules, the leaderboards, the
// focus timer and the study group service.
//
// Expected failures (validation, not-found, wrong credentials) are returned
// as the sentinel errors of this package; [MessageFor] turns them into
// dashboard text. Idempotency guards are not errors: they are reported
// through [models.XPResult] and [models.ClaimResult].
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/studytrack/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountDirectory manages password-less local accounts and the
// current-account pointer.
type AccountDirectory interface {
	// CreateAccount stores a new account with default state and makes it
	// current. Usernames are unique case-insensitively.
	CreateAccount(ctx context.Context, username, avatar string) (models.Account, error)

	// LoginAccount makes accountID current and stamps today's date as its
	// last login.
	LoginAccount(ctx context.Context, accountID string) (models.Account, error)

	// GetCurrentAccount returns the current account, if any.
	GetCurrentAccount(ctx context.Context) (models.Account, bool)

	// UpdateCurrentAccount applies a typed partial update to the current
	// account. It is a no-op without a current account.
	UpdateCurrentAccount(ctx context.Context, update models.AccountUpdate) error

	// Logout clears the current-account pointer. Account data is kept.
	Logout(ctx context.Context) error

	// GetAllUserProfiles projects every stored account into a summary.
	GetAllUserProfiles(ctx context.Context) []models.UserSummary

	ListAccounts(ctx context.Context) []models.Account
	DeleteAccount(ctx context.Context, accountID string) error

	Account(ctx context.Context, accountID string) (models.Account, bool)
	SetAccountData(ctx context.Context, accountID string, key models.StateKey, raw json.RawMessage) error
}

// AuthManager is the credentialed identity layer: username and password,
// device-bound session tokens with a 30 day expiry and remembered devices.
type AuthManager interface {
	SignUp(ctx context.Context, username, password, avatar string) (models.Account, error)

	// Login fails with [ErrInvalidCredentials] both for an unknown username
	// and for a wrong password. rememberDevice persists the session and
	// adds the device to the account.
	Login(ctx context.Context, username, password string, rememberDevice bool) (models.Account, error)

	Logout(ctx context.Context) error

	// IsAuthenticated validates the active session. An expired or invalid
	// session, a deleted account or a device that is no longer remembered
	// logs the device out as a side effect.
	IsAuthenticated(ctx context.Context) bool

	CurrentAccount(ctx context.Context) (models.Account, bool)
	ChangePassword(ctx context.Context, current, next string) error
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Account, error)

	// DeleteAccount removes the signed-in account and its local slots
	// after re-checking password.
	DeleteAccount(ctx context.Context, password string) error

	// DeviceID returns the identifier of this device, creating it once.
	DeviceID(ctx context.Context) string

	Account(ctx context.Context, accountID string) (models.Account, bool)
	SetAccountData(ctx context.Context, accountID string, key models.StateKey, raw json.RawMessage) error
}

// RemoteIdentity signs users in against the hosted backend and remembers
// the session on the device.
type RemoteIdentity interface {
	SignUp(ctx context.Context, username, password, avatar string) (models.RemoteSession, error)
	SignIn(ctx context.Context, username, password string) (models.RemoteSession, error)
	SignOut(ctx context.Context) error

	// Restore loads the remembered session and hands its token to the
	// backend client.
	Restore(ctx context.Context) (models.RemoteSession, bool)
}

// StateBackend persists the state tree of one user. Implementations exist
// for the account directory, the auth manager and the hosted backend.
type StateBackend interface {
	// Name identifies the backend in logs.
	Name() string

	// UserID returns the owner of the state.
	UserID() string

	// Load returns every stored state key. Keys never written are absent.
	Load(ctx context.Context) (map[models.StateKey]json.RawMessage, error)

	// Save replaces one state key.
	Save(ctx context.Context, key models.StateKey, raw json.RawMessage) error
}

// Leaderboard keeps one aggregate entry per user and ranks them.
type Leaderboard interface {
	// InitializeUser creates the entry of userID or refreshes its name and
	// avatar.
	InitializeUser(ctx context.Context, userID, username, avatar string) error

	// UpdateStat adds value to the category when increment is set and
	// replaces it otherwise.
	UpdateStat(ctx context.Context, userID string, category models.LeaderboardCategory, value int, increment bool) error

	UpdateStudyTime(ctx context.Context, userID string, minutes int, subject string) error
	UpdateStudySessions(ctx context.Context, userID string) error
	UpdateFlashcards(ctx context.Context, userID string, count int) error
	UpdateXP(ctx context.Context, userID string, totalXP int) error
	UpdateStreak(ctx context.Context, userID string, streak int) error

	// GetLeaderboard filters entries by last activity and subject, then
	// stable-sorts them descending by category.
	GetLeaderboard(ctx context.Context, category models.LeaderboardCategory, filter models.TimeFilter, subject string) ([]models.LeaderboardEntry, error)

	// SyncUser overwrites the entry of entry.UserID wholesale. JoinedAt of
	// an existing entry is kept.
	SyncUser(ctx context.Context, entry models.LeaderboardEntry) error
}

// SessionLogger records completed study intervals. [Store] implements it.
type SessionLogger interface {
	LogSession(ctx context.Context, duration float64, subjectID string) (models.Session, error)
}

// GroupService manages hosted study groups and their chat.
type GroupService interface {
	// CreateGroup creates a group owned by owner and returns it with its
	// join code.
	CreateGroup(ctx context.Context, owner models.GroupMember, name, description string) (models.StudyGroup, error)

	// JoinByCode adds member to the group with the given join code. Codes
	// are matched case-insensitively.
	JoinByCode(ctx context.Context, code string, member models.GroupMember) (models.StudyGroup, error)

	Leave(ctx context.Context, groupID, userID string) error

	// Delete removes the group and everything in it. Only the owner may
	// delete a group.
	Delete(ctx context.Context, groupID, requesterID string) error

	Members(ctx context.Context, groupID string) ([]models.GroupMember, error)
	UserGroups(ctx context.Context, userID string) ([]models.StudyGroup, error)
	ShareDeck(ctx context.Context, groupID, userID string, deck models.Deck) (models.SharedDeck, error)
	SharedDecks(ctx context.Context, groupID string) ([]models.SharedDeck, error)

	// SendMessage appends a chat message from author.
	SendMessage(ctx context.Context, groupID string, author models.GroupMember, text string) (models.GroupMessage, error)

	// Messages returns the latest limit messages, oldest first.
	Messages(ctx context.Context, groupID string, limit int) ([]models.GroupMessage, error)
}
