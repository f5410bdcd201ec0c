// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the facade over the hosted document database and
// identity provider.
//
// The primary abstraction is [Backend]. Every operation returns a
// [models.Result] envelope: callers inspect Success and Message and never see
// transport errors. Failed calls carry a user-facing message translated from
// the backend error code by [app.BackendMessage].
//
// Idempotent calls (document reads, replacing writes, deletes and batches
// with client-chosen ids) are retried with exponential backoff when they fail
// with a transient error: service unavailable, deadline exceeded or a network
// failure. Everything else fails on the first attempt.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/studytrack/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_mock.go -package=mock

// Backend defines typed access to the hosted backend.
type Backend interface {
	// SetToken stores the identity token attached to every authenticated
	// request. SignUp and SignIn call it on success.
	SetToken(token string)

	// Token returns the identity token currently held, or "".
	Token() string

	// SignUp registers username with the identity provider, stores the
	// public profile document and signs the user in.
	SignUp(ctx context.Context, username, password, avatar string) models.Result[models.RemoteSession]

	// SignIn authenticates username and stores the returned token.
	SignIn(ctx context.Context, username, password string) models.Result[models.RemoteSession]

	// SignOut revokes the current token and forgets it.
	SignOut(ctx context.Context) models.Result[struct{}]

	// GetUserProfile reads the public profile of uid.
	GetUserProfile(ctx context.Context, uid string) models.Result[models.RemoteProfile]

	// SetUserProfile merges the public profile fields into users/{uid}.
	SetUserProfile(ctx context.Context, profile models.RemoteProfile) models.Result[struct{}]

	// GetUserState reads every state key stored for uid. Keys never written
	// are absent from the map.
	GetUserState(ctx context.Context, uid string) models.Result[map[models.StateKey]json.RawMessage]

	// GetUserData reads one state key. Data is nil when it was never written.
	GetUserData(ctx context.Context, uid string, key models.StateKey) models.Result[json.RawMessage]

	// SetUserData replaces one state key with raw.
	SetUserData(ctx context.Context, uid string, key models.StateKey, raw json.RawMessage) models.Result[struct{}]

	// GetLeaderboard reads every leaderboard entry in join order.
	GetLeaderboard(ctx context.Context) models.Result[[]models.LeaderboardEntry]

	// UpdateLeaderboardEntry merges fields into the entry of uid, field by
	// field. Concurrent writers race; the last write of a field wins.
	UpdateLeaderboardEntry(ctx context.Context, uid string, fields map[string]any) models.Result[struct{}]

	// SetLeaderboardEntry replaces the entry of entry.UserID wholesale.
	SetLeaderboardEntry(ctx context.Context, entry models.LeaderboardEntry) models.Result[struct{}]

	CreateGroup(ctx context.Context, owner models.GroupMember, name, description string) models.Result[models.StudyGroup]
	GetGroup(ctx context.Context, groupID string) models.Result[models.StudyGroup]
	GetGroupByCode(ctx context.Context, code string) models.Result[models.StudyGroup]
	JoinGroup(ctx context.Context, groupID string, member models.GroupMember) models.Result[struct{}]
	LeaveGroup(ctx context.Context, groupID, userID string) models.Result[struct{}]
	GetGroupMembers(ctx context.Context, groupID string) models.Result[[]models.GroupMember]
	GetUserGroups(ctx context.Context, uid string) models.Result[[]models.StudyGroup]
	ShareDeck(ctx context.Context, groupID, userID string, deck models.Deck) models.Result[models.SharedDeck]
	GetSharedDecks(ctx context.Context, groupID string) models.Result[[]models.SharedDeck]

	// DeleteGroup removes the group with its members, shared decks and
	// messages in one atomic batch. Only the owner may delete a group.
	DeleteGroup(ctx context.Context, groupID, requesterID string) models.Result[struct{}]

	// SendMessage appends a chat message. It is never retried.
	SendMessage(ctx context.Context, groupID string, msg models.GroupMessage) models.Result[models.GroupMessage]

	// GetMessages returns the latest limit messages oldest first. limit is
	// clamped to [1, MaxMessages].
	GetMessages(ctx context.Context, groupID string, limit int) models.Result[[]models.GroupMessage]
}
