// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Account is a locally stored identity together with the full study state
// that belongs to it.
//
// Accounts created through the account directory carry no PasswordHash and no
// Devices. Accounts created through the credentialed flow carry both.
// StudyData is embedded so the JSON document keeps every state key at the top
// level of the account record.
type Account struct {
	// AccountID is the opaque identifier generated on creation.
	AccountID string `json:"accountId"`

	// Username is the display and lookup name. Uniqueness is enforced
	// case-insensitively by both account layers.
	Username string `json:"username"`

	// PasswordHash is the encoded password hash (credentialed accounts only).
	PasswordHash string `json:"passwordHash,omitempty"`

	// Avatar is a glyph or short string shown next to the username.
	Avatar string `json:"avatar"`

	// CreatedAt is the creation instant.
	CreatedAt time.Time `json:"createdAt"`

	// LastLogin is the calendar date (YYYY-MM-DD) of the last login.
	LastLogin string `json:"lastLogin"`

	// Devices lists device identifiers remembered for this account.
	Devices []string `json:"devices,omitempty"`

	StudyData
}

// HasDevice reports whether deviceID is remembered for the account.
func (a Account) HasDevice(deviceID string) bool {
	for _, d := range a.Devices {
		if d == deviceID {
			return true
		}
	}
	return false
}

// UserProfile is the gamified profile shown on the dashboard.
type UserProfile struct {
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Level     int    `json:"level"`
	XP        int    `json:"xp"`
	Streak    int    `json:"streak"`
	LastLogin string `json:"lastLogin"`
	UserID    string `json:"userId"`
}

// UserSummary is a leaderboard-shaped projection of a stored account.
type UserSummary struct {
	UserID            string `json:"userId"`
	Username          string `json:"username"`
	Avatar            string `json:"avatar"`
	Level             int    `json:"level"`
	XP                int    `json:"xp"`
	Streak            int    `json:"streak"`
	TotalStudyMinutes int    `json:"totalStudyMinutes"`
	SessionsCount     int    `json:"sessionsCount"`
}

// AccountUpdate is a typed partial update of the current account.
//
// User is merged field by field: zero-valued fields keep the stored value.
// Settings follows [SettingsUpdate]. Fields replaces whole state keys with
// the supplied documents.
type AccountUpdate struct {
	Avatar    *string
	LastLogin *string
	User      *UserProfile
	Settings  *SettingsUpdate
	Fields    map[StateKey]json.RawMessage
}

// ProfileUpdate changes the public identity of a credentialed account.
type ProfileUpdate struct {
	Username *string
	Avatar   *string
}

// AuthSession is the active credentialed session of a device.
type AuthSession struct {
	UserID    string    `json:"userId"`
	DeviceID  string    `json:"deviceId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Token     string    `json:"token"`
}

// Expired reports whether the session is past its expiry at now.
func (s AuthSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// RemoteSession is the persisted identity of a hosted backend sign-in.
type RemoteSession struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// RemoteProfile is the public profile document of a hosted user.
type RemoteProfile struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}
