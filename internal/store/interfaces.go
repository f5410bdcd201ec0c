// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the local persistence layer of studytrack: a namespaced
// key-value store over SQLite.
//
// Values are JSON documents. A read never fails: a missing or corrupt value
// reads as absent, which is nil for [NamespacePrivate] and an empty JSON
// array for [NamespaceShared].
package store

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/kv_store_mock.go -package=mock

// Namespace separates per-account data from data shared by every account on
// the device.
type Namespace string

const (
	// NamespacePrivate holds per-account slots.
	NamespacePrivate Namespace = "private"
	// NamespaceShared holds slots visible to every account, such as the
	// local leaderboard.
	NamespaceShared Namespace = "shared"
)

// KeyValueStore is a persistent key-value store with two namespaces.
type KeyValueStore interface {
	// Get returns the stored JSON document for key. Missing or corrupt
	// values read as nil in the private namespace and as [] in the shared
	// namespace. Storage failures are logged and read as absent.
	Get(ctx context.Context, key string, ns Namespace) json.RawMessage

	// Set stores value under key. A json.RawMessage or []byte value is
	// stored as-is after validation; anything else is JSON-encoded.
	Set(ctx context.Context, key string, value any, ns Namespace) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string, ns Namespace) error

	// Has reports whether key holds a readable value.
	Has(ctx context.Context, key string, ns Namespace) bool

	// Keys lists keys starting with prefix in ascending order.
	Keys(ctx context.Context, prefix string, ns Namespace) []string

	// RemovePrefix deletes every key starting with prefix.
	RemovePrefix(ctx context.Context, prefix string, ns Namespace) error

	// Close releases the underlying database.
	Close() error
}
