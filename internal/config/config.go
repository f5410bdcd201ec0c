// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is every setting of studytrack, merged from the
// environment, the command line and an optional JSON file. Nested sections
// prefix their variables through envPrefix.
type StructuredConfig struct {
	// App holds application-level settings: session signing, identity mode
	// and version.
	App App `envPrefix:"APP_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the hosted backend connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Emulator holds the listen address of the local backend emulator.
	Emulator Emulator `envPrefix:"EMULATOR_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionSignKey is the secret used to sign credentialed session tokens.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim of issued session tokens.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is how long a credentialed session stays valid.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// Mode selects the identity layer used at startup: "local" keeps all data
	// on the device, "remote" signs in against the hosted backend.
	// Env: APP_MODE
	Mode string `env:"MODE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or URI.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// Driver is the database/sql driver name: "sqlite" (pure Go) or
	// "sqlite3" (cgo).
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Adapter holds the hosted backend settings.
type Adapter struct {
	// HTTPAddress is the base URL of the hosted document backend.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// APIKey identifies the application to the hosted backend.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// EmailDomain is the fixed domain used to turn usernames into the
	// email-shaped identifiers required by the identity provider.
	// Env: ADAPTER_EMAIL_DOMAIN
	EmailDomain string `env:"EMAIL_DOMAIN"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryAttempts is the total number of attempts for idempotent calls.
	// Env: ADAPTER_RETRY_ATTEMPTS
	RetryAttempts uint `env:"RETRY_ATTEMPTS"`

	// RetryBaseDelay is the first backoff delay; it doubles on each retry.
	// Env: ADAPTER_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
}

// Emulator holds the settings of the local backend emulator.
type Emulator struct {
	// HTTPAddress is the host:port the emulator listens on.
	// Env: EMULATOR_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SignKey signs the identity tokens issued by the emulator.
	// Env: EMULATOR_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the leaderboard reconciliation worker.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
