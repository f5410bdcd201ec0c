// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// Identity modes accepted by App.Mode.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)

// Local database drivers accepted by DB.Driver.
const (
	DriverModernc = "sqlite"
	DriverCGO     = "sqlite3"
)

// validate checks the merged [StructuredConfig] before it is mapped into a
// runtime view. Only values that are set are checked; required values are
// enforced by the client and emulator views.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Mode != "" && !validMode(cfg.App.Mode) {
		return ErrInvalidAppConfigs
	}
	if cfg.Storage.DB.Driver != "" && !validDriver(cfg.Storage.DB.Driver) {
		return ErrInvalidStorageConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if !validDriver(cfg.Storage.DB.Driver) {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionSignKey == "" || !validMode(cfg.App.Mode) || cfg.App.SessionDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.Mode == ModeRemote {
		if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryAttempts == 0 {
			return ErrInvalidAdapterConfigs
		}
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *EmulatorConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.SignKey == "" {
		return ErrInvalidEmulatorConfigs
	}
	return nil
}

func validMode(mode string) bool {
	return mode == ModeLocal || mode == ModeRemote
}

func validDriver(driver string) bool {
	return driver == DriverModernc || driver == DriverCGO
}
