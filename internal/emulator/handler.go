// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package emulator implements an in-process emulator of the hosted document
// database and identity provider used by the remote backend adapter.
//
// The emulator serves the same REST surface as the hosted backend:
// sign-up, sign-in and sign-out under /v1/auth, document reads and writes
// under /v1/documents, collection queries under /v1/collections and atomic
// batches under /v1/batch. State lives in memory and is lost when the
// process exits. Tests run it behind httptest.Server; the emulator binary
// serves it for local development.
package emulator

import (
	"sync/atomic"
	"time"

	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/utils"
)

const (
	tokenIssuer   = "studytrack-emulator"
	tokenDeviceID = "emulator"
	tokenDuration = 24 * time.Hour
)

// Handler serves the emulated backend.
type Handler struct {
	documents *documentStore
	identity  *identityStore
	faults    *faultInjector
	requests  atomic.Int64

	signKey string
	apiKey  string
	clock   utils.Clock

	logger *logger.Logger
}

// NewHandler creates an empty emulator. When cfg.APIKey is set every request
// must carry it in the X-Api-Key header.
func NewHandler(cfg config.EmulatorConfig, logger *logger.Logger) *Handler {
	ids := utils.NewUUIDGenerator()
	logger.Info().Msg("emulator handler created")
	return &Handler{
		documents: newDocumentStore(ids),
		identity:  newIdentityStore(ids),
		faults:    &faultInjector{},
		signKey:   cfg.SignKey,
		apiKey:    cfg.APIKey,
		clock:     utils.SystemClock{},
		logger:    logger,
	}
}

// FailNext makes the next n requests fail with status and error code before
// reaching any route.
func (h *Handler) FailNext(status int, code string, n int) {
	h.faults.add(status, code, n)
}

// InjectedFaults returns how many requests were failed by FailNext.
func (h *Handler) InjectedFaults() int {
	return h.faults.injected()
}

// Requests returns the number of requests received, including failed ones.
func (h *Handler) Requests() int64 {
	return h.requests.Load()
}
