// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/studytrack/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive surface driven by [App].
type UI interface {
	// IdentityFlow lets the user pick an identity. It returns
	// tui.ErrUserQuit when the user leaves instead.
	IdentityFlow(ctx context.Context) error

	// Dashboard blocks until the user quits or logs out.
	Dashboard(ctx context.Context, ws *service.Workspace) (logout bool, err error)
}
