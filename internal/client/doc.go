// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the studytrack process root. [App] resolves the active
// identity, opens its workspace, keeps the leaderboard reconciled in the
// background and hands the terminal to the dashboard until the user quits.
package client
