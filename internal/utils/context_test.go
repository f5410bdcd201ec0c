// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestCallerID(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{name: "set", ctx: WithCallerID(context.Background(), "uid-42"), wantID: "uid-42", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: WithCallerID(context.Background(), "")},
		{name: "foreign key type", ctx: context.WithValue(context.Background(), "callerID", "uid-42")},
		{name: "wrong value type", ctx: context.WithValue(context.Background(), callerIDKey, 42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := CallerID(tt.ctx)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && id != tt.wantID {
				t.Errorf("id = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestContextKeyString(t *testing.T) {
	if callerIDKey.String() != "callerID" {
		t.Errorf("expected 'callerID', got %q", callerIDKey.String())
	}
}
