// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// recordingWorker appends its id to a shared log on Start and Stop.
type recordingWorker struct {
	id  int
	log *[]int
}

func (r *recordingWorker) Start(context.Context) {
	*r.log = append(*r.log, r.id)
}

func (r *recordingWorker) Stop() {
	*r.log = append(*r.log, -r.id)
}

func TestWorkers_StartStopOrder(t *testing.T) {
	var log []int
	ws := NewWorkers(
		&recordingWorker{id: 1, log: &log},
		nil,
		&recordingWorker{id: 2, log: &log},
		&recordingWorker{id: 3, log: &log},
	)

	ws.Start(context.Background())
	ws.Stop()

	expected := []int{1, 2, 3, -3, -2, -1}
	if len(log) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(log), log)
	}
	for i, v := range expected {
		if log[i] != v {
			t.Errorf("expected log[%d]=%d, got %d", i, v, log[i])
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_ZeroValue(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}
