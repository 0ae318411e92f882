// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vndocs/govportal/internal/logger"
)

// mockWorker tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

type countingRefresher struct {
	calls atomic.Int64
}

func (c *countingRefresher) RefreshAllData(_ context.Context) {
	c.calls.Add(1)
}

func TestRefreshJob_TicksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refresher := &countingRefresher{}
	job := NewRefreshJob(ctx, refresher, 5*time.Millisecond, logger.Nop())
	job.Run()

	deadline := time.After(2 * time.Second)
	for refresher.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 2 refreshes, got %d", refresher.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	time.Sleep(20 * time.Millisecond)
	after := refresher.calls.Load()
	time.Sleep(20 * time.Millisecond)

	if got := refresher.calls.Load(); got != after {
		t.Errorf("refresh job kept ticking after cancel: %d -> %d", after, got)
	}
}

func TestRefreshJob_DisabledWithoutInterval(t *testing.T) {
	refresher := &countingRefresher{}
	job := NewRefreshJob(context.Background(), refresher, 0, logger.Nop())
	job.Run()

	time.Sleep(20 * time.Millisecond)
	if got := refresher.calls.Load(); got != 0 {
		t.Errorf("disabled job must not refresh, got %d calls", got)
	}
}
