// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
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

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)
	ws.Run()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()
	ws.Run()

	if w.runCount != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", w.runCount)
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}

// recordingJob fakes the refresh job to capture Start arguments.
type recordingJob struct {
	userID   string
	interval time.Duration
	started  int
}

func (r *recordingJob) Start(_ context.Context, userID string, interval time.Duration) {
	r.userID = userID
	r.interval = interval
	r.started++
}

func (r *recordingJob) Stop() {}

func TestVaultRefreshWorker_Run(t *testing.T) {
	job := &recordingJob{}
	w := NewVaultRefreshWorker(context.Background(), job, "uid-1", 30*time.Second)

	w.Run()

	if job.started != 1 {
		t.Fatalf("expected job started once, got %d", job.started)
	}
	if job.userID != "uid-1" {
		t.Errorf("expected userID uid-1, got %s", job.userID)
	}
	if job.interval != 30*time.Second {
		t.Errorf("expected interval 30s, got %s", job.interval)
	}
}
