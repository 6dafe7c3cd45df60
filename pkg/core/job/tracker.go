// Package job runs generations in the background and keeps their
// Pending -> Succeeded | Failed state so a client can poll for it.
package job

import (
	"context"
	"errors"
	"sync"
	"time"

	"smart_performance/pkg/core/generation"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

var ErrNotFound = errors.New("job: not found")

// Generator is satisfied by *generation.Orchestrator.
type Generator interface {
	Generate(ctx context.Context, task generation.Task, input string) (string, error)
}

// Job is a snapshot; mutate only through the Tracker.
type Job struct {
	ID        string
	Task      generation.Task
	Status    Status
	Text      string
	Err       error
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (j Job) Done() bool {
	return j.Status != StatusPending
}

type Tracker struct {
	gen       Generator
	retention time.Duration
	now       func() time.Time

	mu   sync.RWMutex
	jobs map[string]*Job
	subs map[string][]chan struct{}
}

func NewTracker(gen Generator, retention time.Duration) *Tracker {
	return &Tracker{
		gen:       gen,
		retention: retention,
		now:       time.Now,
		jobs:      make(map[string]*Job),
		subs:      make(map[string][]chan struct{}),
	}
}

// Start records a pending job and runs the generation in a goroutine. The
// generation gets its own context so it outlives the HTTP request that
// started it.
func (t *Tracker) Start(task generation.Task, input string) Job {
	now := t.now()
	j := &Job{
		ID:        uuid.New().String(),
		Task:      task,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.mu.Lock()
	t.jobs[j.ID] = j
	snapshot := *j
	t.mu.Unlock()

	go func() {
		text, err := t.gen.Generate(context.Background(), task, input)
		t.finish(j.ID, text, err)
	}()

	return snapshot
}

func (t *Tracker) finish(id, text string, err error) {
	t.mu.Lock()
	j, ok := t.jobs[id]
	if !ok {
		t.mu.Unlock()
		return
	}
	if err != nil {
		j.Status = StatusFailed
		j.Err = err
	} else {
		j.Status = StatusSucceeded
		j.Text = text
	}
	j.UpdatedAt = t.now()
	waiters := t.subs[id]
	delete(t.subs, id)
	t.mu.Unlock()

	for _, ch := range waiters {
		close(ch)
	}
}

func (t *Tracker) Get(id string) (Job, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	j, ok := t.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return *j, nil
}

// Wait blocks until the job leaves Pending or ctx is done.
func (t *Tracker) Wait(ctx context.Context, id string) (Job, error) {
	t.mu.Lock()
	j, ok := t.jobs[id]
	if !ok {
		t.mu.Unlock()
		return Job{}, ErrNotFound
	}
	if j.Done() {
		snapshot := *j
		t.mu.Unlock()
		return snapshot, nil
	}
	ch := make(chan struct{})
	t.subs[id] = append(t.subs[id], ch)
	t.mu.Unlock()

	select {
	case <-ch:
		return t.Get(id)
	case <-ctx.Done():
		return Job{}, ctx.Err()
	}
}

// Sweep drops finished jobs older than the retention window and returns how
// many were removed.
func (t *Tracker) Sweep() int {
	cutoff := t.now().Add(-t.retention)

	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for id, j := range t.jobs {
		if j.Done() && j.UpdatedAt.Before(cutoff) {
			delete(t.jobs, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (t *Tracker) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Sweep()
		}
	}
}
