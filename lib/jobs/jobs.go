// Package jobs tracks the progress of long-running background tasks
// through an explicit state object owned by the task supervisor,
// pollers receive copies and never share mutable state with the task.
package jobs

import (
	"fmt"
	"sync"
	"time"
)

type Snapshot struct {
	Running   bool              `json:"running"`
	Step      string            `json:"step"`
	Detail    string            `json:"detail"`
	Counts    map[string]int    `json:"counts,omitempty"`
	Errors    []string          `json:"errors,omitempty"`
	StartedAt time.Time         `json:"started_at"`
	EndedAt   time.Time         `json:"ended_at"`
}

// Status is safe for concurrent use.
type Status struct {
	mu   sync.Mutex
	snap Snapshot
}

var ErrAlreadyRunning = fmt.Errorf("a job is already running")

// Start transitions the status to running, failing if a run is
// already in flight.
func (s *Status) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Running {
		return ErrAlreadyRunning
	}
	s.snap = Snapshot{
		Running:   true,
		Step:      "starting",
		StartedAt: time.Now(),
	}
	return nil
}

func (s *Status) SetStep(step, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Step = step
	s.snap.Detail = detail
}

func (s *Status) SetCount(key string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Counts == nil {
		s.snap.Counts = map[string]int{}
	}
	s.snap.Counts[key] = value
}

func (s *Status) AddError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Errors = append(s.snap.Errors, err.Error())
}

func (s *Status) Finish(step, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Running = false
	s.snap.Step = step
	s.snap.Detail = detail
	s.snap.EndedAt = time.Now()
}

// Poll returns a copy of the current state.
func (s *Status) Poll() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snap
	if s.snap.Counts != nil {
		snap.Counts = make(map[string]int, len(s.snap.Counts))
		for k, v := range s.snap.Counts {
			snap.Counts[k] = v
		}
	}
	snap.Errors = append([]string(nil), s.snap.Errors...)
	return snap
}
