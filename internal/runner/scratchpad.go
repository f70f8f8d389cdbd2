package runner

import (
	"sync"

	"github.com/google/uuid"

	"cotprompt/internal/runner/types"
)

// Scratchpad is the reasoning trace of one agent run. It only grows, and
// nothing may follow a final unit. Readers get copies, so a render always
// sees a consistent snapshot.
type Scratchpad struct {
	mu    sync.RWMutex
	runID string
	units []types.ScratchpadUnit
}

// NewScratchpad creates an empty scratchpad with a fresh run ID.
func NewScratchpad() *Scratchpad {
	return &Scratchpad{runID: uuid.NewString()}
}

// RunID identifies the run this trace belongs to.
func (s *Scratchpad) RunID() string {
	return s.runID
}

// Append adds a unit to the end of the trace.
// Returns ErrScratchpadFinalized once a final unit has been appended.
func (s *Scratchpad) Append(unit types.ScratchpadUnit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.units); n > 0 && s.units[n-1].IsFinal() {
		return ErrScratchpadFinalized
	}
	s.units = append(s.units, unit)
	return nil
}

// Units returns a copy of the trace.
func (s *Scratchpad) Units() []types.ScratchpadUnit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.ScratchpadUnit, len(s.units))
	copy(out, s.units)
	return out
}

// Len returns the number of units.
func (s *Scratchpad) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.units)
}

// Finished reports whether the trace ends with a final unit.
func (s *Scratchpad) Finished() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.units)
	return n > 0 && s.units[n-1].IsFinal()
}
