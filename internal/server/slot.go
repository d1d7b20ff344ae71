package server

import (
	"sync"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
)

// Slot holds at most one pending directive. A newer directive overwrites an
// unapplied older one; nothing queues behind it.
type Slot struct {
	mu      sync.Mutex
	pending *directive.Directive
	ready   chan struct{}
}

// NewSlot returns an empty slot.
func NewSlot() *Slot {
	return &Slot{ready: make(chan struct{}, 1)}
}

// Put stores d, replacing any pending directive. It reports whether an
// unapplied directive was discarded.
func (s *Slot) Put(d directive.Directive) bool {
	s.mu.Lock()
	replaced := s.pending != nil
	s.pending = &d
	s.mu.Unlock()

	select {
	case s.ready <- struct{}{}:
	default:
	}
	return replaced
}

// Take removes and returns the pending directive.
func (s *Slot) Take() (directive.Directive, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return directive.Directive{}, false
	}
	d := *s.pending
	s.pending = nil
	return d, true
}

// Ready is signalled after a Put. A receive may find the slot already
// drained by an earlier Take.
func (s *Slot) Ready() <-chan struct{} {
	return s.ready
}
