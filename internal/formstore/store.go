// Package formstore keeps the state of live auth forms in memory.
//
// Each entry stands for one mounted form. Nothing is persisted: entries
// disappear when deleted, swept for inactivity, or when the process exits.
package formstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/authpage/internal/authform"
)

type entry struct {
	state   authform.FormState
	touched time.Time
}

// Store maps form IDs to their current state. It is safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	forms map[uuid.UUID]*entry
	now   func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		forms: make(map[uuid.UUID]*entry),
		now:   time.Now,
	}
}

// Create mounts a new form with the default state and returns its ID.
func (s *Store) Create() (uuid.UUID, authform.FormState) {
	id := uuid.New()
	state := authform.New()

	s.mu.Lock()
	s.forms[id] = &entry{state: state, touched: s.now()}
	s.mu.Unlock()

	return id, state
}

// Get returns the state of the form with the given ID.
func (s *Store) Get(id uuid.UUID) (authform.FormState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.forms[id]
	if !ok {
		return authform.FormState{}, false
	}
	e.touched = s.now()
	return e.state, true
}

// Put replaces the state of the form with the given ID, mounting it if it
// does not exist.
func (s *Store) Put(id uuid.UUID, state authform.FormState) {
	s.mu.Lock()
	s.forms[id] = &entry{state: state, touched: s.now()}
	s.mu.Unlock()
}

// Update applies fn to the state of the form with the given ID and stores
// the result. fn runs under the store lock, so concurrent updates of one
// form are applied one after another. It reports false, without calling fn,
// when the form is not mounted.
func (s *Store) Update(id uuid.UUID, fn func(authform.FormState) authform.FormState) (authform.FormState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.forms[id]
	if !ok {
		return authform.FormState{}, false
	}
	e.state = fn(e.state)
	e.touched = s.now()
	return e.state, true
}

// Delete unmounts a form. Deleting an unknown ID is a no-op.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.forms, id)
	s.mu.Unlock()
}

// Len returns the number of mounted forms.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

// Sweep evicts forms that have not been read or written for longer than
// idle, and returns how many were removed.
func (s *Store) Sweep(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.forms {
		if e.touched.Before(cutoff) {
			delete(s.forms, id)
			removed++
		}
	}
	return removed
}
