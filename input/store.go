// Package input holds the key state shared between the host's input poller
// and the physics step.
package input

import (
	"sync"

	cfg "github.com/automoto/spritesandbox/config"
)

// Snapshot is the held state of the movement actions at one instant.
type Snapshot struct {
	Left   bool
	Right  bool
	Jump   bool
	Crouch bool
	Fast   bool
}

// Store is a mutex-protected set of held action flags. Writers may run on
// any goroutine; readers take a Snapshot once per tick.
type Store struct {
	mu     sync.Mutex
	held   [cfg.ActionCount]bool
	leases map[uint64]struct{}
	nextID uint64
}

func NewStore() *Store {
	return &Store{leases: make(map[uint64]struct{})}
}

// Set records whether an action is held.
func (s *Store) Set(action cfg.ActionID, down bool) {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return
	}
	s.mu.Lock()
	s.held[action] = down
	s.mu.Unlock()
}

// SetAll replaces every flag at once.
func (s *Store) SetAll(held [cfg.ActionCount]bool) {
	s.mu.Lock()
	s.held = held
	s.mu.Unlock()
}

// Snapshot returns the current movement state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Left:   s.held[cfg.ActionMoveLeft],
		Right:  s.held[cfg.ActionMoveRight],
		Jump:   s.held[cfg.ActionJump],
		Crouch: s.held[cfg.ActionCrouch],
		Fast:   s.held[cfg.ActionFast],
	}
}

// Acquire registers a new reader. The returned lease must be released by
// its owner before the owner is dropped.
func (s *Store) Acquire() *Lease {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.leases[s.nextID] = struct{}{}
	return &Lease{store: s, id: s.nextID}
}

// Active returns the number of leases not yet released.
func (s *Store) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leases)
}

func (s *Store) release(id uint64) {
	s.mu.Lock()
	delete(s.leases, id)
	s.mu.Unlock()
}

// Lease is a reader's capability on a Store. A released lease reads as no
// input held.
type Lease struct {
	store *Store
	id    uint64
	once  sync.Once
	done  bool
}

// Snapshot returns the store's movement state, or the zero Snapshot once
// released.
func (l *Lease) Snapshot() Snapshot {
	if l == nil || l.done {
		return Snapshot{}
	}
	return l.store.Snapshot()
}

// Release unregisters the lease. Safe to call more than once.
func (l *Lease) Release() {
	if l == nil {
		return
	}
	l.once.Do(func() {
		l.done = true
		l.store.release(l.id)
	})
}

// Released reports whether Release has been called.
func (l *Lease) Released() bool {
	return l == nil || l.done
}
