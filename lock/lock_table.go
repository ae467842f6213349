package lock

import (
	"sync"
	"time"
)

// Table holds the active slot locks for one club scope. A lock is binary,
// not a value with a watermark, so idempotence is identity-based: the first
// writer for a SlotID wins until the lock is released or swept, and
// redelivery of the same lock notification is inert. Locks are never
// mutated in place; the only transitions are insert and remove.
type Table struct {
	mu        sync.RWMutex
	locks     map[string]SlotLock
	listeners []func()
}

func NewTable() *Table {
	return &Table{locks: map[string]SlotLock{}}
}

// OnChange registers fn to be called after every effective mutation.
// Listeners must be registered before the table is shared between
// goroutines.
func (t *Table) OnChange(fn func()) {
	t.listeners = append(t.listeners, fn)
}

// Acquire inserts the lock with LockedAt stamped from now. A second acquire
// for the same SlotID is suppressed and keeps the original insertion time.
// Returns whether the lock was inserted.
func (t *Table) Acquire(l SlotLock, now time.Time) bool {
	t.mu.Lock()

	if _, ok := t.locks[l.SlotID]; ok {
		t.mu.Unlock()
		return false
	}

	l.LockedAt = now
	t.locks[l.SlotID] = l
	t.mu.Unlock()

	t.notify()

	return true
}

// Release removes the lock with the given SlotID; absent IDs are a no-op.
func (t *Table) Release(slotID string) bool {
	t.mu.Lock()

	if _, ok := t.locks[slotID]; !ok {
		t.mu.Unlock()
		return false
	}

	delete(t.locks, slotID)
	t.mu.Unlock()

	t.notify()

	return true
}

// Sweep removes every lock whose age at now exceeds HoldTTL and returns the
// removed locks. It is a pure function of the table contents and now; the
// caller owns the clock.
func (t *Table) Sweep(now time.Time) []SlotLock {
	t.mu.Lock()

	var expired []SlotLock

	for slotID, l := range t.locks {
		if l.Expired(now) {
			expired = append(expired, l)
			delete(t.locks, slotID)
		}
	}

	t.mu.Unlock()

	if len(expired) != 0 {
		t.notify()
	}

	return expired
}

func (t *Table) Get(slotID string) (SlotLock, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	l, ok := t.locks[slotID]

	return l, ok
}

// IsSlotLocked reports whether any lock on the court intersects [start, end).
func (t *Table) IsSlotLocked(courtID string, start, end time.Time) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, l := range t.locks {
		if l.CourtID == courtID && l.Overlaps(start, end) {
			return true
		}
	}

	return false
}

func (t *Table) ForCourt(courtID string) []SlotLock {
	t.mu.RLock()
	defer t.mu.RUnlock()

	locks := []SlotLock{}

	for _, l := range t.locks {
		if l.CourtID == courtID {
			locks = append(locks, l)
		}
	}

	return locks
}

func (t *Table) Snapshot() []SlotLock {
	t.mu.RLock()
	defer t.mu.RUnlock()

	locks := make([]SlotLock, 0, len(t.locks))

	for _, l := range t.locks {
		locks = append(locks, l)
	}

	return locks
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.locks)
}

func (t *Table) notify() {
	for _, fn := range t.listeners {
		fn()
	}
}
