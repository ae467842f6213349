package booking

import (
	"sync"
	"time"
)

// Set is the reconciled in-memory view of the bookings for one club scope.
// It is a last-writer-wins register per booking ID, where "last" is decided
// by the UpdatedAt watermark stamped by the origin, not by arrival order.
// The reconciler is the only writer; HTTP and WebSocket consumers read
// snapshots.
type Set struct {
	mu        sync.RWMutex
	records   map[string]Booking
	listeners []func()
}

func NewSet() *Set {
	return &Set{records: map[string]Booking{}}
}

// OnChange registers fn to be called after every effective mutation.
// Listeners must be registered before the set is shared between goroutines.
func (s *Set) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// Merge applies a booking snapshot under the watermark rule: the record is
// stored unless an existing record with the same ID carries an equal or
// newer UpdatedAt. Returns whether the set changed.
//
// The origin must stamp every mutation of a booking with a strictly
// increasing UpdatedAt; a violating origin can make Merge discard a
// legitimately newer state.
func (s *Set) Merge(b Booking) bool {
	s.mu.Lock()

	if current, ok := s.records[b.ID]; ok && !current.UpdatedAt.Before(b.UpdatedAt) {
		s.mu.Unlock()
		return false
	}

	s.records[b.ID] = b
	s.mu.Unlock()

	s.notify()

	return true
}

// Remove drops the record with the given ID. Removing an absent ID is a
// no-op, so redelivered or early-arriving cancellations are inert.
func (s *Set) Remove(id string) bool {
	s.mu.Lock()

	if _, ok := s.records[id]; !ok {
		s.mu.Unlock()
		return false
	}

	delete(s.records, id)
	s.mu.Unlock()

	s.notify()

	return true
}

func (s *Set) Get(id string) (Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.records[id]

	return b, ok
}

func (s *Set) Snapshot() []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]Booking, 0, len(s.records))

	for _, b := range s.records {
		bookings = append(bookings, b)
	}

	return bookings
}

func (s *Set) ForCourt(courtID string) []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := []Booking{}

	for _, b := range s.records {
		if b.CourtID == courtID {
			bookings = append(bookings, b)
		}
	}

	return bookings
}

// HasOverlap reports whether any non-cancelled booking on the court
// intersects [start, end).
func (s *Set) HasOverlap(courtID string, start, end time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.records {
		if b.CourtID == courtID && b.Status != "cancelled" && b.Overlaps(start, end) {
			return true
		}
	}

	return false
}

func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

func (s *Set) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}
