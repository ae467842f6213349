package realtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	bk "github.com/ihor-metko/RSP-sub000/booking"
	"github.com/ihor-metko/RSP-sub000/directory"
	"github.com/ihor-metko/RSP-sub000/lock"
)

type EventPublisher interface {
	Publish(ctx context.Context, event string, payload any) error
}

type CourtDirectory interface {
	GetCourt(ctx context.Context, courtID string) (*directory.Court, error)
}

// Service is the application surface over one club's reconciled state: the
// read queries consumed by availability checks, plus the hold lifecycle
// (acquire and release). Holds taken here are applied locally first and
// then published, so sibling instances converge through the same channel.
type Service struct {
	clubID     string
	bookings   *bk.Set
	locks      *lock.Table
	reconciler *Reconciler
	publisher  EventPublisher
	courts     CourtDirectory
}

func NewService(clubID string, bookings *bk.Set, locks *lock.Table, reconciler *Reconciler, publisher EventPublisher, courts CourtDirectory) *Service {
	return &Service{
		clubID:     clubID,
		bookings:   bookings,
		locks:      locks,
		reconciler: reconciler,
		publisher:  publisher,
		courts:     courts,
	}
}

func (s *Service) Bookings() []bk.Booking {
	return s.bookings.Snapshot()
}

func (s *Service) BookingsForCourt(courtID string) []bk.Booking {
	return s.bookings.ForCourt(courtID)
}

func (s *Service) Locks() []lock.SlotLock {
	return s.locks.Snapshot()
}

func (s *Service) LocksForCourt(courtID string) []lock.SlotLock {
	return s.locks.ForCourt(courtID)
}

// IsSlotLocked reports whether any active hold on the court overlaps the
// half-open interval [start, end).
func (s *Service) IsSlotLocked(courtID string, start, end time.Time) bool {
	return s.locks.IsSlotLocked(courtID, start, end)
}

// IsSlotAvailable reports whether the slot is neither booked nor held.
func (s *Service) IsSlotAvailable(courtID string, start, end time.Time) bool {
	return !s.bookings.HasOverlap(courtID, start, end) && !s.locks.IsSlotLocked(courtID, start, end)
}

// HoldSlot takes a checkout hold on a court/time-range combination. The
// court must exist, and the range must not collide with a non-cancelled
// booking or an active hold. On success the hold is live locally and a
// slot_locked event is published for every other subscriber of the club
// channel.
func (s *Service) HoldSlot(ctx context.Context, courtID, userID string, start, end time.Time) (lock.SlotLock, error) {
	if !start.Before(end) {
		return lock.SlotLock{}, ErrInvalidSlot
	}

	court, err := s.courts.GetCourt(ctx, courtID)

	if errors.Is(err, directory.ErrCourtNotFound) {
		return lock.SlotLock{}, ErrCourtNotFound
	}

	if err != nil {
		return lock.SlotLock{}, fmt.Errorf("failed to resolve court '%v': %w", courtID, err)
	}

	if !s.IsSlotAvailable(court.ID, start, end) {
		return lock.SlotLock{}, ErrSlotUnavailable
	}

	held := lock.SlotLock{
		SlotID:    uuid.NewString(),
		CourtID:   court.ID,
		ClubID:    s.clubID,
		UserID:    userID,
		StartTime: start,
		EndTime:   end,
	}

	s.reconciler.ApplySlotLocked(held)

	err = s.publisher.Publish(ctx, EventSlotLocked, SlotLockedPayload{
		SlotID:    held.SlotID,
		CourtID:   held.CourtID,
		ClubID:    held.ClubID,
		UserID:    held.UserID,
		StartTime: held.StartTime,
		EndTime:   held.EndTime,
	})

	if err != nil {
		// Nobody else learned about the hold; roll it back locally.
		s.reconciler.ApplySlotUnlocked(held.SlotID)
		return lock.SlotLock{}, fmt.Errorf("failed to publish slot lock: %w", err)
	}

	held, _ = s.locks.Get(held.SlotID)

	return held, nil
}

// ReleaseHold releases a previously taken hold and publishes slot_unlocked.
func (s *Service) ReleaseHold(ctx context.Context, slotID string) error {
	held, ok := s.locks.Get(slotID)

	if !ok {
		return ErrHoldNotFound
	}

	s.reconciler.ApplySlotUnlocked(slotID)

	err := s.publisher.Publish(ctx, EventSlotUnlocked, SlotReleasedPayload{
		SlotID:  held.SlotID,
		CourtID: held.CourtID,
		ClubID:  held.ClubID,
	})

	if err != nil {
		return fmt.Errorf("failed to publish slot unlock: %w", err)
	}

	return nil
}
