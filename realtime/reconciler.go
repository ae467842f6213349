package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	bk "github.com/ihor-metko/RSP-sub000/booking"
	"github.com/ihor-metko/RSP-sub000/lock"
)

// SweepInterval is how often the reconciler checks the lock table for holds
// that outlived their TTL without an explicit release.
const SweepInterval = 30 * time.Second

type SnapshotLoader interface {
	GetClubBookings(ctx context.Context, clubID string) ([]bk.Booking, error)
}

// Reconciler folds the unordered, possibly duplicated event stream for one
// club scope into the booking set and the lock table. It is the only writer
// to either collection. Every apply operation is idempotent, so redelivered
// and out-of-order envelopes never regress state.
type Reconciler struct {
	clubID   string
	bookings *bk.Set
	locks    *lock.Table
	loader   SnapshotLoader
	now      func() time.Time
	logger   *slog.Logger
}

func NewReconciler(clubID string, bookings *bk.Set, locks *lock.Table, loader SnapshotLoader) *Reconciler {
	return &Reconciler{
		clubID:   clubID,
		bookings: bookings,
		locks:    locks,
		loader:   loader,
		now:      time.Now,
		logger:   slog.Default().With("component", "reconciler", "clubId", clubID),
	}
}

// WithClock replaces the wall clock, for deterministic expiry in tests.
func (r *Reconciler) WithClock(now func() time.Time) *Reconciler {
	r.now = now
	return r
}

// ApplyBookingCreated merges a booking snapshot. A stored record with an
// equal or newer UpdatedAt makes the call a no-op.
func (r *Reconciler) ApplyBookingCreated(booking bk.Booking) {
	if !r.bookings.Merge(booking) {
		r.logger.Debug("discarded stale booking snapshot", "bookingId", booking.ID)
	}
}

// ApplyBookingUpdated is the same merge as ApplyBookingCreated: both events
// carry a full snapshot plus the UpdatedAt watermark, so create and update
// only differ in name on the wire.
func (r *Reconciler) ApplyBookingUpdated(booking bk.Booking) {
	if !r.bookings.Merge(booking) {
		r.logger.Debug("discarded stale booking snapshot", "bookingId", booking.ID)
	}
}

// ApplyBookingCancelled removes the booking. No tombstone is kept: a later
// create for the same ID starts a fresh record.
func (r *Reconciler) ApplyBookingCancelled(bookingID string) {
	r.bookings.Remove(bookingID)
}

// ApplySlotLocked inserts the hold, stamping LockedAt from the local clock.
// A hold already present under the same SlotID wins; redelivery is inert.
func (r *Reconciler) ApplySlotLocked(l lock.SlotLock) {
	if !r.locks.Acquire(l, r.now()) {
		r.logger.Debug("suppressed duplicate slot lock", "slotId", l.SlotID)
	}
}

func (r *Reconciler) ApplySlotUnlocked(slotID string) {
	if r.locks.Release(slotID) {
		r.logger.Debug("slot unlocked", "slotId", slotID)
	}
}

// ApplyLockExpired shares the removal path with ApplySlotUnlocked; the two
// events are distinguished only for observability.
func (r *Reconciler) ApplyLockExpired(slotID string) {
	if r.locks.Release(slotID) {
		r.logger.Debug("lock expired upstream", "slotId", slotID)
	}
}

// SweepExpiredLocks drops every hold older than the TTL at now. This is the
// local defense against a lost unlock or expiry notification.
func (r *Reconciler) SweepExpiredLocks(now time.Time) {
	for _, l := range r.locks.Sweep(now) {
		r.logger.Info("swept expired slot lock", "slotId", l.SlotID, "courtId", l.CourtID)
	}
}

// Resync bulk-loads the club's booking snapshot and merges it over the
// current state. The merge rules make this safe even though most of the
// snapshot is usually already known. Called once at startup and after every
// channel reconnect; nothing upstream buffers missed events.
func (r *Reconciler) Resync(ctx context.Context) error {
	bookings, err := r.loader.GetClubBookings(ctx, r.clubID)

	if err != nil {
		return err
	}

	for _, booking := range bookings {
		r.bookings.Merge(booking)
	}

	r.logger.Info("resynced booking snapshot", "count", len(bookings))

	return nil
}

// RunSweeper runs the periodic TTL sweep until ctx is cancelled. The ticker
// is stopped on teardown so nothing mutates the table after its owning
// scope is gone.
func (r *Reconciler) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.SweepExpiredLocks(now)
		}
	}
}

// Envelope handlers. Each decodes and validates one payload shape, then
// dispatches to the matching apply operation. A malformed payload is logged
// and dropped whole, never applied partially.

func (r *Reconciler) HandleBookingCreated(payload []byte) {
	var p BookingCreatedPayload

	if err := r.decode(EventBookingCreated, payload, &p); err != nil {
		return
	}

	r.ApplyBookingCreated(p.Booking)
}

func (r *Reconciler) HandleBookingUpdated(payload []byte) {
	var p BookingUpdatedPayload

	if err := r.decode(EventBookingUpdated, payload, &p); err != nil {
		return
	}

	r.ApplyBookingUpdated(p.Booking)
}

func (r *Reconciler) HandleBookingCancelled(payload []byte) {
	var p BookingCancelledPayload

	if err := r.decode(EventBookingCancelled, payload, &p); err != nil {
		return
	}

	r.ApplyBookingCancelled(p.BookingID)
}

func (r *Reconciler) HandleSlotLocked(payload []byte) {
	var p SlotLockedPayload

	if err := r.decode(EventSlotLocked, payload, &p); err != nil {
		return
	}

	r.ApplySlotLocked(lock.SlotLock{
		SlotID:    p.SlotID,
		CourtID:   p.CourtID,
		ClubID:    p.ClubID,
		UserID:    p.UserID,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
	})
}

func (r *Reconciler) HandleSlotUnlocked(payload []byte) {
	var p SlotReleasedPayload

	if err := r.decode(EventSlotUnlocked, payload, &p); err != nil {
		return
	}

	r.ApplySlotUnlocked(p.SlotID)
}

func (r *Reconciler) HandleLockExpired(payload []byte) {
	var p SlotReleasedPayload

	if err := r.decode(EventLockExpired, payload, &p); err != nil {
		return
	}

	r.ApplyLockExpired(p.SlotID)
}

type validator interface{ Validate() error }

func (r *Reconciler) decode(event string, payload []byte, p validator) error {
	if err := json.Unmarshal(payload, p); err != nil {
		r.logger.Warn("dropping undecodable envelope", "event", event, "err", err)
		return err
	}

	if err := p.Validate(); err != nil {
		r.logger.Warn("dropping malformed envelope", "event", event, "err", err)
		return err
	}

	return nil
}
