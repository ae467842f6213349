package realtime

import (
	"encoding/json"
	"errors"
	"time"

	bk "github.com/ihor-metko/RSP-sub000/booking"
)

// Wire event names pushed by the platform. One handler is bound per name.
const (
	EventBookingCreated   = "booking_created"
	EventBookingUpdated   = "booking_updated"
	EventBookingCancelled = "booking_cancelled"
	EventSlotLocked       = "slot_locked"
	EventSlotUnlocked     = "slot_unlocked"
	EventLockExpired      = "lock_expired"
)

// Envelope is one discrete push notification: an event kind plus its
// payload, still encoded. The payload is decoded by the handler bound to
// the event name.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

var errMissingField = errors.New("missing required field")

type BookingCreatedPayload struct {
	Booking bk.Booking `json:"booking"`
	ClubID  string     `json:"clubId"`
	CourtID string     `json:"courtId"`
}

func (p BookingCreatedPayload) Validate() error {
	if len(p.Booking.ID) == 0 || len(p.Booking.CourtID) == 0 || p.Booking.UpdatedAt.IsZero() {
		return errMissingField
	}

	return nil
}

type BookingUpdatedPayload struct {
	Booking        bk.Booking `json:"booking"`
	ClubID         string     `json:"clubId"`
	CourtID        string     `json:"courtId"`
	PreviousStatus string     `json:"previousStatus"`
}

func (p BookingUpdatedPayload) Validate() error {
	if len(p.Booking.ID) == 0 || len(p.Booking.CourtID) == 0 || p.Booking.UpdatedAt.IsZero() {
		return errMissingField
	}

	return nil
}

type BookingCancelledPayload struct {
	BookingID string `json:"bookingId"`
	ClubID    string `json:"clubId"`
	CourtID   string `json:"courtId"`
}

func (p BookingCancelledPayload) Validate() error {
	if len(p.BookingID) == 0 {
		return errMissingField
	}

	return nil
}

type SlotLockedPayload struct {
	SlotID    string    `json:"slotId"`
	CourtID   string    `json:"courtId"`
	ClubID    string    `json:"clubId"`
	UserID    string    `json:"userId,omitempty"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func (p SlotLockedPayload) Validate() error {
	if len(p.SlotID) == 0 || len(p.CourtID) == 0 || p.StartTime.IsZero() || p.EndTime.IsZero() {
		return errMissingField
	}

	return nil
}

type SlotReleasedPayload struct {
	SlotID  string `json:"slotId"`
	CourtID string `json:"courtId"`
	ClubID  string `json:"clubId"`
}

func (p SlotReleasedPayload) Validate() error {
	if len(p.SlotID) == 0 {
		return errMissingField
	}

	return nil
}
