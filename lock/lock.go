package lock

import "time"

// HoldTTL is how long a slot hold stays active without an explicit release.
// The sweep removes anything older, so a lost unlock notification can stall
// a slot for at most this long.
const HoldTTL = 5 * time.Minute

// SlotLock is a temporary hold on one court/time-range combination, taken
// while a user is mid-checkout. LockedAt is stamped locally at insertion
// time and is never part of the wire payload.
type SlotLock struct {
	SlotID    string    `json:"slotId"`
	CourtID   string    `json:"courtId"`
	ClubID    string    `json:"clubId"`
	UserID    string    `json:"userId,omitempty"` // holder may be anonymous to this client
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	LockedAt  time.Time `json:"lockedAt"`
}

func (l SlotLock) Overlaps(start, end time.Time) bool {
	return l.StartTime.Before(end) && start.Before(l.EndTime)
}

// Expired reports whether the hold has outlived HoldTTL at the given time.
func (l SlotLock) Expired(now time.Time) bool {
	return now.Sub(l.LockedAt) > HoldTTL
}
