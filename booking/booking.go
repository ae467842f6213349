package booking

import "time"

type Booking struct {
	ID        string    `json:"id"`
	CourtID   string    `json:"courtId"`
	ClubID    string    `json:"clubId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"` // pending, confirmed, cancelled, completed, no_show
	UpdatedAt time.Time `json:"updatedAt"`
}

// Overlaps reports whether the booking's half-open interval [start, end)
// intersects the given one.
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}
