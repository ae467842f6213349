package booking_test

import (
	"testing"
	"time"

	bk "github.com/ihor-metko/RSP-sub000/booking"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

func newBooking(id, status string, updatedAt time.Time) bk.Booking {
	return bk.Booking{
		ID:        id,
		CourtID:   "court-1",
		ClubID:    "club-1",
		StartTime: t0,
		EndTime:   t0.Add(time.Hour),
		Status:    status,
		UpdatedAt: updatedAt,
	}
}

func TestMerge(t *testing.T) {

	t.Run("insert", func(t *testing.T) {
		set := bk.NewSet()

		require.True(t, set.Merge(newBooking("booking-1", "pending", t0)))
		require.Equal(t, 1, set.Len())

		got, ok := set.Get("booking-1")
		require.True(t, ok)
		require.Equal(t, "pending", got.Status)
	})

	t.Run("idempotent", func(t *testing.T) {
		set := bk.NewSet()
		b := newBooking("booking-1", "pending", t0)

		require.True(t, set.Merge(b))
		require.False(t, set.Merge(b))

		require.Equal(t, 1, set.Len())

		got, _ := set.Get("booking-1")
		require.Equal(t, b, got)
	})

	t.Run("newer wins", func(t *testing.T) {
		set := bk.NewSet()

		set.Merge(newBooking("booking-1", "pending", t0))
		require.True(t, set.Merge(newBooking("booking-1", "confirmed", t0.Add(time.Second))))

		got, _ := set.Get("booking-1")
		require.Equal(t, "confirmed", got.Status)
	})

	t.Run("stale rejected", func(t *testing.T) {
		set := bk.NewSet()
		newer := newBooking("booking-1", "confirmed", t0.Add(200*time.Millisecond))

		set.Merge(newer)
		require.False(t, set.Merge(newBooking("booking-1", "pending", t0.Add(100*time.Millisecond))))

		got, _ := set.Get("booking-1")
		require.Equal(t, newer, got)
	})

	t.Run("commutative under watermark", func(t *testing.T) {
		older := newBooking("booking-1", "pending", t0)
		newer := newBooking("booking-1", "confirmed", t0.Add(time.Second))

		forward := bk.NewSet()
		forward.Merge(older)
		forward.Merge(newer)

		backward := bk.NewSet()
		backward.Merge(newer)
		backward.Merge(older)

		gotForward, _ := forward.Get("booking-1")
		gotBackward, _ := backward.Get("booking-1")

		require.Equal(t, newer, gotForward)
		require.Equal(t, newer, gotBackward)
	})
}

func TestRemove(t *testing.T) {

	t.Run("removes record", func(t *testing.T) {
		set := bk.NewSet()
		set.Merge(newBooking("booking-1", "pending", t0))

		require.True(t, set.Remove("booking-1"))
		require.Equal(t, 0, set.Len())
	})

	t.Run("idempotent and safe on unknown id", func(t *testing.T) {
		set := bk.NewSet()
		set.Merge(newBooking("booking-1", "pending", t0))

		require.True(t, set.Remove("booking-1"))
		require.False(t, set.Remove("booking-1"))
		require.False(t, set.Remove("never-seen"))

		_, ok := set.Get("booking-1")
		require.False(t, ok)
	})

	t.Run("no tombstone", func(t *testing.T) {
		set := bk.NewSet()

		set.Merge(newBooking("booking-1", "confirmed", t0.Add(time.Hour)))
		set.Remove("booking-1")

		// A later create with an older watermark starts a fresh record.
		require.True(t, set.Merge(newBooking("booking-1", "pending", t0)))

		got, _ := set.Get("booking-1")
		require.Equal(t, "pending", got.Status)
	})
}

func TestConvergence(t *testing.T) {

	t.Run("burst of updates ends on the newest snapshot", func(t *testing.T) {
		set := bk.NewSet()
		set.Merge(newBooking("booking-1", "pending", t0))

		for i := 1; i <= 4; i++ {
			status := "pending"
			if i == 4 {
				status = "confirmed"
			}
			set.Merge(newBooking("booking-1", status, t0.Add(time.Duration(i)*100*time.Millisecond)))
		}

		require.Equal(t, 1, set.Len())

		got, _ := set.Get("booking-1")
		require.Equal(t, "confirmed", got.Status)
		require.Equal(t, t0.Add(400*time.Millisecond), got.UpdatedAt)
	})

	t.Run("late older update leaves record unchanged", func(t *testing.T) {
		set := bk.NewSet()
		current := newBooking("booking-1", "confirmed", t0.Add(200*time.Millisecond))
		set.Merge(current)

		set.Merge(newBooking("booking-1", "pending", t0.Add(100*time.Millisecond)))

		got, _ := set.Get("booking-1")
		require.Equal(t, current, got)
	})
}

func TestQueries(t *testing.T) {
	set := bk.NewSet()
	set.Merge(newBooking("booking-1", "confirmed", t0))

	other := newBooking("booking-2", "confirmed", t0)
	other.CourtID = "court-2"
	set.Merge(other)

	t.Run("snapshot", func(t *testing.T) {
		require.Len(t, set.Snapshot(), 2)
	})

	t.Run("for court", func(t *testing.T) {
		forCourt := set.ForCourt("court-1")
		require.Len(t, forCourt, 1)
		require.Equal(t, "booking-1", forCourt[0].ID)
	})

	t.Run("overlap", func(t *testing.T) {
		require.True(t, set.HasOverlap("court-1", t0.Add(30*time.Minute), t0.Add(90*time.Minute)))
		// Half-open interval: a slot starting exactly at the end does not collide.
		require.False(t, set.HasOverlap("court-1", t0.Add(time.Hour), t0.Add(2*time.Hour)))
		require.False(t, set.HasOverlap("court-3", t0, t0.Add(time.Hour)))
	})

	t.Run("cancelled bookings do not block slots", func(t *testing.T) {
		cancelled := newBooking("booking-3", "cancelled", t0)
		cancelled.CourtID = "court-4"
		set.Merge(cancelled)

		require.False(t, set.HasOverlap("court-4", t0, t0.Add(time.Hour)))
	})
}

func TestOnChange(t *testing.T) {
	set := bk.NewSet()

	changes := 0
	set.OnChange(func() { changes++ })

	set.Merge(newBooking("booking-1", "pending", t0))
	set.Merge(newBooking("booking-1", "pending", t0)) // stale, no notification
	set.Remove("booking-1")
	set.Remove("booking-1") // absent, no notification

	require.Equal(t, 2, changes)
}
