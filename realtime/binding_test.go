package realtime_test

import (
	"testing"
	"time"

	bk "github.com/ihor-metko/RSP-sub000/booking"
	"github.com/ihor-metko/RSP-sub000/lock"
	"github.com/ihor-metko/RSP-sub000/realtime"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	handlers map[string]func(payload []byte)
	binds    int
	unbinds  int
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{handlers: map[string]func(payload []byte){}}
}

func (c *fakeChannel) Bind(event string, handler func(payload []byte)) {
	c.handlers[event] = handler
	c.binds++
}

func (c *fakeChannel) Unbind(event string) {
	delete(c.handlers, event)
	c.unbinds++
}

func (c *fakeChannel) deliver(event string, payload []byte) bool {
	handler, ok := c.handlers[event]
	if ok {
		handler(payload)
	}
	return ok
}

func TestBindReconciler(t *testing.T) {
	events := []string{
		realtime.EventBookingCreated,
		realtime.EventBookingUpdated,
		realtime.EventBookingCancelled,
		realtime.EventSlotLocked,
		realtime.EventSlotUnlocked,
		realtime.EventLockExpired,
	}

	t.Run("binds one handler per wire event", func(t *testing.T) {
		channel := newFakeChannel()
		rec := realtime.NewReconciler("club-1", bk.NewSet(), lock.NewTable(), nil)

		realtime.BindReconciler(channel, rec)

		require.Equal(t, len(events), channel.binds)

		for _, event := range events {
			require.Contains(t, channel.handlers, event)
		}
	})

	t.Run("close unbinds everything that was bound", func(t *testing.T) {
		channel := newFakeChannel()
		rec := realtime.NewReconciler("club-1", bk.NewSet(), lock.NewTable(), nil)

		binding := realtime.BindReconciler(channel, rec)
		binding.Close()

		require.Equal(t, channel.binds, channel.unbinds)
		require.Empty(t, channel.handlers)
	})

	t.Run("close twice does not over-unbind", func(t *testing.T) {
		channel := newFakeChannel()
		rec := realtime.NewReconciler("club-1", bk.NewSet(), lock.NewTable(), nil)

		binding := realtime.BindReconciler(channel, rec)
		binding.Close()
		binding.Close()

		require.Equal(t, len(events), channel.unbinds)
	})

	t.Run("delivered envelopes reach the stores", func(t *testing.T) {
		channel := newFakeChannel()
		bookings := bk.NewSet()
		locks := lock.NewTable()
		rec := realtime.NewReconciler("club-1", bookings, locks, nil).
			WithClock(func() time.Time { return t0 })

		realtime.BindReconciler(channel, rec)

		delivered := channel.deliver(realtime.EventBookingCreated, mustMarshal(t, realtime.BookingCreatedPayload{
			Booking: testBooking("booking-1", "pending", t0),
			ClubID:  "club-1",
			CourtID: "court-1",
		}))
		require.True(t, delivered)
		require.Equal(t, 1, bookings.Len())

		delivered = channel.deliver(realtime.EventSlotLocked, mustMarshal(t, realtime.SlotLockedPayload{
			SlotID: "slot-1", CourtID: "court-1", ClubID: "club-1",
			StartTime: t0, EndTime: t0.Add(time.Hour),
		}))
		require.True(t, delivered)
		require.Equal(t, 1, locks.Len())
	})
}
