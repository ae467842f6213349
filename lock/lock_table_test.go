package lock_test

import (
	"testing"
	"time"

	"github.com/ihor-metko/RSP-sub000/lock"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

func newLock(slotID, courtID string) lock.SlotLock {
	return lock.SlotLock{
		SlotID:    slotID,
		CourtID:   courtID,
		ClubID:    "club-1",
		UserID:    "user-1",
		StartTime: t0,
		EndTime:   t0.Add(time.Hour),
	}
}

func TestAcquire(t *testing.T) {

	t.Run("stamps lockedAt from the given clock", func(t *testing.T) {
		table := lock.NewTable()

		require.True(t, table.Acquire(newLock("slot-1", "court-1"), t0))

		got, ok := table.Get("slot-1")
		require.True(t, ok)
		require.Equal(t, t0, got.LockedAt)
	})

	t.Run("duplicate suppression keeps first insertion", func(t *testing.T) {
		table := lock.NewTable()

		require.True(t, table.Acquire(newLock("slot-1", "court-1"), t0))
		require.False(t, table.Acquire(newLock("slot-1", "court-1"), t0.Add(time.Minute)))

		require.Equal(t, 1, table.Len())

		got, _ := table.Get("slot-1")
		require.Equal(t, t0, got.LockedAt)
	})
}

func TestRelease(t *testing.T) {
	table := lock.NewTable()
	table.Acquire(newLock("slot-1", "court-1"), t0)

	require.True(t, table.Release("slot-1"))
	require.False(t, table.Release("slot-1"))
	require.False(t, table.Release("never-seen"))
	require.Equal(t, 0, table.Len())
}

func TestSweep(t *testing.T) {

	t.Run("within ttl stays, past ttl goes", func(t *testing.T) {
		table := lock.NewTable()
		table.Acquire(newLock("slot-1", "court-1"), t0)

		require.Empty(t, table.Sweep(t0.Add(4*time.Minute)))
		require.Equal(t, 1, table.Len())

		expired := table.Sweep(t0.Add(6 * time.Minute))
		require.Len(t, expired, 1)
		require.Equal(t, "slot-1", expired[0].SlotID)
		require.Equal(t, 0, table.Len())
	})

	t.Run("only expired locks are removed", func(t *testing.T) {
		table := lock.NewTable()
		table.Acquire(newLock("slot-1", "court-1"), t0)
		table.Acquire(newLock("slot-2", "court-1"), t0.Add(3*time.Minute))

		expired := table.Sweep(t0.Add(6 * time.Minute))

		require.Len(t, expired, 1)
		require.Equal(t, "slot-1", expired[0].SlotID)

		_, ok := table.Get("slot-2")
		require.True(t, ok)
	})
}

func TestIsSlotLocked(t *testing.T) {
	table := lock.NewTable()
	table.Acquire(newLock("slot-1", "court-1"), t0)

	t.Run("exact and overlapping ranges match", func(t *testing.T) {
		require.True(t, table.IsSlotLocked("court-1", t0, t0.Add(time.Hour)))
		require.True(t, table.IsSlotLocked("court-1", t0.Add(30*time.Minute), t0.Add(90*time.Minute)))
	})

	t.Run("adjacent half-open ranges do not match", func(t *testing.T) {
		require.False(t, table.IsSlotLocked("court-1", t0.Add(time.Hour), t0.Add(2*time.Hour)))
		require.False(t, table.IsSlotLocked("court-1", t0.Add(-time.Hour), t0))
	})

	t.Run("other courts are independent", func(t *testing.T) {
		require.False(t, table.IsSlotLocked("court-2", t0, t0.Add(time.Hour)))
	})

	t.Run("released lock frees the slot", func(t *testing.T) {
		table := lock.NewTable()
		table.Acquire(newLock("slot-1", "court-1"), t0)

		require.True(t, table.IsSlotLocked("court-1", t0, t0.Add(time.Hour)))

		table.Release("slot-1")

		require.False(t, table.IsSlotLocked("court-1", t0, t0.Add(time.Hour)))
	})
}

func TestForCourt(t *testing.T) {
	table := lock.NewTable()
	table.Acquire(newLock("slot-1", "court-1"), t0)
	table.Acquire(newLock("slot-2", "court-1"), t0)
	table.Acquire(newLock("slot-3", "court-2"), t0)

	require.Equal(t, 3, table.Len())

	forCourt := table.ForCourt("court-1")
	require.Len(t, forCourt, 2)

	for _, l := range forCourt {
		require.Equal(t, "court-1", l.CourtID)
	}
}

func TestOnChange(t *testing.T) {
	table := lock.NewTable()

	changes := 0
	table.OnChange(func() { changes++ })

	table.Acquire(newLock("slot-1", "court-1"), t0) // notify
	table.Acquire(newLock("slot-1", "court-1"), t0) // duplicate, silent
	table.Sweep(t0.Add(time.Minute))                // nothing expired, silent
	table.Sweep(t0.Add(6 * time.Minute))            // notify
	table.Release("slot-1")                         // already swept, silent

	require.Equal(t, 2, changes)
}
