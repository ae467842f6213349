package realtime

// Channel is the duplex push channel the reconciler consumes. Connection
// management (reconnects, heartbeats) lives behind this boundary.
type Channel interface {
	Bind(event string, handler func(payload []byte))
	Unbind(event string)
}

// Binding attaches one reconciler handler per wire event to a channel and
// remembers what it bound. Registration and deregistration are symmetric: a
// leaked handler would let two reconciler instances apply the same future
// events twice.
type Binding struct {
	channel Channel
	bound   []string
}

func BindReconciler(channel Channel, rec *Reconciler) *Binding {
	b := &Binding{channel: channel}

	handlers := map[string]func([]byte){
		EventBookingCreated:   rec.HandleBookingCreated,
		EventBookingUpdated:   rec.HandleBookingUpdated,
		EventBookingCancelled: rec.HandleBookingCancelled,
		EventSlotLocked:       rec.HandleSlotLocked,
		EventSlotUnlocked:     rec.HandleSlotUnlocked,
		EventLockExpired:      rec.HandleLockExpired,
	}

	for event, handler := range handlers {
		channel.Bind(event, handler)
		b.bound = append(b.bound, event)
	}

	return b
}

// Close unbinds every handler this binding registered.
func (b *Binding) Close() {
	for _, event := range b.bound {
		b.channel.Unbind(event)
	}

	b.bound = nil
}
