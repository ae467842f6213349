package realtime

import "errors"

var ErrSlotUnavailable = errors.New("slot is already booked or held")

var ErrHoldNotFound = errors.New("slot hold not found")

var ErrCourtNotFound = errors.New("court not found")

var ErrInvalidSlot = errors.New("invalid slot time range")
