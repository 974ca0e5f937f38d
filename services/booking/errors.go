package booking

import "errors"

var (
	// ErrSessionNotFound means the session id is unknown or the hold expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrSlotUnavailable means the requested slot failed the availability check.
	ErrSlotUnavailable = errors.New("requested slot is not available")
	// ErrSlotHeld means another customer currently holds the slot.
	ErrSlotHeld = errors.New("slot is currently held by another session")
)
