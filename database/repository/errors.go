package repository

import "errors"

// Sentinel errors shared by all stores so handlers can map them to HTTP
// statuses without knowing which backend produced them.
var (
	ErrNotFound     = errors.New("record not found")
	ErrShiftOverlap = errors.New("shift overlaps an existing shift for this barber and date")
	ErrSlotTaken    = errors.New("slot is already booked")
)
