package models

import (
	"fmt"
	"time"
)

// Interval is a half-open [Start, End) block measured in minutes from
// midnight, e.g. {600, 1080} for 10:00-18:00.
type Interval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Overlaps reports whether two half-open intervals share at least one minute.
func (iv Interval) Overlaps(other Interval) bool {
	return !(iv.End <= other.Start || iv.Start >= other.End)
}

// Contains reports whether the minute p falls inside [Start, End).
func (iv Interval) Contains(p int) bool {
	return p >= iv.Start && p < iv.End
}

// Valid reports whether the interval is well-formed within a single day.
func (iv Interval) Valid() bool {
	return iv.Start >= 0 && iv.End <= 24*60 && iv.Start < iv.End
}

func (iv Interval) String() string {
	return FormatClock(iv.Start) + "-" + FormatClock(iv.End)
}

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as zero-padded "HH:MM".
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// ParseInterval builds an Interval from "HH:MM" start and end strings.
func ParseInterval(startTime, endTime string) (Interval, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return Interval{}, err
	}
	iv := Interval{Start: start, End: end}
	if !iv.Valid() {
		return Interval{}, fmt.Errorf("invalid interval %s-%s: start must be before end", startTime, endTime)
	}
	return iv, nil
}
