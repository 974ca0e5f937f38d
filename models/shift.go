package models

import "time"

// Shift types are descriptive only; nothing is enforced from them.
const (
	ShiftFull  = "full"
	ShiftHalf  = "half"
	ShiftSplit = "split"
)

// Shift is one scheduled working block for a barber at a branch on a date.
// Breaks are sub-intervals of the shift during which the barber is
// unavailable; they may overlap each other.
type Shift struct {
	ID        string     `bson:"id" json:"id"`
	BarberID  string     `bson:"barberId" json:"barberId"`
	BranchID  string     `bson:"branchId" json:"branchId"`
	Date      string     `bson:"date" json:"date"` // "2006-01-02"
	Interval  Interval   `bson:"interval" json:"interval"`
	Breaks    []Interval `bson:"breaks,omitempty" json:"breaks,omitempty"`
	Type      string     `bson:"type,omitempty" json:"type,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Covers reports whether minute p falls inside the shift interval and
// outside all of this shift's breaks. Breaks only subtract from their own
// shift, never from overlapping sibling shifts.
func (s Shift) Covers(p int) bool {
	if !s.Interval.Contains(p) {
		return false
	}
	for _, b := range s.Breaks {
		if b.Contains(p) {
			return false
		}
	}
	return true
}
