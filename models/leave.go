package models

import "time"

// Leave statuses. Only approved leaves affect availability.
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveDenied   = "denied"
)

// Leave kinds are descriptive only.
const (
	LeaveVacation = "vacation"
	LeaveSick     = "sick"
	LeaveUnpaid   = "unpaid"
	LeaveOther    = "other"
)

// Leave is a barber's absence request for a date. A nil Interval means the
// whole day.
type Leave struct {
	ID        string    `bson:"id" json:"id"`
	BarberID  string    `bson:"barberId" json:"barberId"`
	Date      string    `bson:"date" json:"date"` // "2006-01-02"
	Interval  *Interval `bson:"interval,omitempty" json:"interval,omitempty"`
	Type      string    `bson:"type" json:"type"`
	Status    string    `bson:"status" json:"status"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FullDay reports whether the leave covers the entire date.
func (l Leave) FullDay() bool {
	return l.Interval == nil
}

// Blocks reports whether an approved leave makes minute p unavailable.
// Pending and denied leaves never block anything.
func (l Leave) Blocks(p int) bool {
	if l.Status != LeaveApproved {
		return false
	}
	if l.FullDay() {
		return true
	}
	return l.Interval.Contains(p)
}
