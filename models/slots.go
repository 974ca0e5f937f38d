package models

// TimeSlot is one derived entry of the booking grid. Slots are computed
// fresh on every query and never persisted.
type TimeSlot struct {
	Time      string `json:"time"` // "HH:MM"
	Available bool   `json:"available"`
}

// DayAvailability is the full grid for one (date, barber, branch) query.
type DayAvailability struct {
	Date      string     `json:"date"`
	BarberID  string     `json:"barberId"`
	BranchID  string     `json:"branchId"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}
