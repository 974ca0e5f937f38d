package models

// ReminderPayload is the asynq task body for appointment reminders.
type ReminderPayload struct {
	AppointmentID string   `json:"appointmentId"`
	BarberID      string   `json:"barberId"`
	BranchID      string   `json:"branchId"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	Services      []string `json:"services,omitempty"`
}
