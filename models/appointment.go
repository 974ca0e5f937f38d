package models

import "time"

// AnyBarber is the "no preference" pseudo barber id. Availability for it
// bypasses shift and leave filtering; assignment to a concrete barber
// happens at the counter, outside this system.
const AnyBarber = "any"

// IsAnyBarber reports whether id denotes "no preference".
func IsAnyBarber(id string) bool {
	return id == "" || id == AnyBarber
}

// Appointment is a confirmed reservation for a single grid slot.
// Barbers are always referenced by id; display names come from the barber
// directory.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	CustomerName  string    `bson:"customerName" json:"customerName"`
	CustomerPhone string    `bson:"customerPhone" json:"customerPhone"`
	CustomerEmail string    `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	BarberID      string    `bson:"barberId" json:"barberId"`
	BranchID      string    `bson:"branchId" json:"branchId"`
	Date          string    `bson:"date" json:"date"` // "2006-01-02"
	Time          string    `bson:"time" json:"time"` // "HH:MM"
	Services      []string  `bson:"services,omitempty" json:"services,omitempty"`
	DepositID     string    `bson:"depositId,omitempty" json:"depositId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingSession is a short-lived hold on a slot while the customer fills in
// details and (optionally) pays a deposit. Sessions live in Redis, never in
// Mongo.
type BookingSession struct {
	ID                  string    `json:"id"`
	BarberID            string    `json:"barberId"`
	BranchID            string    `json:"branchId"`
	Date                string    `json:"date"`
	Time                string    `json:"time"`
	CustomerName        string    `json:"customerName"`
	CustomerPhone       string    `json:"customerPhone"`
	CustomerEmail       string    `json:"customerEmail,omitempty"`
	Services            []string  `json:"services,omitempty"`
	PaymentIntentID     string    `json:"paymentIntentId,omitempty"`
	PaymentClientSecret string    `json:"paymentClientSecret,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}
