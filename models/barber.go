package models

import "time"

// Barber is a staff member attached to a branch.
type Barber struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	BranchID  string    `bson:"branchId" json:"branchId"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
