package entity

import "time"

// Staff member statuses.
const (
	StaffActive  = "Active"
	StaffOnLeave = "On Leave"
)

// StaffMember is an employee of the business.
type StaffMember struct {
	ID        string
	UserID    string
	Name      string
	Role      string
	Phone     string // optional
	Status    string // Active, On Leave
	CreatedAt time.Time
}
