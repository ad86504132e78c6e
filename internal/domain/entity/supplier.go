package entity

import "time"

// Supplier is a vendor the business buys from.
type Supplier struct {
	ID        string
	UserID    string
	Name      string
	Category  string
	Phone     string // optional
	CreatedAt time.Time
}
