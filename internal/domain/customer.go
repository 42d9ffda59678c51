package domain

import "time"

// Customer is the legacy customer entity. Rentals store customer name and
// phone directly; this table only backs the old customer picker flow.
type Customer struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
