package domain

import "time"

type CameraStatus string

const (
	CameraStatusAvailable   CameraStatus = "available"
	CameraStatusUnavailable CameraStatus = "unavailable"
)

type Camera struct {
	ID           int32        `json:"id"`
	CameraCode   string       `json:"camera_code"`
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	SerialNumber string       `json:"serial_number"`
	Agent        string       `json:"agent"`
	Status       CameraStatus `json:"status"`
	Description  string       `json:"description"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// ActiveRentals is the count of rentals currently in 'active' status,
	// populated by list queries.
	ActiveRentals int32 `json:"active_rentals"`

	// DynamicStatus is the computed availability for a candidate date range.
	// It annotates responses only; the stored Status field never changes as
	// a side effect of a date-range query.
	DynamicStatus       CameraStatus `json:"dynamic_status,omitempty"`
	DynamicStatusReason string       `json:"dynamic_status_reason,omitempty"`

	// RentalHistory is populated by the camera detail query.
	RentalHistory []Rental `json:"rental_history,omitempty"`
}
