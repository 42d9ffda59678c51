package domain

import "time"

// DateLayout is the wire and storage format for all rental dates.
const DateLayout = "2006-01-02"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "active"
	RentalStatusReserved  RentalStatus = "reserved"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"

	// RentalStatusUpcoming is derived-only. It is never stored; DeriveStatus
	// produces it for rentals whose start date is still in the future.
	RentalStatusUpcoming RentalStatus = "upcoming"
)

type Rental struct {
	ID            int32        `json:"id"`
	CameraID      int32        `json:"camera_id"`
	CustomerName  string       `json:"customer_name"`
	CustomerPhone string       `json:"customer_phone"`
	RentalDate    string       `json:"rental_date"`
	ReturnDate    string       `json:"return_date"`
	Status        RentalStatus `json:"status"`
	Notes         string       `json:"notes"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	// Joined camera fields, populated by list and calendar queries.
	CameraCode   string `json:"camera_code,omitempty"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	Agent        string `json:"agent,omitempty"`

	// DisplayStatus is the time-aware projection of Status. Never stored.
	DisplayStatus RentalStatus `json:"display_status,omitempty"`
}

// DeriveStatus computes the display status of a rental at a given date.
// Stored terminal states win over the clock: a cancelled rental stays
// cancelled and a completed rental stays completed no matter the dates.
// Malformed dates fall back to the stored status.
func DeriveStatus(stored RentalStatus, today time.Time, rentalDate, returnDate string) RentalStatus {
	switch stored {
	case RentalStatusCancelled:
		return RentalStatusCancelled
	case RentalStatusCompleted:
		return RentalStatusCompleted
	}

	start, err := time.Parse(DateLayout, rentalDate)
	if err != nil {
		return stored
	}
	end, err := time.Parse(DateLayout, returnDate)
	if err != nil {
		return stored
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case day.Before(start):
		return RentalStatusUpcoming
	case day.After(end):
		return RentalStatusCompleted
	default:
		return RentalStatusActive
	}
}

// Overlaps reports whether two closed-inclusive date ranges intersect.
// A rental occupies its return date, so a range ending on a day conflicts
// with another range starting that same day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aEnd.Before(bStart) && !bEnd.Before(aStart)
}

// ParseDateRange parses a rental_date/return_date pair. Callers decide
// whether an inverted range is acceptable.
func ParseDateRange(rentalDate, returnDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, rentalDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(DateLayout, returnDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
