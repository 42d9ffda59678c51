package repository

import (
	"context"
	"errors"

	"camera-rental-backend/internal/domain"
)

// ErrRentalConflict is returned when a rental insert or date change would
// overlap another active/reserved rental for the same camera.
var ErrRentalConflict = errors.New("rental dates conflict with an existing rental")

// CameraFilter narrows camera list queries.
type CameraFilter struct {
	// AgentExact restricts results to cameras owned by this agent name.
	// Set from the caller's token for agent-role users.
	AgentExact string
	// AgentLike is the admin-only fuzzy agent filter.
	AgentLike string
	Status    domain.CameraStatus
}

// RentalFilter narrows rental list queries.
type RentalFilter struct {
	AgentExact   string
	AgentLike    string
	CameraCode   string
	CustomerName string
	StartDate    string
	EndDate      string
}

// UserFilter narrows user list queries.
type UserFilter struct {
	Username  string
	Role      domain.UserRole
	AgentName string
}

type CameraRepository interface {
	Create(ctx context.Context, camera *domain.Camera) error
	GetByID(ctx context.Context, id int32) (*domain.Camera, error)
	GetWithHistory(ctx context.Context, id int32) (*domain.Camera, error)
	List(ctx context.Context, filter CameraFilter) ([]domain.Camera, error)
	SearchByCode(ctx context.Context, code string) ([]domain.Camera, error)
	CodeExists(ctx context.Context, code string, excludeID int32) (bool, error)
	Update(ctx context.Context, camera *domain.Camera) error
	UpdateStatus(ctx context.Context, id int32, status domain.CameraStatus) (*domain.Camera, error)
	Delete(ctx context.Context, id int32) error
}

type RentalRepository interface {
	// Create inserts a rental after re-checking for date conflicts inside a
	// transaction that locks the camera row. Returns ErrRentalConflict if
	// the range is taken.
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	List(ctx context.Context, filter RentalFilter, page, pageSize int32) ([]domain.Rental, int32, error)
	ListForCalendar(ctx context.Context, startDate, endDate string, cameraID int32) ([]domain.Rental, error)
	HasConflict(ctx context.Context, cameraID int32, rentalDate, returnDate string, excludeRentalID int32) (bool, error)
	// ConflictingCameraIDs returns the set of camera ids that have an
	// active/reserved rental overlapping the closed-inclusive candidate
	// range. One query regardless of fleet size.
	ConflictingCameraIDs(ctx context.Context, rentalDate, returnDate string) (map[int32]bool, error)
	// UpdateDates changes a rental's date range with the same transactional
	// conflict check as Create, excluding the rental itself.
	UpdateDates(ctx context.Context, id int32, rentalDate, returnDate string) error
	UpdateNotes(ctx context.Context, id int32, notes string) error
	Delete(ctx context.Context, id int32) error
	CountActiveByCamera(ctx context.Context, cameraID int32) (int32, error)
	// MarkCompleted sets status 'completed' on active rentals whose return
	// date is before the given day. Returns the number of rentals updated.
	MarkCompleted(ctx context.Context, today string) (int64, error)
	// ListDueOn returns active/reserved rentals whose return date equals the
	// given day.
	ListDueOn(ctx context.Context, date string) ([]domain.Rental, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
	Delete(ctx context.Context, id int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
}
