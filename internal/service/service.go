package service

import (
	"context"

	"camera-rental-backend/internal/domain"
)

// Viewer identifies the caller for role-based visibility. A nil *Viewer
// means the request carried no (valid) token.
type Viewer struct {
	UserID    int32
	Role      domain.UserRole
	AgentName string
}

// IsAdmin reports whether the viewer has the admin role.
func (v *Viewer) IsAdmin() bool {
	return v != nil && v.Role == domain.UserRoleAdmin
}

// IsAgent reports whether the viewer is an agent with a known agent name.
func (v *Viewer) IsAgent() bool {
	return v != nil && v.Role == domain.UserRoleAgent && v.AgentName != ""
}

// CameraListOptions are the query filters for camera listings.
type CameraListOptions struct {
	Status     domain.CameraStatus
	Agent      string // admin-only fuzzy filter
	RentalDate string // candidate range for dynamic status annotation
	ReturnDate string
}

// RentalListOptions are the query filters for rental listings.
type RentalListOptions struct {
	CameraCode   string
	Agent        string // admin-only fuzzy filter
	CustomerName string
	StartDate    string
	EndDate      string
	Status       domain.RentalStatus // filters on the derived display status
	Page         int32
	PageSize     int32
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error
}

type CameraService interface {
	ListCameras(ctx context.Context, viewer *Viewer, opts CameraListOptions) ([]domain.Camera, error)
	SearchCameras(ctx context.Context, code string) ([]domain.Camera, error)
	GetCamera(ctx context.Context, id int32) (*domain.Camera, error)
	AddCamera(ctx context.Context, camera *domain.Camera) error
	UpdateCamera(ctx context.Context, camera *domain.Camera) error
	UpdateCameraStatus(ctx context.Context, id int32, status domain.CameraStatus) (*domain.Camera, error)
	DeleteCamera(ctx context.Context, id int32) error
}

type RentalService interface {
	ListRentals(ctx context.Context, viewer *Viewer, opts RentalListOptions) ([]domain.Rental, int32, error)
	GetCalendar(ctx context.Context, year, month int, cameraID int32) ([]domain.Rental, error)
	CheckConflict(ctx context.Context, cameraID int32, rentalDate, returnDate string, excludeRentalID int32) (bool, error)
	CreateRental(ctx context.Context, rental *domain.Rental) error
	ExtendRental(ctx context.Context, id int32, newReturnDate string) (*domain.Rental, error)
	ModifyRentalDates(ctx context.Context, id int32, newRentalDate, newReturnDate string) (*domain.Rental, error)
	UpdateRentalNotes(ctx context.Context, id int32, notes string) (*domain.Rental, error)
	DeleteRental(ctx context.Context, id int32) error
}

type UserService interface {
	ListUsers(ctx context.Context, username string, role domain.UserRole, agentName string) ([]domain.User, error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	CreateUser(ctx context.Context, username, password string, role domain.UserRole, agentName string) (*domain.User, error)
	UpdateUser(ctx context.Context, id int32, role domain.UserRole, agentName, password *string) (*domain.User, error)
	DeleteUser(ctx context.Context, callerID, id int32) (*domain.User, error)
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, name, phone string) (*domain.Customer, error)
}

type EmailService interface {
	SendRentalCreated(ctx context.Context, toEmail string, rental *domain.Rental) error
	SendReturnReminder(ctx context.Context, toEmail string, rental *domain.Rental) error
}
