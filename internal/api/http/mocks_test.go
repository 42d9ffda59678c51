package http

import (
	"context"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}
func (m *MockAuthService) ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

// MockCameraService
type MockCameraService struct {
	mock.Mock
}

func (m *MockCameraService) ListCameras(ctx context.Context, viewer *service.Viewer, opts service.CameraListOptions) ([]domain.Camera, error) {
	args := m.Called(ctx, viewer, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Camera), args.Error(1)
}
func (m *MockCameraService) SearchCameras(ctx context.Context, code string) ([]domain.Camera, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Camera), args.Error(1)
}
func (m *MockCameraService) GetCamera(ctx context.Context, id int32) (*domain.Camera, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Camera), args.Error(1)
}
func (m *MockCameraService) AddCamera(ctx context.Context, camera *domain.Camera) error {
	args := m.Called(ctx, camera)
	return args.Error(0)
}
func (m *MockCameraService) UpdateCamera(ctx context.Context, camera *domain.Camera) error {
	args := m.Called(ctx, camera)
	return args.Error(0)
}
func (m *MockCameraService) UpdateCameraStatus(ctx context.Context, id int32, status domain.CameraStatus) (*domain.Camera, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Camera), args.Error(1)
}
func (m *MockCameraService) DeleteCamera(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) ListRentals(ctx context.Context, viewer *service.Viewer, opts service.RentalListOptions) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, viewer, opts)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Rental), int32(args.Int(1)), args.Error(2)
}
func (m *MockRentalService) GetCalendar(ctx context.Context, year, month int, cameraID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, year, month, cameraID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalService) CheckConflict(ctx context.Context, cameraID int32, rentalDate, returnDate string, excludeRentalID int32) (bool, error) {
	args := m.Called(ctx, cameraID, rentalDate, returnDate, excludeRentalID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalService) CreateRental(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalService) ExtendRental(ctx context.Context, id int32, newReturnDate string) (*domain.Rental, error) {
	args := m.Called(ctx, id, newReturnDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ModifyRentalDates(ctx context.Context, id int32, newRentalDate, newReturnDate string) (*domain.Rental, error) {
	args := m.Called(ctx, id, newRentalDate, newReturnDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) UpdateRentalNotes(ctx context.Context, id int32, notes string) (*domain.Rental, error) {
	args := m.Called(ctx, id, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) DeleteRental(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context, username string, role domain.UserRole, agentName string) ([]domain.User, error) {
	args := m.Called(ctx, username, role, agentName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, username, password string, role domain.UserRole, agentName string) (*domain.User, error) {
	args := m.Called(ctx, username, password, role, agentName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, id int32, role domain.UserRole, agentName, password *string) (*domain.User, error) {
	args := m.Called(ctx, id, role, agentName, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, callerID, id int32) (*domain.User, error) {
	args := m.Called(ctx, callerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockCustomerService
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) CreateCustomer(ctx context.Context, name, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, name, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
