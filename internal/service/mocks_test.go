package service

import (
	"context"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/repository"
	"camera-rental-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockCameraRepo
type MockCameraRepo struct {
	mock.Mock
}

func (m *MockCameraRepo) Create(ctx context.Context, camera *domain.Camera) error {
	args := m.Called(ctx, camera)
	return args.Error(0)
}
func (m *MockCameraRepo) GetByID(ctx context.Context, id int32) (*domain.Camera, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Camera), args.Error(1)
}
func (m *MockCameraRepo) GetWithHistory(ctx context.Context, id int32) (*domain.Camera, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Camera), args.Error(1)
}
func (m *MockCameraRepo) List(ctx context.Context, filter repository.CameraFilter) ([]domain.Camera, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Camera), args.Error(1)
}
func (m *MockCameraRepo) SearchByCode(ctx context.Context, code string) ([]domain.Camera, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Camera), args.Error(1)
}
func (m *MockCameraRepo) CodeExists(ctx context.Context, code string, excludeID int32) (bool, error) {
	args := m.Called(ctx, code, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockCameraRepo) Update(ctx context.Context, camera *domain.Camera) error {
	args := m.Called(ctx, camera)
	return args.Error(0)
}
func (m *MockCameraRepo) UpdateStatus(ctx context.Context, id int32, status domain.CameraStatus) (*domain.Camera, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Camera), args.Error(1)
}
func (m *MockCameraRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context, filter repository.RentalFilter, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Rental), int32(args.Int(1)), args.Error(2)
}
func (m *MockRentalRepo) ListForCalendar(ctx context.Context, startDate, endDate string, cameraID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, startDate, endDate, cameraID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) HasConflict(ctx context.Context, cameraID int32, rentalDate, returnDate string, excludeRentalID int32) (bool, error) {
	args := m.Called(ctx, cameraID, rentalDate, returnDate, excludeRentalID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) ConflictingCameraIDs(ctx context.Context, rentalDate, returnDate string) (map[int32]bool, error) {
	args := m.Called(ctx, rentalDate, returnDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int32]bool), args.Error(1)
}
func (m *MockRentalRepo) UpdateDates(ctx context.Context, id int32, rentalDate, returnDate string) error {
	args := m.Called(ctx, id, rentalDate, returnDate)
	return args.Error(0)
}
func (m *MockRentalRepo) UpdateNotes(ctx context.Context, id int32, notes string) error {
	args := m.Called(ctx, id, notes)
	return args.Error(0)
}
func (m *MockRentalRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) CountActiveByCamera(ctx context.Context, cameraID int32) (int32, error) {
	args := m.Called(ctx, cameraID)
	return int32(args.Int(0)), args.Error(1)
}
func (m *MockRentalRepo) MarkCompleted(ctx context.Context, today string) (int64, error) {
	args := m.Called(ctx, today)
	return int64(args.Int(0)), args.Error(1)
}
func (m *MockRentalRepo) ListDueOn(ctx context.Context, date string) ([]domain.Rental, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalCreated(ctx context.Context, toEmail string, rental *domain.Rental) error {
	args := m.Called(ctx, toEmail, rental)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, toEmail string, rental *domain.Rental) error {
	args := m.Called(ctx, toEmail, rental)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateToken(user *domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
