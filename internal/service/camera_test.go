package service

import (
	"context"
	"database/sql"
	"testing"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCameraService_ListCameras(t *testing.T) {
	ctx := context.Background()
	cameras := []domain.Camera{
		{ID: 1, CameraCode: "CAM-001", Status: domain.CameraStatusAvailable},
		{ID: 2, CameraCode: "CAM-002", Status: domain.CameraStatusAvailable},
		{ID: 3, CameraCode: "CAM-003", Status: domain.CameraStatusUnavailable},
	}

	t.Run("No date range mirrors stored status", func(t *testing.T) {
		cameraRepo := new(MockCameraRepo)
		rentalRepo := new(MockRentalRepo)
		svc := NewCameraService(cameraRepo, rentalRepo)

		cameraRepo.On("List", ctx, repository.CameraFilter{}).Return(cameras, nil)

		got, err := svc.ListCameras(ctx, nil, CameraListOptions{})
		assert.NoError(t, err)
		assert.Equal(t, domain.CameraStatusAvailable, got[0].DynamicStatus)
		assert.Equal(t, domain.CameraStatusUnavailable, got[2].DynamicStatus)
		rentalRepo.AssertNotCalled(t, "ConflictingCameraIDs")
	})

	t.Run("Date range marks conflicting cameras unavailable", func(t *testing.T) {
		cameraRepo := new(MockCameraRepo)
		rentalRepo := new(MockRentalRepo)
		svc := NewCameraService(cameraRepo, rentalRepo)

		cameraRepo.On("List", ctx, repository.CameraFilter{}).Return(cameras, nil)
		rentalRepo.On("ConflictingCameraIDs", ctx, "2024-01-10", "2024-01-15").
			Return(map[int32]bool{1: true, 3: true}, nil)

		got, err := svc.ListCameras(ctx, nil, CameraListOptions{
			RentalDate: "2024-01-10",
			ReturnDate: "2024-01-15",
		})
		assert.NoError(t, err)

		assert.Equal(t, domain.CameraStatusUnavailable, got[0].DynamicStatus)
		assert.NotEmpty(t, got[0].DynamicStatusReason)
		// Stored status never changes as a side effect.
		assert.Equal(t, domain.CameraStatusAvailable, got[0].Status)

		assert.Equal(t, domain.CameraStatusAvailable, got[1].DynamicStatus)

		// Already unavailable cameras keep their stored status, without a reason.
		assert.Equal(t, domain.CameraStatusUnavailable, got[2].DynamicStatus)
		assert.Empty(t, got[2].DynamicStatusReason)

		// One overlap query covers the whole list.
		rentalRepo.AssertNumberOfCalls(t, "ConflictingCameraIDs", 1)
	})

	t.Run("Agent viewer sees only own cameras", func(t *testing.T) {
		cameraRepo := new(MockCameraRepo)
		svc := NewCameraService(cameraRepo, new(MockRentalRepo))

		viewer := &Viewer{UserID: 4, Role: domain.UserRoleAgent, AgentName: "alice"}
		cameraRepo.On("List", ctx, repository.CameraFilter{AgentExact: "alice"}).Return([]domain.Camera{}, nil)

		_, err := svc.ListCameras(ctx, viewer, CameraListOptions{Agent: "bob"})
		assert.NoError(t, err)
		cameraRepo.AssertExpectations(t)
	})

	t.Run("Invalid date range", func(t *testing.T) {
		cameraRepo := new(MockCameraRepo)
		svc := NewCameraService(cameraRepo, new(MockRentalRepo))

		cameraRepo.On("List", ctx, repository.CameraFilter{}).Return(cameras, nil)

		_, err := svc.ListCameras(ctx, nil, CameraListOptions{RentalDate: "bad", ReturnDate: "2024-01-15"})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestCameraService_GetCamera(t *testing.T) {
	ctx := context.Background()
	cameraRepo := new(MockCameraRepo)
	svc := NewCameraService(cameraRepo, new(MockRentalRepo))
	svc.(*cameraService).now = fixedClock("2024-01-14")

	cam := &domain.Camera{
		ID:         5,
		CameraCode: "CAM-005",
		RentalHistory: []domain.Rental{
			{ID: 1, Status: domain.RentalStatusActive, RentalDate: "2024-01-01", ReturnDate: "2024-01-05"},
			{ID: 2, Status: domain.RentalStatusActive, RentalDate: "2024-01-12", ReturnDate: "2024-01-20"},
			{ID: 3, Status: domain.RentalStatusActive, RentalDate: "2024-02-01", ReturnDate: "2024-02-03"},
			{ID: 4, Status: domain.RentalStatusCancelled, RentalDate: "2024-01-12", ReturnDate: "2024-01-20"},
		},
	}
	cameraRepo.On("GetWithHistory", ctx, int32(5)).Return(cam, nil)

	got, err := svc.GetCamera(ctx, 5)
	assert.NoError(t, err)

	// History rows carry the same time-aware status as the rental views.
	assert.Equal(t, domain.RentalStatusCompleted, got.RentalHistory[0].DisplayStatus)
	assert.Equal(t, domain.RentalStatusActive, got.RentalHistory[1].DisplayStatus)
	assert.Equal(t, domain.RentalStatusUpcoming, got.RentalHistory[2].DisplayStatus)
	assert.Equal(t, domain.RentalStatusCancelled, got.RentalHistory[3].DisplayStatus)
}

func TestCameraService_AddCamera(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cameraRepo := new(MockCameraRepo)
		svc := NewCameraService(cameraRepo, new(MockRentalRepo))

		cameraRepo.On("CodeExists", ctx, "CAM-010", int32(0)).Return(false, nil)
		cameraRepo.On("Create", ctx, mock.AnythingOfType("*domain.Camera")).Return(nil)

		err := svc.AddCamera(ctx, &domain.Camera{CameraCode: "CAM-010", Brand: "Sony", Model: "A7IV"})
		assert.NoError(t, err)
	})

	t.Run("Duplicate code", func(t *testing.T) {
		cameraRepo := new(MockCameraRepo)
		svc := NewCameraService(cameraRepo, new(MockRentalRepo))

		cameraRepo.On("CodeExists", ctx, "CAM-010", int32(0)).Return(true, nil)

		err := svc.AddCamera(ctx, &domain.Camera{CameraCode: "CAM-010", Brand: "Sony", Model: "A7IV"})
		assert.ErrorIs(t, err, ErrDuplicateCameraCode)
	})

	t.Run("Missing fields", func(t *testing.T) {
		svc := NewCameraService(new(MockCameraRepo), new(MockRentalRepo))
		err := svc.AddCamera(ctx, &domain.Camera{CameraCode: "CAM-010"})
		assert.ErrorIs(t, err, ErrMissingFields)
	})
}

func TestCameraService_DeleteCamera(t *testing.T) {
	ctx := context.Background()
	camera := &domain.Camera{ID: 5, CameraCode: "CAM-005"}

	t.Run("Blocked by active rentals", func(t *testing.T) {
		cameraRepo := new(MockCameraRepo)
		rentalRepo := new(MockRentalRepo)
		svc := NewCameraService(cameraRepo, rentalRepo)

		cameraRepo.On("GetByID", ctx, int32(5)).Return(camera, nil)
		rentalRepo.On("CountActiveByCamera", ctx, int32(5)).Return(2, nil)

		err := svc.DeleteCamera(ctx, 5)
		assert.ErrorIs(t, err, ErrCameraHasActiveRentals)
		cameraRepo.AssertNotCalled(t, "Delete", ctx, int32(5))
	})

	t.Run("Success", func(t *testing.T) {
		cameraRepo := new(MockCameraRepo)
		rentalRepo := new(MockRentalRepo)
		svc := NewCameraService(cameraRepo, rentalRepo)

		cameraRepo.On("GetByID", ctx, int32(5)).Return(camera, nil)
		rentalRepo.On("CountActiveByCamera", ctx, int32(5)).Return(0, nil)
		cameraRepo.On("Delete", ctx, int32(5)).Return(nil)

		assert.NoError(t, svc.DeleteCamera(ctx, 5))
	})

	t.Run("Unknown camera", func(t *testing.T) {
		cameraRepo := new(MockCameraRepo)
		svc := NewCameraService(cameraRepo, new(MockRentalRepo))

		cameraRepo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows)

		err := svc.DeleteCamera(ctx, 99)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestCameraService_UpdateCameraStatus(t *testing.T) {
	ctx := context.Background()
	cameraRepo := new(MockCameraRepo)
	svc := NewCameraService(cameraRepo, new(MockRentalRepo))

	_, err := svc.UpdateCameraStatus(ctx, 1, "broken")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated := &domain.Camera{ID: 1, Status: domain.CameraStatusUnavailable}
	cameraRepo.On("UpdateStatus", ctx, int32(1), domain.CameraStatusUnavailable).Return(updated, nil)

	got, err := svc.UpdateCameraStatus(ctx, 1, domain.CameraStatusUnavailable)
	assert.NoError(t, err)
	assert.Equal(t, domain.CameraStatusUnavailable, got.Status)
}
