package service

import (
	"context"
	"time"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/repository"
)

type cameraService struct {
	cameraRepo repository.CameraRepository
	rentalRepo repository.RentalRepository
	now        func() time.Time
}

func NewCameraService(cameraRepo repository.CameraRepository, rentalRepo repository.RentalRepository) CameraService {
	return &cameraService{
		cameraRepo: cameraRepo,
		rentalRepo: rentalRepo,
		now:        time.Now,
	}
}

func (s *cameraService) ListCameras(ctx context.Context, viewer *Viewer, opts CameraListOptions) ([]domain.Camera, error) {
	filter := repository.CameraFilter{Status: opts.Status}

	// Agents only ever see their own cameras; the fuzzy agent filter is an
	// admin convenience.
	if viewer.IsAgent() {
		filter.AgentExact = viewer.AgentName
	} else if opts.Agent != "" && viewer.IsAdmin() {
		filter.AgentLike = opts.Agent
	}

	cameras, err := s.cameraRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Without a candidate range the dynamic status mirrors the stored one.
	if opts.RentalDate == "" || opts.ReturnDate == "" {
		for i := range cameras {
			cameras[i].DynamicStatus = cameras[i].Status
		}
		return cameras, nil
	}

	if _, _, err := domain.ParseDateRange(opts.RentalDate, opts.ReturnDate); err != nil {
		return nil, ErrInvalidDateRange
	}

	conflicting, err := s.rentalRepo.ConflictingCameraIDs(ctx, opts.RentalDate, opts.ReturnDate)
	if err != nil {
		return nil, err
	}

	for i := range cameras {
		c := &cameras[i]
		c.DynamicStatus = c.Status
		if c.Status != domain.CameraStatusAvailable {
			continue
		}
		if conflicting[c.ID] {
			c.DynamicStatus = domain.CameraStatusUnavailable
			c.DynamicStatusReason = "already rented for the requested dates"
		}
	}
	return cameras, nil
}

func (s *cameraService) SearchCameras(ctx context.Context, code string) ([]domain.Camera, error) {
	return s.cameraRepo.SearchByCode(ctx, code)
}

func (s *cameraService) GetCamera(ctx context.Context, id int32) (*domain.Camera, error) {
	c, err := s.cameraRepo.GetWithHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	// History rows carry the same time-aware status as the rental views.
	today := s.now()
	for i := range c.RentalHistory {
		h := &c.RentalHistory[i]
		h.DisplayStatus = domain.DeriveStatus(h.Status, today, h.RentalDate, h.ReturnDate)
	}
	return c, nil
}

func (s *cameraService) AddCamera(ctx context.Context, camera *domain.Camera) error {
	if camera.CameraCode == "" || camera.Brand == "" || camera.Model == "" {
		return ErrMissingFields
	}
	exists, err := s.cameraRepo.CodeExists(ctx, camera.CameraCode, 0)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateCameraCode
	}
	return s.cameraRepo.Create(ctx, camera)
}

func (s *cameraService) UpdateCamera(ctx context.Context, camera *domain.Camera) error {
	if camera.CameraCode == "" {
		return ErrMissingFields
	}
	if camera.Status != domain.CameraStatusAvailable && camera.Status != domain.CameraStatusUnavailable {
		return ErrInvalidStatus
	}
	exists, err := s.cameraRepo.CodeExists(ctx, camera.CameraCode, camera.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateCameraCode
	}
	return s.cameraRepo.Update(ctx, camera)
}

func (s *cameraService) UpdateCameraStatus(ctx context.Context, id int32, status domain.CameraStatus) (*domain.Camera, error) {
	if status != domain.CameraStatusAvailable && status != domain.CameraStatusUnavailable {
		return nil, ErrInvalidStatus
	}
	return s.cameraRepo.UpdateStatus(ctx, id, status)
}

func (s *cameraService) DeleteCamera(ctx context.Context, id int32) error {
	if _, err := s.cameraRepo.GetByID(ctx, id); err != nil {
		return err
	}
	active, err := s.rentalRepo.CountActiveByCamera(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrCameraHasActiveRentals
	}
	return s.cameraRepo.Delete(ctx, id)
}
