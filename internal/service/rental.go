package service

import (
	"context"
	"fmt"
	"time"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/logger"
	"camera-rental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	cameraRepo repository.CameraRepository
	emailSvc   EmailService
	opsEmail   string
	now        func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	cameraRepo repository.CameraRepository,
	emailSvc EmailService,
	opsEmail string,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		cameraRepo: cameraRepo,
		emailSvc:   emailSvc,
		opsEmail:   opsEmail,
		now:        time.Now,
	}
}

func (s *rentalService) ListRentals(ctx context.Context, viewer *Viewer, opts RentalListOptions) ([]domain.Rental, int32, error) {
	filter := repository.RentalFilter{
		CameraCode:   opts.CameraCode,
		CustomerName: opts.CustomerName,
		StartDate:    opts.StartDate,
		EndDate:      opts.EndDate,
	}
	if viewer.IsAgent() {
		filter.AgentExact = viewer.AgentName
	} else if opts.Agent != "" && viewer.IsAdmin() {
		filter.AgentLike = opts.Agent
	}

	rentals, total, err := s.rentalRepo.List(ctx, filter, opts.Page, opts.PageSize)
	if err != nil {
		return nil, 0, err
	}

	today := s.now()
	for i := range rentals {
		rentals[i].DisplayStatus = domain.DeriveStatus(rentals[i].Status, today, rentals[i].RentalDate, rentals[i].ReturnDate)
	}

	// The display-status filter applies to the fetched page only; it is a
	// projection of the clock, not a stored column.
	if opts.Status != "" {
		filtered := rentals[:0]
		for _, rt := range rentals {
			if rt.DisplayStatus == opts.Status {
				filtered = append(filtered, rt)
			}
		}
		rentals = filtered
	}

	return rentals, total, nil
}

func (s *rentalService) GetCalendar(ctx context.Context, year, month int, cameraID int32) ([]domain.Rental, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, ErrInvalidDateRange
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	rentals, err := s.rentalRepo.ListForCalendar(ctx, first.Format(domain.DateLayout), last.Format(domain.DateLayout), cameraID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	for i := range rentals {
		rentals[i].DisplayStatus = domain.DeriveStatus(rentals[i].Status, today, rentals[i].RentalDate, rentals[i].ReturnDate)
	}
	return rentals, nil
}

func (s *rentalService) CheckConflict(ctx context.Context, cameraID int32, rentalDate, returnDate string, excludeRentalID int32) (bool, error) {
	start, end, err := domain.ParseDateRange(rentalDate, returnDate)
	if err != nil || end.Before(start) {
		return false, ErrInvalidDateRange
	}
	return s.rentalRepo.HasConflict(ctx, cameraID, rentalDate, returnDate, excludeRentalID)
}

func (s *rentalService) CreateRental(ctx context.Context, rental *domain.Rental) error {
	if rental.CustomerName == "" || rental.CustomerPhone == "" {
		return ErrMissingFields
	}
	// A rental is born active or reserved; terminal and derived states are
	// never accepted from the client.
	switch rental.Status {
	case "", domain.RentalStatusActive, domain.RentalStatusReserved:
	default:
		return ErrInvalidStatus
	}
	start, end, err := domain.ParseDateRange(rental.RentalDate, rental.ReturnDate)
	if err != nil || end.Before(start) {
		return ErrInvalidDateRange
	}

	camera, err := s.cameraRepo.GetByID(ctx, rental.CameraID)
	if err != nil {
		return err
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		if err == repository.ErrRentalConflict {
			return ErrRentalConflict
		}
		return err
	}
	rental.CameraCode = camera.CameraCode
	rental.Brand = camera.Brand
	rental.Model = camera.Model
	rental.Agent = camera.Agent
	rental.DisplayStatus = domain.DeriveStatus(rental.Status, s.now(), rental.RentalDate, rental.ReturnDate)

	// Notification failures never block the booking.
	if s.emailSvc != nil && s.opsEmail != "" {
		if err := s.emailSvc.SendRentalCreated(ctx, s.opsEmail, rental); err != nil {
			logger.Warn("failed to send rental created notification", "rental_id", rental.ID, "error", err)
		}
	}

	return nil
}

func (s *rentalService) ExtendRental(ctx context.Context, id int32, newReturnDate string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newEnd, err := time.Parse(domain.DateLayout, newReturnDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	currentEnd, err := time.Parse(domain.DateLayout, rt.ReturnDate)
	if err == nil && !newEnd.After(currentEnd) {
		return nil, fmt.Errorf("%w: new return date must be after %s", ErrInvalidDateRange, rt.ReturnDate)
	}

	if err := s.rentalRepo.UpdateDates(ctx, id, rt.RentalDate, newReturnDate); err != nil {
		if err == repository.ErrRentalConflict {
			return nil, ErrRentalConflict
		}
		return nil, err
	}
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ModifyRentalDates(ctx context.Context, id int32, newRentalDate, newReturnDate string) (*domain.Rental, error) {
	start, end, err := domain.ParseDateRange(newRentalDate, newReturnDate)
	if err != nil || end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	if _, err := s.rentalRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.rentalRepo.UpdateDates(ctx, id, newRentalDate, newReturnDate); err != nil {
		if err == repository.ErrRentalConflict {
			return nil, ErrRentalConflict
		}
		return nil, err
	}
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) UpdateRentalNotes(ctx context.Context, id int32, notes string) (*domain.Rental, error) {
	if err := s.rentalRepo.UpdateNotes(ctx, id, notes); err != nil {
		return nil, err
	}
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) DeleteRental(ctx context.Context, id int32) error {
	if _, err := s.rentalRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.rentalRepo.Delete(ctx, id)
}
