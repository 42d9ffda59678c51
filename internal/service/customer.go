package service

import (
	"context"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/repository"
)

// customerService backs the legacy customer picker. Rentals carry customer
// details inline; this path is retained for older clients only.
type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) CreateCustomer(ctx context.Context, name, phone string) (*domain.Customer, error) {
	if name == "" {
		return nil, ErrMissingFields
	}
	customer := &domain.Customer{Name: name, Phone: phone}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
