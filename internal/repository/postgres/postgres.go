package postgres

import (
	"database/sql"

	"camera-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CameraRepository
	repository.RentalRepository
	repository.UserRepository
	repository.CustomerRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		CameraRepository:   NewCameraRepository(db),
		RentalRepository:   NewRentalRepository(db),
		UserRepository:     NewUserRepository(db),
		CustomerRepository: NewCustomerRepository(db),
	}
}
