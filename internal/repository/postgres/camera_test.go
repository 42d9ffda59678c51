package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCameraRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCameraRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		camera := &domain.Camera{
			CameraCode: "CAM-001",
			Brand:      "Canon",
			Model:      "R5",
			Agent:      "alice",
		}

		mock.ExpectQuery(`INSERT INTO cameras`).
			WithArgs(camera.CameraCode, camera.Brand, camera.Model, nil, camera.Agent,
				domain.CameraStatusAvailable, "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(1, time.Now(), time.Now()))

		err := repo.Create(ctx, camera)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), camera.ID)
		assert.Equal(t, domain.CameraStatusAvailable, camera.Status)
	})
}

func TestCameraRepository_CodeExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCameraRepository(db)
	ctx := context.Background()

	t.Run("Existing code", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM cameras`).
			WithArgs("CAM-001", int32(0)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.CodeExists(ctx, "CAM-001", 0)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Excludes the camera being edited", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM cameras`).
			WithArgs("CAM-001", int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.CodeExists(ctx, "CAM-001", 5)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCameraRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCameraRepository(db)
	ctx := context.Background()

	columns := []string{
		"id", "camera_code", "brand", "model", "serial_number", "agent",
		"status", "description", "created_at", "updated_at", "active_rentals",
	}

	t.Run("Agent filter and active rental counts", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT c\.id, c\.camera_code`).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, "CAM-001", "Canon", "R5", "SN1", "alice", "available", "", now, now, 2).
				AddRow(2, "CAM-002", "Sony", "A7IV", "", "alice", "unavailable", "", now, now, 0))

		cameras, err := repo.List(ctx, repository.CameraFilter{AgentExact: "alice"})
		assert.NoError(t, err)
		assert.Len(t, cameras, 2)
		assert.Equal(t, int32(2), cameras[0].ActiveRentals)
		assert.Equal(t, domain.CameraStatusUnavailable, cameras[1].Status)
	})
}

func TestCameraRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCameraRepository(db)
	ctx := context.Background()

	t.Run("Unknown camera", func(t *testing.T) {
		mock.ExpectExec(`UPDATE cameras SET status`).
			WithArgs(domain.CameraStatusUnavailable, sqlmock.AnyArg(), int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.UpdateStatus(ctx, 99, domain.CameraStatusUnavailable)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
