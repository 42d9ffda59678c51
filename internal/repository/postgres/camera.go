package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/repository"
)

type cameraRepository struct {
	db *sql.DB
}

func NewCameraRepository(db *sql.DB) repository.CameraRepository {
	return &cameraRepository{db: db}
}

const cameraColumns = `c.id, c.camera_code, c.brand, c.model, COALESCE(c.serial_number, ''), c.agent, c.status, c.description, c.created_at, c.updated_at`

func (r *cameraRepository) Create(ctx context.Context, c *domain.Camera) error {
	query := `INSERT INTO cameras (camera_code, brand, model, serial_number, agent, status, description, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at, updated_at`
	if c.Status == "" {
		c.Status = domain.CameraStatusAvailable
	}
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		c.CameraCode, c.Brand, c.Model, nullIfEmpty(c.SerialNumber), c.Agent, c.Status, c.Description, now, now,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *cameraRepository) GetByID(ctx context.Context, id int32) (*domain.Camera, error) {
	c := &domain.Camera{}
	query := `SELECT ` + cameraColumns + ` FROM cameras c WHERE c.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.CameraCode, &c.Brand, &c.Model, &c.SerialNumber, &c.Agent, &c.Status, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *cameraRepository) GetWithHistory(ctx context.Context, id int32) (*domain.Camera, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, customer_name, COALESCE(customer_phone, ''), rental_date, return_date, status, COALESCE(notes, '')
	          FROM rentals WHERE camera_id = $1 ORDER BY rental_date DESC`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rt domain.Rental
		var start, end time.Time
		if err := rows.Scan(&rt.ID, &rt.CustomerName, &rt.CustomerPhone, &start, &end, &rt.Status, &rt.Notes); err != nil {
			return nil, err
		}
		rt.CameraID = id
		rt.RentalDate = start.Format(domain.DateLayout)
		rt.ReturnDate = end.Format(domain.DateLayout)
		c.RentalHistory = append(c.RentalHistory, rt)
	}
	return c, rows.Err()
}

func (r *cameraRepository) List(ctx context.Context, filter repository.CameraFilter) ([]domain.Camera, error) {
	query := `SELECT ` + cameraColumns + `,
	       COUNT(rt.id) FILTER (WHERE rt.status = 'active') AS active_rentals
	FROM cameras c
	LEFT JOIN rentals rt ON rt.camera_id = c.id`

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.AgentExact != "" {
		conditions = append(conditions, fmt.Sprintf("c.agent = $%d", argIdx))
		args = append(args, filter.AgentExact)
		argIdx++
	}
	if filter.AgentLike != "" {
		conditions = append(conditions, fmt.Sprintf("c.agent ILIKE $%d", argIdx))
		args = append(args, "%"+filter.AgentLike+"%")
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " GROUP BY c.id ORDER BY c.camera_code"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cameras []domain.Camera
	for rows.Next() {
		var c domain.Camera
		if err := rows.Scan(&c.ID, &c.CameraCode, &c.Brand, &c.Model, &c.SerialNumber, &c.Agent, &c.Status, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.ActiveRentals); err != nil {
			return nil, err
		}
		cameras = append(cameras, c)
	}
	return cameras, rows.Err()
}

func (r *cameraRepository) SearchByCode(ctx context.Context, code string) ([]domain.Camera, error) {
	query := `SELECT ` + cameraColumns + `,
	       COUNT(rt.id) FILTER (WHERE rt.status = 'active') AS active_rentals
	FROM cameras c
	LEFT JOIN rentals rt ON rt.camera_id = c.id
	WHERE c.camera_code ILIKE $1
	GROUP BY c.id ORDER BY c.camera_code`

	rows, err := r.db.QueryContext(ctx, query, "%"+code+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cameras []domain.Camera
	for rows.Next() {
		var c domain.Camera
		if err := rows.Scan(&c.ID, &c.CameraCode, &c.Brand, &c.Model, &c.SerialNumber, &c.Agent, &c.Status, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.ActiveRentals); err != nil {
			return nil, err
		}
		cameras = append(cameras, c)
	}
	return cameras, rows.Err()
}

func (r *cameraRepository) CodeExists(ctx context.Context, code string, excludeID int32) (bool, error) {
	var count int32
	query := `SELECT COUNT(*) FROM cameras WHERE camera_code = $1 AND id != $2`
	if err := r.db.QueryRowContext(ctx, query, code, excludeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *cameraRepository) Update(ctx context.Context, c *domain.Camera) error {
	query := `UPDATE cameras
	          SET camera_code = $1, brand = $2, model = $3, serial_number = $4, agent = $5, status = $6, description = $7, updated_at = $8
	          WHERE id = $9 RETURNING updated_at`
	return r.db.QueryRowContext(ctx, query,
		c.CameraCode, c.Brand, c.Model, nullIfEmpty(c.SerialNumber), c.Agent, c.Status, c.Description, time.Now(), c.ID,
	).Scan(&c.UpdatedAt)
}

func (r *cameraRepository) UpdateStatus(ctx context.Context, id int32, status domain.CameraStatus) (*domain.Camera, error) {
	query := `UPDATE cameras SET status = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, sql.ErrNoRows
	}
	return r.GetByID(ctx, id)
}

func (r *cameraRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cameras WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
