package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// conflictQuery counts active/reserved rentals for a camera whose
// closed-inclusive [rental_date, return_date] range touches the candidate
// range: start-within, end-within, or fully-containing.
const conflictQuery = `SELECT COUNT(*) FROM rentals
	WHERE camera_id = $1
	AND status IN ('active', 'reserved')
	AND id != $4
	AND (
		(rental_date <= $2 AND return_date >= $2) OR
		(rental_date <= $3 AND return_date >= $3) OR
		(rental_date >= $2 AND return_date <= $3)
	)`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the camera row so concurrent creates for the same camera
	// serialize on the conflict check.
	var cameraID int32
	if err := tx.QueryRowContext(ctx, `SELECT id FROM cameras WHERE id = $1 FOR UPDATE`, rt.CameraID).Scan(&cameraID); err != nil {
		return err
	}

	var conflicts int32
	if err := tx.QueryRowContext(ctx, conflictQuery, rt.CameraID, rt.RentalDate, rt.ReturnDate, int32(0)).Scan(&conflicts); err != nil {
		return err
	}
	if conflicts > 0 {
		return repository.ErrRentalConflict
	}

	if rt.Status == "" {
		rt.Status = domain.RentalStatusActive
	}
	now := time.Now()
	query := `INSERT INTO rentals (camera_id, customer_name, customer_phone, rental_date, return_date, status, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at, updated_at`
	if err := tx.QueryRowContext(ctx, query,
		rt.CameraID, rt.CustomerName, rt.CustomerPhone, rt.RentalDate, rt.ReturnDate, rt.Status, rt.Notes, now, now,
	).Scan(&rt.ID, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var start, end time.Time
	query := `SELECT r.id, r.camera_id, r.customer_name, COALESCE(r.customer_phone, ''), r.rental_date, r.return_date, r.status, COALESCE(r.notes, ''), r.created_at, r.updated_at,
	                 c.camera_code, c.brand, c.model, COALESCE(c.serial_number, ''), c.agent
	          FROM rentals r JOIN cameras c ON r.camera_id = c.id
	          WHERE r.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.CameraID, &rt.CustomerName, &rt.CustomerPhone, &start, &end, &rt.Status, &rt.Notes, &rt.CreatedAt, &rt.UpdatedAt,
		&rt.CameraCode, &rt.Brand, &rt.Model, &rt.SerialNumber, &rt.Agent)
	if err != nil {
		return nil, err
	}
	rt.RentalDate = start.Format(domain.DateLayout)
	rt.ReturnDate = end.Format(domain.DateLayout)
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context, filter repository.RentalFilter, page, pageSize int32) ([]domain.Rental, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := `SELECT r.id, r.camera_id, r.customer_name, COALESCE(r.customer_phone, ''), r.rental_date, r.return_date, r.status, COALESCE(r.notes, ''), r.created_at, r.updated_at,
	                 c.camera_code, c.brand, c.model, COALESCE(c.serial_number, ''), c.agent
	          FROM rentals r JOIN cameras c ON r.camera_id = c.id
	          WHERE 1=1`

	var args []interface{}
	argIdx := 1

	if filter.AgentExact != "" {
		query += fmt.Sprintf(" AND c.agent = $%d", argIdx)
		args = append(args, filter.AgentExact)
		argIdx++
	}
	if filter.AgentLike != "" {
		query += fmt.Sprintf(" AND c.agent ILIKE $%d", argIdx)
		args = append(args, "%"+filter.AgentLike+"%")
		argIdx++
	}
	if filter.CameraCode != "" {
		query += fmt.Sprintf(" AND c.camera_code ILIKE $%d", argIdx)
		args = append(args, "%"+filter.CameraCode+"%")
		argIdx++
	}
	if filter.CustomerName != "" {
		query += fmt.Sprintf(" AND r.customer_name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.CustomerName+"%")
		argIdx++
	}
	if filter.StartDate != "" {
		query += fmt.Sprintf(" AND r.rental_date >= $%d", argIdx)
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		query += fmt.Sprintf(" AND r.return_date <= $%d", argIdx)
		args = append(args, filter.EndDate)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY r.rental_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	rentals, err := scanRentalRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return rentals, count, nil
}

func (r *rentalRepository) ListForCalendar(ctx context.Context, startDate, endDate string, cameraID int32) ([]domain.Rental, error) {
	query := `SELECT r.id, r.camera_id, r.customer_name, COALESCE(r.customer_phone, ''), r.rental_date, r.return_date, r.status, COALESCE(r.notes, ''), r.created_at, r.updated_at,
	                 c.camera_code, c.brand, c.model, COALESCE(c.serial_number, ''), c.agent
	          FROM rentals r JOIN cameras c ON r.camera_id = c.id
	          WHERE r.rental_date <= $2 AND r.return_date >= $1`
	args := []interface{}{startDate, endDate}
	if cameraID != 0 {
		query += " AND c.id = $3"
		args = append(args, cameraID)
	}
	query += " ORDER BY r.rental_date"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRentalRows(rows)
}

func (r *rentalRepository) HasConflict(ctx context.Context, cameraID int32, rentalDate, returnDate string, excludeRentalID int32) (bool, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, conflictQuery, cameraID, rentalDate, returnDate, excludeRentalID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *rentalRepository) ConflictingCameraIDs(ctx context.Context, rentalDate, returnDate string) (map[int32]bool, error) {
	query := `SELECT DISTINCT camera_id FROM rentals
		WHERE status IN ('active', 'reserved')
		AND (
			(rental_date <= $1 AND return_date >= $1) OR
			(rental_date <= $2 AND return_date >= $2) OR
			(rental_date >= $1 AND return_date <= $2)
		)`
	rows, err := r.db.QueryContext(ctx, query, rentalDate, returnDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int32]bool)
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

func (r *rentalRepository) UpdateDates(ctx context.Context, id int32, rentalDate, returnDate string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var cameraID int32
	if err := tx.QueryRowContext(ctx, `SELECT camera_id FROM rentals WHERE id = $1`, id).Scan(&cameraID); err != nil {
		return err
	}
	if err := tx.QueryRowContext(ctx, `SELECT id FROM cameras WHERE id = $1 FOR UPDATE`, cameraID).Scan(&cameraID); err != nil {
		return err
	}

	var conflicts int32
	if err := tx.QueryRowContext(ctx, conflictQuery, cameraID, rentalDate, returnDate, id).Scan(&conflicts); err != nil {
		return err
	}
	if conflicts > 0 {
		return repository.ErrRentalConflict
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE rentals SET rental_date = $1, return_date = $2, updated_at = $3 WHERE id = $4`,
		rentalDate, returnDate, time.Now(), id,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) UpdateNotes(ctx context.Context, id int32, notes string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rentals SET notes = $1, updated_at = $2 WHERE id = $3`, notes, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *rentalRepository) CountActiveByCamera(ctx context.Context, cameraID int32) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM rentals WHERE camera_id = $1 AND status IN ('active', 'reserved')`
	if err := r.db.QueryRowContext(ctx, query, cameraID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *rentalRepository) MarkCompleted(ctx context.Context, today string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rentals SET status = 'completed', updated_at = $1 WHERE status = 'active' AND return_date < $2`,
		time.Now(), today)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *rentalRepository) ListDueOn(ctx context.Context, date string) ([]domain.Rental, error) {
	query := `SELECT r.id, r.camera_id, r.customer_name, COALESCE(r.customer_phone, ''), r.rental_date, r.return_date, r.status, COALESCE(r.notes, ''), r.created_at, r.updated_at,
	                 c.camera_code, c.brand, c.model, COALESCE(c.serial_number, ''), c.agent
	          FROM rentals r JOIN cameras c ON r.camera_id = c.id
	          WHERE r.status IN ('active', 'reserved') AND r.return_date = $1
	          ORDER BY c.camera_code`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRentalRows(rows)
}

func scanRentalRows(rows *sql.Rows) ([]domain.Rental, error) {
	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		var start, end time.Time
		if err := rows.Scan(
			&rt.ID, &rt.CameraID, &rt.CustomerName, &rt.CustomerPhone, &start, &end, &rt.Status, &rt.Notes, &rt.CreatedAt, &rt.UpdatedAt,
			&rt.CameraCode, &rt.Brand, &rt.Model, &rt.SerialNumber, &rt.Agent,
		); err != nil {
			return nil, err
		}
		rt.RentalDate = start.Format(domain.DateLayout)
		rt.ReturnDate = end.Format(domain.DateLayout)
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
