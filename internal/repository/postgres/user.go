package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, password, role, agent_name, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		u.Username, u.PasswordHash, u.Role, u.AgentName, now, now,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, password, role, COALESCE(agent_name, ''), created_at, updated_at FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.AgentName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, password, role, COALESCE(agent_name, ''), created_at, updated_at FROM users WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.AgentName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	query := `SELECT id, username, role, COALESCE(agent_name, ''), created_at, updated_at FROM users WHERE 1=1`

	var args []interface{}
	argIdx := 1

	if filter.Username != "" {
		query += fmt.Sprintf(" AND username ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Username+"%")
		argIdx++
	}
	if filter.Role != "" {
		query += fmt.Sprintf(" AND role = $%d", argIdx)
		args = append(args, filter.Role)
		argIdx++
	}
	if filter.AgentName != "" {
		query += fmt.Sprintf(" AND agent_name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.AgentName+"%")
		argIdx++
	}

	query += " ORDER BY username"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.AgentName, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET role = $1, agent_name = $2, updated_at = $3 WHERE id = $4 RETURNING updated_at`
	return r.db.QueryRowContext(ctx, query, u.Role, u.AgentName, time.Now(), u.ID).Scan(&u.UpdatedAt)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`, passwordHash, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
