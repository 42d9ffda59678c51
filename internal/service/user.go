package service

import (
	"context"
	"database/sql"
	"errors"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context, username string, role domain.UserRole, agentName string) ([]domain.User, error) {
	return s.userRepo.List(ctx, repository.UserFilter{
		Username:  username,
		Role:      role,
		AgentName: agentName,
	})
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, username, password string, role domain.UserRole, agentName string) (*domain.User, error) {
	if username == "" || password == "" || agentName == "" {
		return nil, ErrMissingFields
	}
	if role != domain.UserRoleAdmin && role != domain.UserRoleAgent {
		return nil, ErrInvalidRole
	}
	if !isStrongPassword(password) {
		return nil, ErrWeakPassword
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		AgentName:    agentName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int32, role domain.UserRole, agentName, password *string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if role != "" {
		if role != domain.UserRoleAdmin && role != domain.UserRoleAgent {
			return nil, ErrInvalidRole
		}
		user.Role = role
		changed = true
	}
	if agentName != nil {
		user.AgentName = *agentName
		changed = true
	}

	if password != nil && *password != "" {
		if !isStrongPassword(*password) {
			return nil, ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdatePassword(ctx, id, string(hash)); err != nil {
			return nil, err
		}
		changed = true
	}

	if !changed {
		return nil, ErrMissingFields
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, callerID, id int32) (*domain.User, error) {
	if callerID == id {
		return nil, ErrCannotDeleteSelf
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return user, nil
}
