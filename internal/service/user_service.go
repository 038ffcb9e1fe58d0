package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rkp0912/Trello-quora/internal/auth"
	"github.com/rkp0912/Trello-quora/internal/domain"
	"github.com/rkp0912/Trello-quora/internal/repository"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns the user behind a public uuid. Any active session may
// view any profile.
func (s *UserService) GetProfile(ctx context.Context, userUUID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Delete removes a user account. Admin-only.
func (s *UserService) Delete(ctx context.Context, session *domain.UserSession, userUUID uuid.UUID) (*domain.User, error) {
	if err := auth.RequireAdmin(session); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound.WithMessage("User with entered uuid to be deleted does not exist")
		}
		return nil, err
	}

	if err := s.userRepo.Delete(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
