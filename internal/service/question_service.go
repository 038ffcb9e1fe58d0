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

type QuestionService struct {
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, userRepo repository.UserRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		userRepo:     userRepo,
	}
}

// Create posts a question owned by the session's user. Any active session
// may post.
func (s *QuestionService) Create(ctx context.Context, session *domain.UserSession, content string) (*domain.Question, error) {
	question := &domain.Question{
		UUID:    uuid.New(),
		UserID:  session.User.ID,
		Content: content,
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) GetAll(ctx context.Context) ([]*domain.Question, error) {
	return s.questionRepo.GetAll(ctx)
}

func (s *QuestionService) GetAllByUser(ctx context.Context, userUUID uuid.UUID) ([]*domain.Question, error) {
	user, err := s.userRepo.GetByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound.WithMessage("User with entered uuid whose question details are to be seen does not exist")
		}
		return nil, err
	}
	return s.questionRepo.GetByUserID(ctx, user.ID)
}

// Edit replaces the question's content. Owner-only: an admin editing
// someone else's question is denied.
func (s *QuestionService) Edit(ctx context.Context, session *domain.UserSession, questionUUID uuid.UUID, content string) (*domain.Question, error) {
	question, err := s.questionRepo.GetByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, err
	}

	if err := auth.RequireOwner(session, question.UserID); err != nil {
		return nil, domain.ErrForbidden.WithMessage("Only the question owner can edit the question")
	}

	question.Content = content
	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// Delete removes the question. Owner or admin.
func (s *QuestionService) Delete(ctx context.Context, session *domain.UserSession, questionUUID uuid.UUID) (*domain.Question, error) {
	question, err := s.questionRepo.GetByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, err
	}

	if err := auth.RequireOwnerOrAdmin(session, question.UserID); err != nil {
		return nil, domain.ErrForbidden.WithMessage("Only the question owner or admin can delete the question")
	}

	if err := s.questionRepo.Delete(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}
