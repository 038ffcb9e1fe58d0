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

type AnswerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
}

func NewAnswerService(answerRepo repository.AnswerRepository, questionRepo repository.QuestionRepository) *AnswerService {
	return &AnswerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
	}
}

// Create posts an answer to an existing question. The question is checked
// first, so an unknown question fails even before any ownership concerns.
func (s *AnswerService) Create(ctx context.Context, session *domain.UserSession, questionUUID uuid.UUID, content string) (*domain.Answer, error) {
	question, err := s.questionRepo.GetByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestionNotFound.WithMessage("The question entered is invalid")
		}
		return nil, err
	}

	answer := &domain.Answer{
		UUID:       uuid.New(),
		QuestionID: question.ID,
		UserID:     session.User.ID,
		Content:    content,
	}

	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *AnswerService) GetAllForQuestion(ctx context.Context, questionUUID uuid.UUID) ([]*domain.Answer, error) {
	question, err := s.questionRepo.GetByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestionNotFound.WithMessage("The question with entered uuid whose details are to be seen does not exist")
		}
		return nil, err
	}
	return s.answerRepo.GetByQuestionID(ctx, question.ID)
}

// Edit replaces the answer's content. Owner-only, no admin bypass.
func (s *AnswerService) Edit(ctx context.Context, session *domain.UserSession, answerUUID uuid.UUID, content string) (*domain.Answer, error) {
	answer, err := s.answerRepo.GetByUUID(ctx, answerUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnswerNotFound
		}
		return nil, err
	}

	if err := auth.RequireOwner(session, answer.UserID); err != nil {
		return nil, domain.ErrForbidden.WithMessage("Only the answer owner can edit the answer")
	}

	answer.Content = content
	if err := s.answerRepo.Update(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// Delete removes the answer. Owner or admin.
func (s *AnswerService) Delete(ctx context.Context, session *domain.UserSession, answerUUID uuid.UUID) (*domain.Answer, error) {
	answer, err := s.answerRepo.GetByUUID(ctx, answerUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnswerNotFound
		}
		return nil, err
	}

	if err := auth.RequireOwnerOrAdmin(session, answer.UserID); err != nil {
		return nil, domain.ErrForbidden.WithMessage("Only the answer owner or admin can delete the answer")
	}

	if err := s.answerRepo.Delete(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}
