package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rkp0912/Trello-quora/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUUID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, user *domain.User) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByToken(ctx context.Context, token string) (*domain.UserSession, error)
	// MarkSignedOut sets logout_at on the session holding the token,
	// provided it has not been set already. It reports how many rows it
	// touched so a lost sign-out race is visible to the caller.
	MarkSignedOut(ctx context.Context, token string, at time.Time) (int64, error)
}

type QuestionRepository interface {
	Create(ctx context.Context, question *domain.Question) error
	GetByUUID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	GetAll(ctx context.Context) ([]*domain.Question, error)
	GetByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Question, error)
	Update(ctx context.Context, question *domain.Question) error
	Delete(ctx context.Context, question *domain.Question) error
}

type AnswerRepository interface {
	Create(ctx context.Context, answer *domain.Answer) error
	GetByUUID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	GetByQuestionID(ctx context.Context, questionID uint) ([]*domain.Answer, error)
	Update(ctx context.Context, answer *domain.Answer) error
	Delete(ctx context.Context, answer *domain.Answer) error
}

type Repositories struct {
	User     UserRepository
	Session  SessionRepository
	Question QuestionRepository
	Answer   AnswerRepository
}
