package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/rkp0912/Trello-quora/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *answerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *domain.Answer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(answer).Error
}

func (r *answerRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	var answer domain.Answer
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Question").
		First(&answer, "uuid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) GetByQuestionID(ctx context.Context, questionID uint) ([]*domain.Answer, error) {
	var answers []*domain.Answer
	err := r.db.WithContext(ctx).
		Preload("Question").
		Where("question_id = ?", questionID).
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) Update(ctx context.Context, answer *domain.Answer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(answer).Error
}

func (r *answerRepository) Delete(ctx context.Context, answer *domain.Answer) error {
	return r.db.WithContext(ctx).Delete(answer).Error
}
