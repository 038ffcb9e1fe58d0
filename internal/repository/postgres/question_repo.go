package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/rkp0912/Trello-quora/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *questionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *domain.Question) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(question).Error
}

func (r *questionRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	var question domain.Question
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&question, "uuid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) GetAll(ctx context.Context) ([]*domain.Question, error) {
	var questions []*domain.Question
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) GetByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Question, error) {
	var questions []*domain.Question
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(ctx context.Context, question *domain.Question) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(question).Error
}

func (r *questionRepository) Delete(ctx context.Context, question *domain.Question) error {
	return r.db.WithContext(ctx).Delete(question).Error
}
