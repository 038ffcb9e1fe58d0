package postgres

import (
	"context"
	"time"

	"github.com/rkp0912/Trello-quora/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *sessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.UserSession) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(session).Error
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*domain.UserSession, error) {
	var session domain.UserSession
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&session, "access_token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// MarkSignedOut is a single conditional update: the logout_at IS NULL
// guard makes concurrent sign-outs on the same token race safely, with
// exactly one winner reporting a touched row.
func (r *sessionRepository) MarkSignedOut(ctx context.Context, token string, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.UserSession{}).
		Where("access_token = ? AND logout_at IS NULL", token).
		Update("logout_at", at)
	return res.RowsAffected, res.Error
}
