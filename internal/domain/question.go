package domain

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UUID      uuid.UUID `json:"id" gorm:"type:uuid;uniqueIndex;not null"`
	UserID    UserID    `json:"-" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
