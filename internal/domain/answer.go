package domain

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	UUID       uuid.UUID `json:"id" gorm:"type:uuid;uniqueIndex;not null"`
	QuestionID uint      `json:"-" gorm:"not null;index"`
	Question   Question  `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	UserID     UserID    `json:"-" gorm:"not null;index"`
	User       User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Content    string    `json:"content" gorm:"not null"`
	CreatedAt  time.Time `json:"date"`
	UpdatedAt  time.Time `json:"-"`
}

func (Answer) TableName() string {
	return "answers"
}
