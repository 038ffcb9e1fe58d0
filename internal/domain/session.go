package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserSession records one successful sign-in. A sign-out sets LogoutAt
// exactly once; a session is active while LogoutAt is null. Rows are
// never deleted directly, only via the cascade when the owning user is
// removed.
type UserSession struct {
	ID          uint       `json:"-" gorm:"primaryKey"`
	UUID        uuid.UUID  `json:"uuid" gorm:"type:uuid;not null"`
	UserID      UserID     `json:"-" gorm:"not null;index"`
	User        User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AccessToken string     `json:"-" gorm:"uniqueIndex;not null"`
	LoginAt     time.Time  `json:"loginAt" gorm:"not null"`
	ExpiresAt   time.Time  `json:"expiresAt" gorm:"not null"`
	LogoutAt    *time.Time `json:"logoutAt"`
}

func (s *UserSession) Active() bool {
	return s.LogoutAt == nil
}

func (s *UserSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

func (UserSession) TableName() string {
	return "user_sessions"
}
