package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleNonAdmin Role = "nonadmin"
)

// UserID is the surrogate primary key of a user. Ownership checks compare
// UserID values, never entity pointers.
type UserID uint

type User struct {
	ID            UserID         `json:"-" gorm:"primaryKey"`
	UUID          uuid.UUID      `json:"id" gorm:"type:uuid;uniqueIndex;not null"`
	Username      string         `json:"userName" gorm:"uniqueIndex;not null"`
	Email         string         `json:"emailAddress" gorm:"uniqueIndex;not null"`
	PasswordHash  string         `json:"-" gorm:"not null"`
	Salt          string         `json:"-" gorm:"not null"`
	Role          Role           `json:"-" gorm:"not null;default:nonadmin"`
	FirstName     string         `json:"firstName"`
	LastName      string         `json:"lastName"`
	Country       string         `json:"country"`
	AboutMe       string         `json:"aboutMe"`
	DOB           datatypes.Date `json:"dob"`
	ContactNumber string         `json:"contactNumber"`
	CreatedAt     time.Time      `json:"-"`
	UpdatedAt     time.Time      `json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (User) TableName() string {
	return "users"
}
