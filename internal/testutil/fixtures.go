package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rkp0912/Trello-quora/internal/auth"
	"github.com/rkp0912/Trello-quora/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
	role     domain.Role
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
		role:     domain.RoleNonAdmin,
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithEmail sets the email address
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// AsAdmin gives the user the admin role
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.role = domain.RoleAdmin
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	salt, err := auth.GenerateSalt()
	if err != nil {
		t.Fatalf("failed to generate salt: %v", err)
	}

	user := &domain.User{
		UUID:         uuid.New(),
		Username:     b.username,
		Email:        b.email,
		PasswordHash: auth.HashPassword(b.password, salt),
		Salt:         salt,
		Role:         b.role,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// QuestionBuilder creates test questions with a builder pattern
type QuestionBuilder struct {
	owner   *domain.User
	content string
}

func NewQuestionBuilder(owner *domain.User) *QuestionBuilder {
	return &QuestionBuilder{
		owner:   owner,
		content: "What is the answer to life, the universe and everything?",
	}
}

// WithContent sets the question content
func (b *QuestionBuilder) WithContent(content string) *QuestionBuilder {
	b.content = content
	return b
}

// Build creates the question in the database
func (b *QuestionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Question {
	t.Helper()

	question := &domain.Question{
		UUID:    uuid.New(),
		UserID:  b.owner.ID,
		Content: b.content,
	}

	if err := db.Omit(clause.Associations).Create(question).Error; err != nil {
		t.Fatalf("failed to create question: %v", err)
	}

	return question
}

// AnswerBuilder creates test answers with a builder pattern
type AnswerBuilder struct {
	owner    *domain.User
	question *domain.Question
	content  string
}

func NewAnswerBuilder(owner *domain.User, question *domain.Question) *AnswerBuilder {
	return &AnswerBuilder{
		owner:    owner,
		question: question,
		content:  "Forty-two.",
	}
}

// WithContent sets the answer content
func (b *AnswerBuilder) WithContent(content string) *AnswerBuilder {
	b.content = content
	return b
}

// Build creates the answer in the database
func (b *AnswerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Answer {
	t.Helper()

	answer := &domain.Answer{
		UUID:       uuid.New(),
		QuestionID: b.question.ID,
		UserID:     b.owner.ID,
		Content:    b.content,
	}

	if err := db.Omit(clause.Associations).Create(answer).Error; err != nil {
		t.Fatalf("failed to create answer: %v", err)
	}

	return answer
}
