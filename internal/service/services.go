package service

import (
	"github.com/rkp0912/Trello-quora/internal/config"
	"github.com/rkp0912/Trello-quora/internal/repository"
)

type Services struct {
	Auth     *AuthService
	User     *UserService
	Question *QuestionService
	Answer   *AnswerService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, repos.Session, cfg),
		User:     NewUserService(repos.User),
		Question: NewQuestionService(repos.Question, repos.User),
		Answer:   NewAnswerService(repos.Answer, repos.Question),
	}
}
