package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rkp0912/Trello-quora/internal/api/handlers"
	"github.com/rkp0912/Trello-quora/internal/api/middleware"
	"github.com/rkp0912/Trello-quora/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	userHandler := handlers.NewUserHandler(services.Auth)
	commonHandler := handlers.NewCommonHandler(services.User)
	adminHandler := handlers.NewAdminHandler(services.User)
	questionHandler := handlers.NewQuestionHandler(services.Question)
	answerHandler := handlers.NewAnswerHandler(services.Answer)

	// Public routes. Signout resolves its own token: the session guard's
	// sign-out path owns the not-signed-in / signed-out distinction.
	r.Post("/user/signup", userHandler.Signup)
	r.Post("/user/signin", userHandler.Signin)
	r.Post("/user/signout", userHandler.Signout)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))

		r.Get("/userprofile/{userId}", commonHandler.GetUserProfile)
		r.Delete("/admin/user/{userId}", adminHandler.DeleteUser)

		r.Route("/question", func(r chi.Router) {
			r.Post("/create", questionHandler.Create)
			r.Get("/all", questionHandler.GetAll)
			r.Get("/all/{userId}", questionHandler.GetAllByUser)
			r.Put("/edit/{questionId}", questionHandler.Edit)
			r.Delete("/delete/{questionId}", questionHandler.Delete)
			r.Post("/{questionId}/answer/create", answerHandler.Create)
		})

		r.Route("/answer", func(r chi.Router) {
			r.Get("/all/{questionId}", answerHandler.GetAllForQuestion)
			r.Put("/edit/{answerId}", answerHandler.Edit)
			r.Delete("/delete/{answerId}", answerHandler.Delete)
		})
	})

	return r
}
