package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rkp0912/Trello-quora/internal/api/middleware"
	"github.com/rkp0912/Trello-quora/internal/api/respond"
	"github.com/rkp0912/Trello-quora/internal/domain"
	"github.com/rkp0912/Trello-quora/internal/service"
)

type AdminHandler struct {
	userService *service.UserService
}

func NewAdminHandler(userService *service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

type UserDeleteResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		respond.Error(w, domain.ErrNotSignedIn)
		return
	}

	userUUID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		respond.Error(w, domain.ErrUserNotFound.WithMessage("User with entered uuid to be deleted does not exist"))
		return
	}

	user, err := h.userService.Delete(r.Context(), session, userUUID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, UserDeleteResponse{
		ID:     user.UUID.String(),
		Status: "USER SUCCESSFULLY DELETED",
	})
}
