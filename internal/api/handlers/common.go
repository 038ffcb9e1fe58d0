package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rkp0912/Trello-quora/internal/api/respond"
	"github.com/rkp0912/Trello-quora/internal/domain"
	"github.com/rkp0912/Trello-quora/internal/service"
)

type CommonHandler struct {
	userService *service.UserService
}

func NewCommonHandler(userService *service.UserService) *CommonHandler {
	return &CommonHandler{userService: userService}
}

type UserDetailsResponse struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserName      string `json:"userName"`
	EmailAddress  string `json:"emailAddress"`
	Country       string `json:"country"`
	AboutMe       string `json:"aboutMe"`
	Dob           string `json:"dob"`
	ContactNumber string `json:"contactNumber"`
}

func (h *CommonHandler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	userUUID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		respond.Error(w, domain.ErrUserNotFound)
		return
	}

	user, err := h.userService.GetProfile(r.Context(), userUUID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, UserDetailsResponse{
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		UserName:      user.Username,
		EmailAddress:  user.Email,
		Country:       user.Country,
		AboutMe:       user.AboutMe,
		Dob:           time.Time(user.DOB).Format("2006-01-02"),
		ContactNumber: user.ContactNumber,
	})
}
