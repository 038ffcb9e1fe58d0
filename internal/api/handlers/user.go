package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rkp0912/Trello-quora/internal/api/respond"
	"github.com/rkp0912/Trello-quora/internal/domain"
	"github.com/rkp0912/Trello-quora/internal/service"
	"gorm.io/datatypes"
)

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

type SignupRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserName      string `json:"userName"`
	EmailAddress  string `json:"emailAddress"`
	Password      string `json:"password"`
	Country       string `json:"country"`
	AboutMe       string `json:"aboutMe"`
	Dob           string `json:"dob"`
	ContactNumber string `json:"contactNumber"`
}

type SignupResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SigninResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type SignoutResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserName == "" || req.EmailAddress == "" {
		http.Error(w, "Username and email address are required", http.StatusBadRequest)
		return
	}

	var dob datatypes.Date
	if req.Dob != "" {
		parsed, err := time.Parse("2006-01-02", req.Dob)
		if err != nil {
			http.Error(w, "Invalid dob, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		dob = datatypes.Date(parsed)
	}

	user, err := h.authService.Signup(r.Context(), service.SignupInput{
		Username:      req.UserName,
		Email:         req.EmailAddress,
		Password:      req.Password,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Country:       req.Country,
		AboutMe:       req.AboutMe,
		DOB:           dob,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, SignupResponse{
		ID:     user.UUID.String(),
		Status: "USER SUCCESSFULLY REGISTERED",
	})
}

// Signin takes HTTP Basic credentials: base64 of "username:password",
// split on the first colon. The minted token goes back in the
// access-token response header, not the body.
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("authorization")
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		respond.Error(w, domain.ErrUnknownUsername)
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
	if err != nil {
		respond.Error(w, domain.ErrUnknownUsername)
		return
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		respond.Error(w, domain.ErrUnknownUsername)
		return
	}

	session, err := h.authService.Authenticate(r.Context(), username, password)
	if err != nil {
		respond.Error(w, err)
		return
	}

	w.Header().Set("access-token", session.AccessToken)
	respond.JSON(w, http.StatusOK, SigninResponse{
		ID:      session.User.UUID.String(),
		Message: "SIGNED IN SUCCESSFULLY",
	})
}

func (h *UserHandler) Signout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("authorization")
	if token == "" {
		respond.Error(w, domain.ErrNotSignedIn)
		return
	}

	user, err := h.authService.SignOut(r.Context(), token)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, SignoutResponse{
		ID:      user.UUID.String(),
		Message: "SIGNED OUT SUCCESSFULLY",
	})
}
