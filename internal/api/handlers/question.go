package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rkp0912/Trello-quora/internal/api/middleware"
	"github.com/rkp0912/Trello-quora/internal/api/respond"
	"github.com/rkp0912/Trello-quora/internal/domain"
	"github.com/rkp0912/Trello-quora/internal/service"
)

type QuestionHandler struct {
	questionService *service.QuestionService
}

func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

type QuestionRequest struct {
	Content string `json:"content"`
}

type QuestionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type QuestionDetailsResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		respond.Error(w, domain.ErrNotSignedIn)
		return
	}

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.questionService.Create(r.Context(), session, req.Content)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, QuestionResponse{
		ID:     question.UUID.String(),
		Status: "QUESTION CREATED",
	})
}

func (h *QuestionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.GetAll(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toQuestionDetails(questions))
}

func (h *QuestionHandler) GetAllByUser(w http.ResponseWriter, r *http.Request) {
	userUUID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		respond.Error(w, domain.ErrUserNotFound.WithMessage("User with entered uuid whose question details are to be seen does not exist"))
		return
	}

	questions, err := h.questionService.GetAllByUser(r.Context(), userUUID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toQuestionDetails(questions))
}

func (h *QuestionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		respond.Error(w, domain.ErrNotSignedIn)
		return
	}

	questionUUID, err := uuid.Parse(chi.URLParam(r, "questionId"))
	if err != nil {
		respond.Error(w, domain.ErrQuestionNotFound)
		return
	}

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.questionService.Edit(r.Context(), session, questionUUID, req.Content)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, QuestionResponse{
		ID:     question.UUID.String(),
		Status: "QUESTION EDITED",
	})
}

func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		respond.Error(w, domain.ErrNotSignedIn)
		return
	}

	questionUUID, err := uuid.Parse(chi.URLParam(r, "questionId"))
	if err != nil {
		respond.Error(w, domain.ErrQuestionNotFound)
		return
	}

	question, err := h.questionService.Delete(r.Context(), session, questionUUID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, QuestionResponse{
		ID:     question.UUID.String(),
		Status: "QUESTION DELETED",
	})
}

func toQuestionDetails(questions []*domain.Question) []QuestionDetailsResponse {
	out := make([]QuestionDetailsResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuestionDetailsResponse{
			ID:      q.UUID.String(),
			Content: q.Content,
		})
	}
	return out
}
