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

type AnswerHandler struct {
	answerService *service.AnswerService
}

func NewAnswerHandler(answerService *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type AnswerResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type AnswerDetailsResponse struct {
	ID              string `json:"id"`
	QuestionContent string `json:"questionContent"`
	AnswerContent   string `json:"answerContent"`
}

func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		respond.Error(w, domain.ErrNotSignedIn)
		return
	}

	questionUUID, err := uuid.Parse(chi.URLParam(r, "questionId"))
	if err != nil {
		respond.Error(w, domain.ErrQuestionNotFound.WithMessage("The question entered is invalid"))
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	answer, err := h.answerService.Create(r.Context(), session, questionUUID, req.Answer)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, AnswerResponse{
		ID:     answer.UUID.String(),
		Status: "ANSWER CREATED",
	})
}

func (h *AnswerHandler) GetAllForQuestion(w http.ResponseWriter, r *http.Request) {
	questionUUID, err := uuid.Parse(chi.URLParam(r, "questionId"))
	if err != nil {
		respond.Error(w, domain.ErrQuestionNotFound.WithMessage("The question with entered uuid whose details are to be seen does not exist"))
		return
	}

	answers, err := h.answerService.GetAllForQuestion(r.Context(), questionUUID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]AnswerDetailsResponse, 0, len(answers))
	for _, a := range answers {
		out = append(out, AnswerDetailsResponse{
			ID:              a.UUID.String(),
			QuestionContent: a.Question.Content,
			AnswerContent:   a.Content,
		})
	}
	respond.JSON(w, http.StatusOK, out)
}

func (h *AnswerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		respond.Error(w, domain.ErrNotSignedIn)
		return
	}

	answerUUID, err := uuid.Parse(chi.URLParam(r, "answerId"))
	if err != nil {
		respond.Error(w, domain.ErrAnswerNotFound)
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	answer, err := h.answerService.Edit(r.Context(), session, answerUUID, req.Answer)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, AnswerResponse{
		ID:     answer.UUID.String(),
		Status: "ANSWER EDITED",
	})
}

func (h *AnswerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		respond.Error(w, domain.ErrNotSignedIn)
		return
	}

	answerUUID, err := uuid.Parse(chi.URLParam(r, "answerId"))
	if err != nil {
		respond.Error(w, domain.ErrAnswerNotFound)
		return
	}

	answer, err := h.answerService.Delete(r.Context(), session, answerUUID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, AnswerResponse{
		ID:     answer.UUID.String(),
		Status: "ANSWER DELETED",
	})
}
