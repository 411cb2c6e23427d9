package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/vedran77/skillswap/internal/domain"
	"github.com/vedran77/skillswap/internal/service"
	"github.com/vedran77/skillswap/internal/transport/http/middleware"
	"github.com/vedran77/skillswap/pkg/validator"
)

type SwapHandler struct {
	swapService *service.SwapService
	authService *service.AuthService
}

func NewSwapHandler(swapService *service.SwapService, authService *service.AuthService) *SwapHandler {
	return &SwapHandler{swapService: swapService, authService: authService}
}

func (h *SwapHandler) Send(w http.ResponseWriter, r *http.Request) {
	from := h.authService.CurrentUser()
	if from == nil {
		writeError(w, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Please log in to send swap requests")
		return
	}

	var input struct {
		ToUserID       string `json:"to_user_id"`
		SkillOffered   string `json:"skill_offered"`
		SkillRequested string `json:"skill_requested"`
		Message        string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateSwapRequest(input.ToUserID, input.SkillOffered, input.SkillRequested); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	toUserID, err := uuid.Parse(input.ToUserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid recipient ID")
		return
	}

	req, err := h.swapService.Send(r.Context(), from, service.SendSwapInput{
		ToUserID:       toUserID,
		SkillOffered:   input.SkillOffered,
		SkillRequested: input.SkillRequested,
		Message:        input.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrSwapUserNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		} else {
			log.Printf("ERROR send swap request: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, req)
}

func (h *SwapHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	reqs, err := h.swapService.ListForUser(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list swap requests: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, reqs)
}

func (h *SwapHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	requestID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	var input struct {
		Status domain.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	req, err := h.swapService.UpdateStatus(r.Context(), userID, requestID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "INVALID_STATUS", "Status must be accepted, rejected, or completed")
		case errors.Is(err, service.ErrSwapNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Swap request not found")
		case errors.Is(err, service.ErrNotReceiver):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the receiver can accept or reject this request")
		case errors.Is(err, service.ErrNotParticipant):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only a participant can complete this request")
		case errors.Is(err, service.ErrInvalidTransition):
			writeError(w, http.StatusConflict, "INVALID_TRANSITION", "The request cannot move to that status")
		default:
			log.Printf("ERROR update swap status: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, req)
}

func (h *SwapHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	requestID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	if err := h.swapService.Delete(r.Context(), userID, requestID); err != nil {
		switch {
		case errors.Is(err, service.ErrSwapNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Swap request not found")
		case errors.Is(err, service.ErrNotSender):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the sender can delete this request")
		case errors.Is(err, service.ErrNotDeletable):
			writeError(w, http.StatusConflict, "NOT_DELETABLE", "Only pending or rejected requests can be deleted")
		default:
			log.Printf("ERROR delete swap request: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
