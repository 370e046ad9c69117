package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/artakjato/happy-thoughts-api/internal/core/domain"
	"github.com/artakjato/happy-thoughts-api/internal/core/ports"
	"github.com/go-chi/chi/v5"
)

type ThoughtHandler struct {
	service ports.ThoughtService
}

func NewThoughtHandler(service ports.ThoughtService) *ThoughtHandler {
	return &ThoughtHandler{
		service: service,
	}
}

type thoughtRequest struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

func (h *ThoughtHandler) ListThoughts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := h.service.ListThoughts(r.Context(), ports.ListThoughtsInput{
		MinHearts: query.Get("minHearts"),
		Category:  query.Get("category"),
		Sort:      query.Get("sort"),
		Order:     query.Get("order"),
		Page:      query.Get("page"),
		Limit:     query.Get("limit"),
	})
	if err != nil {
		writeThoughtError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *ThoughtHandler) GetThought(w http.ResponseWriter, r *http.Request) {
	thought, err := h.service.GetThought(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeThoughtError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, thought)
}

func (h *ThoughtHandler) CreateThought(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req thoughtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	thought, err := h.service.Create(r.Context(), user.ID, ports.CreateThoughtInput{
		Message:  req.Message,
		Category: req.Category,
	})
	if err != nil {
		writeThoughtError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, thought)
}

func (h *ThoughtHandler) UpdateThought(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req thoughtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	thought, err := h.service.Update(r.Context(), user.ID, chi.URLParam(r, "id"), ports.UpdateThoughtInput{
		Message:  req.Message,
		Category: req.Category,
	})
	if err != nil {
		writeThoughtError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, thought)
}

func (h *ThoughtHandler) DeleteThought(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		writeThoughtError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Thought deleted successfully"})
}

func (h *ThoughtHandler) LikeThought(w http.ResponseWriter, r *http.Request) {
	thought, err := h.service.Like(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeThoughtError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, thought)
}

func writeThoughtError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidThoughtID),
		errors.Is(err, domain.ErrInvalidQuery),
		errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrThoughtNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
	}
}
