package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/artakjato/happy-thoughts-api/internal/core/domain"
	"github.com/artakjato/happy-thoughts-api/internal/core/ports"
	"github.com/google/uuid"
)

type UserHandler struct {
	service ports.AuthService
}

func NewUserHandler(service ports.AuthService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	Response authPayload `json:"response"`
}

type authPayload struct {
	Email       string    `json:"email"`
	ID          uuid.UUID `json:"id"`
	AccessToken string    `json:"accessToken"`
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.Signup(r.Context(), ports.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrEmailTaken):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{
		Success: true,
		Message: "User created successfully",
		Response: authPayload{
			Email:       user.Email,
			ID:          user.ID,
			AccessToken: user.AccessToken,
		},
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInvalidLogin):
			respondJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "Invalid email or password",
			})
		default:
			respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, authResponse{
		Success: true,
		Message: "Login successful",
		Response: authPayload{
			Email:       user.Email,
			ID:          user.ID,
			AccessToken: user.AccessToken,
		},
	})
}
