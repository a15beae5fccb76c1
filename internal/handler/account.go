package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ngonapp/ngon/internal/model"
	"github.com/ngonapp/ngon/internal/service"
)

// AccountService is the account capability the handler depends on.
type AccountService interface {
	Get(ctx context.Context, id string) (*model.Account, error)
	UpdateProfile(ctx context.Context, id string, name, email *string) (*model.Account, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
}

// AccountHandler handles user profile endpoints.
type AccountHandler struct {
	svc    AccountService
	logger *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		svc:    svc,
		logger: logger,
	}
}

// Get handles GET /api/users/{id}.
// Returns the account document directly, password hash omitted.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	account, err := h.svc.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAccountID):
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid user id"})
		case errors.Is(err, service.ErrAccountNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "user not found"})
		default:
			h.logger.Error("failed to get user", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, account)
}

// UpdateRequest is the body for profile updates. Pointer fields distinguish
// absent from empty.
type UpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UpdateResponse is the success envelope for profile updates.
type UpdateResponse struct {
	Status string         `json:"status"`
	User   *model.Account `json:"user"`
}

// Update handles PUT /api/user/update/{id}.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatusError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.svc.UpdateProfile(r.Context(), id, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			writeStatusError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Error("failed to update user", slog.String("error", err.Error()))
		writeStatusError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("user_updated", slog.String("user_id", id))

	writeJSON(w, http.StatusOK, UpdateResponse{
		Status: "success",
		User:   account,
	})
}

// ChangePasswordRequest is the body for password rotation.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePasswordResponse is the success envelope for password rotation.
// It never carries password material.
type ChangePasswordResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ChangePassword handles PUT /api/user/change-password/{id}.
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatusError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.ChangePassword(r.Context(), id, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAccountID):
			writeStatusError(w, http.StatusBadRequest, "invalid user id")
		case errors.Is(err, service.ErrMissingPasswordFields):
			writeStatusError(w, http.StatusBadRequest, "current and new password are required")
		case errors.Is(err, service.ErrPasswordMismatch):
			// Expected rejection, not a system fault.
			h.logger.Warn("password change rejected", slog.String("user_id", id))
			writeStatusError(w, http.StatusBadRequest, "current password incorrect")
		case errors.Is(err, service.ErrAccountNotFound):
			writeStatusError(w, http.StatusNotFound, "user not found")
		default:
			h.logger.Error("failed to change password", slog.String("error", err.Error()))
			writeStatusError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	h.logger.Info("password_changed", slog.String("user_id", id))

	writeJSON(w, http.StatusOK, ChangePasswordResponse{
		Status:  "success",
		Message: "password updated successfully",
	})
}
