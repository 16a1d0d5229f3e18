package handler

import (
	"errors"
	"net/http"
	"strings"

	"vouch/internal/auth"
)

type ResetHandler struct {
	Svc *auth.Service
}

// Request handles POST /reset_password: issues a single-use reset token for
// the given email. Unknown emails get 403.
func (h *ResetHandler) Request(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "email is required"})
		return
	}

	token, err := h.Svc.RequestPasswordReset(r.Context(), email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"email": email, "reset_token": token})
}

// Update handles PUT /reset_password: consumes the reset token and stores
// the new password.
func (h *ResetHandler) Update(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	token := r.FormValue("reset_token")
	newPassword := r.FormValue("new_password")

	if email == "" || token == "" || newPassword == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "email, reset_token and new_password are required"})
		return
	}

	if err := h.Svc.UpdatePassword(r.Context(), token, newPassword); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"email": email, "message": "Password updated"})
}
