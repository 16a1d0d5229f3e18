package handler

import (
	"net/http"

	"vouch/internal/auth"
)

type ProfileHandler struct{}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"email": u.Email})
}
