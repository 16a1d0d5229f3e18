package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"vouch/internal/auth"
)

type AuthHandler struct {
	Svc           *auth.Service
	SecureCookies bool

	Validate *validator.Validate
}

func NewAuthHandler(svc *auth.Service, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		Svc:           svc,
		SecureCookies: secureCookies,
		Validate:      validator.New(),
	}
}

// Register handles POST /users with form fields email and password.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	password := r.FormValue("password")

	if email == "" || password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "email and password are required"})
		return
	}
	if err := h.Validate.Var(email, "email"); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid email"})
		return
	}

	u, err := h.Svc.Register(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "email already registered"})
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"email": u.Email, "message": "user created"})
}

// Login handles POST /sessions. A successful login sets the session id as
// an opaque cookie value.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	password := r.FormValue("password")

	if email == "" || password == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ok, err := h.Svc.Login(r.Context(), email, password)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID, err := h.Svc.CreateSession(r.Context(), email)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if sessionID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{"email": email, "message": "logged in"})
}

// Logout handles DELETE /sessions for an authenticated request.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	if err := h.Svc.DestroySession(r.Context(), u.ID); err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}
