package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"vouch/internal/auth"
	"vouch/internal/config"
	"vouch/internal/http/handler"
	mw "vouch/internal/http/middleware"
)

func NewRouter(cfg config.Config, svc *auth.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger())

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Bienvenue"}` + "\n"))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := handler.NewAuthHandler(svc, cfg.SecureCookies)
	rh := &handler.ResetHandler{Svc: svc}
	ph := &handler.ProfileHandler{}

	r.Post("/users", ah.Register)

	// login is the only credential-guessing surface; keep it rate limited
	r.With(httprate.Limit(20, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP))).
		Post("/sessions", ah.Login)

	r.With(auth.RequireSession(svc)).Delete("/sessions", ah.Logout)
	r.With(auth.RequireSession(svc)).Get("/profile", ph.Profile)

	r.Post("/reset_password", rh.Request)
	r.Put("/reset_password", rh.Update)

	return r
}
