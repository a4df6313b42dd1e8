package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/uptrace/bun"

	"github.com/codeclash-oj/codeclash/api/handlers"
	"github.com/codeclash-oj/codeclash/api/middleware"
	contestservice "github.com/codeclash-oj/codeclash/app/modules/contest/application"
	standingsservice "github.com/codeclash-oj/codeclash/app/modules/standings/application"
	submissionservice "github.com/codeclash-oj/codeclash/app/modules/submission/application"
	"github.com/codeclash-oj/codeclash/pkg/jwt"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Contests    contestservice.Service
	Standings   standingsservice.Service
	Submissions submissionservice.Service
	Tokens      jwt.Service
	DB          *bun.DB
	RateLimiter *middleware.RateLimiter
	Logger      *slog.Logger
}

// NewRouter builds the public HTTP router. Standings and contest reads are
// open; registration and submissions require a token; contest creation
// requires the admin role.
func NewRouter(deps Deps) http.Handler {
	contestHandler := handlers.NewContestHandler(deps.Contests, deps.Logger)
	standingsHandler := handlers.NewStandingsHandler(deps.Contests, deps.Standings, deps.Logger)
	submissionHandler := handlers.NewSubmissionHandler(deps.Submissions, deps.Logger)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Handler)
	}

	r.Get("/healthz", healthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		r.Route("/contests", func(r chi.Router) {
			r.Get("/", contestHandler.List)
			r.Get("/{contestID}", contestHandler.Get)
			r.Get("/{contestID}/standings", standingsHandler.Get)
			r.Get("/{contestID}/standings/export", standingsHandler.Export)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(deps.Tokens))
				r.Post("/{contestID}/register", contestHandler.Register)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(deps.Tokens))
				r.Use(middleware.RequireAdmin)
				r.Post("/", contestHandler.Create)
			})
		})

		r.Route("/submissions", func(r chi.Router) {
			r.Use(middleware.RequireAuth(deps.Tokens))
			r.Get("/", submissionHandler.List)
			r.Post("/", submissionHandler.Create)
			r.Get("/{submissionID}", submissionHandler.Get)
		})
	})

	return r
}
