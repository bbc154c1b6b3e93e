package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
)

// Deps bundles the ports the HTTP layer drives. All are required.
type Deps struct {
	Ads         port.AdUseCase
	Nominations port.NominationUseCase
	Analytics   port.AnalyticsUseCase
	Sessions    port.SessionStore
	Tokens      port.TokenVerifier
}

// Config carries the HTTP-layer tunables.
type Config struct {
	SessionTTL     time.Duration
	AllowedOrigins []string
}

// Handler is the inbound HTTP adapter. It owns the chi router, maps
// domain errors to status codes and keeps all JSON shapes at this
// boundary.
type Handler struct {
	deps   Deps
	cfg    Config
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Public ad
// routes carry the anonymous session middleware; nomination and admin
// routes require a bearer token with the matching role.
func NewHandler(deps Deps, cfg Config, logger *slog.Logger) *Handler {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	h := &Handler{deps: deps, cfg: cfg, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/ads", func(r chi.Router) {
			r.Use(h.withSession)
			r.Get("/next", h.handleNextAd)
			r.Post("/track/impression", h.handleTrackImpression)
			r.Post("/track/click", h.handleTrackClick)
		})

		businessOnly := h.requireRole(domain.RoleBusiness)
		r.With(businessOnly).Post("/nominations", h.handleCreateNomination)
		r.With(businessOnly).Get("/nominations", h.handleListNominations)
		r.With(businessOnly).Put("/nominations/{id}/submit", h.handleSubmitNomination)
		// Read access for every authenticated role; ownership is
		// enforced in the usecase.
		r.With(h.requireRole(domain.RoleBusiness, domain.RoleAdmin, domain.RoleJudge, domain.RoleModerator)).
			Get("/nominations/{id}", h.handleGetNomination)

		r.Route("/judge/nominations", func(r chi.Router) {
			r.Use(h.requireRole(domain.RoleJudge))
			r.Post("/{id}/scores", h.handleAddScore)
			r.Get("/{id}/scores", h.handleListScores)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireRole(domain.RoleAdmin))
			r.Put("/nominations/{id}/status", h.handleTransitionNomination)
			r.Get("/analytics/overview", h.handleAnalyticsOverview)
			r.Get("/analytics/trends", h.handleAnalyticsTrends)
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}
