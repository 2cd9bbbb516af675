package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	_ "github.com/blaisecz/mood-journal/docs"
	"github.com/blaisecz/mood-journal/internal/api/handler"
	"github.com/blaisecz/mood-journal/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Users      *handler.UserHandler
	Tracking   *handler.TrackingHandler
	Journal    *handler.JournalHandler
	Insights   *handler.InsightsHandler
	Companion  *handler.CompanionHandler
	Counseling *handler.CounselingHandler
	Dashboard  *handler.DashboardHandler
}

type Router struct {
	handlers Handlers
	log      *slog.Logger
}

func NewRouter(handlers Handlers, log *slog.Logger) *Router {
	return &Router{
		handlers: handlers,
		log:      log,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestLogger(rt.log))
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	h := rt.handlers

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Get("/support/{kind}", h.Companion.QuickSupport)
		r.Get("/professionals", h.Counseling.Professionals)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.Users.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", h.Users.GetByID)

				r.Post("/moods", h.Tracking.TrackMood)
				r.Post("/bmi", h.Tracking.TrackBMI)

				r.Route("/journal", func(r chi.Router) {
					r.Post("/", h.Journal.Create)
					r.Get("/", h.Journal.List)
					r.Delete("/", h.Journal.DeleteAll)
					r.Post("/delete", h.Journal.DeleteMany)
					r.Put("/{entryId}", h.Journal.Update)
					r.Delete("/{entryId}", h.Journal.Delete)
					r.Get("/{entryId}/analysis", h.Journal.Analyze)
				})

				r.Get("/dashboard", h.Dashboard.Get)
				r.Get("/insights", h.Insights.GetInsights)
				r.Post("/reports", h.Insights.GenerateReport)
				r.Post("/reports/feedback", h.Insights.PostFeedback)

				r.Post("/companion/messages", h.Companion.PostMessage)
				r.Get("/companion/messages", h.Companion.History)

				r.Route("/counseling", func(r chi.Router) {
					r.Post("/messages", h.Counseling.Send)
					r.Get("/sessions", h.Counseling.List)
					r.Get("/sessions/{sessionId}/summary", h.Counseling.Summary)
					r.Delete("/sessions/{sessionId}", h.Counseling.Delete)
				})
			})
		})
	})

	return r
}
