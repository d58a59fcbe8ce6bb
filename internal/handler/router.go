package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eventure-app/eventure/backend/internal/auth"
	journeyHandler "github.com/eventure-app/eventure/backend/internal/handler/journey"
	messageHandler "github.com/eventure-app/eventure/backend/internal/handler/message"
	moodHandler "github.com/eventure-app/eventure/backend/internal/handler/mood"
	paymentHandler "github.com/eventure-app/eventure/backend/internal/handler/payment"
	recordHandler "github.com/eventure-app/eventure/backend/internal/handler/record"
	middlewarePkg "github.com/eventure-app/eventure/backend/internal/middleware"
	journeyService "github.com/eventure-app/eventure/backend/internal/service/journey"
	messageService "github.com/eventure-app/eventure/backend/internal/service/message"
	moodService "github.com/eventure-app/eventure/backend/internal/service/mood"
	"github.com/eventure-app/eventure/backend/internal/store"
	"github.com/eventure-app/eventure/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(
	journeys *journeyService.Service,
	moods *moodService.Service,
	messages *messageService.Service,
	st store.Store,
	identity auth.Provider,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)
	r.Use(auth.Middleware(identity))

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondFailure(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", healthHandler(journeys))

		journeyHandler.New(journeys).RegisterRoutes(api)
		moodHandler.New(moods).RegisterRoutes(api)
		messageHandler.New(messages).RegisterRoutes(api)
		paymentHandler.New(st).RegisterRoutes(api)
		recordHandler.New(st).RegisterRoutes(api)
	})

	return r
}

// healthHandler reports liveness and the available feature set, including
// whether generation is live or running on fallbacks only.
func healthHandler(journeys *journeyService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		generation := "degraded"
		if journeys.GenerationLive() {
			generation = "live"
		}
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"status":     "ok",
			"generation": generation,
			"features": []string{
				"emotional-journey",
				"weather-mood",
				"records",
				"messaging",
				"payments",
			},
		})
	}
}
