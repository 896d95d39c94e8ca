package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/reppreps/homesite/internal/http/middleware"
	"github.com/reppreps/homesite/internal/site"
	"github.com/reppreps/homesite/internal/submissions"
	"github.com/reppreps/homesite/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	SubmissionsHandler *submissions.Handler
	SiteHandler        *site.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Lead capture API
	if cfg.SubmissionsHandler != nil {
		r.Route("/api/contact", func(r chi.Router) {
			r.Post("/", cfg.SubmissionsHandler.SubmitContactForm)
			r.Post("/validate", cfg.SubmissionsHandler.ValidateContactForm)
		})
	}

	// Marketing pages
	if cfg.SiteHandler != nil {
		r.Get("/", cfg.SiteHandler.Home)
		r.Get("/about", cfg.SiteHandler.About)
		r.Get("/services", cfg.SiteHandler.Services)
		r.Get("/services/{slug}", cfg.SiteHandler.ServiceDetail)
		r.Get("/contact", cfg.SiteHandler.Contact)
	}

	return r
}
