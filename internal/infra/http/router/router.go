package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/mailchimp-organizer/internal/infra/http/handlers"
	"github.com/xavierca1/mailchimp-organizer/internal/infra/http/middleware"
)

type Options struct {
	AllowedOrigins []string
	Logger         *zap.Logger
	// Registry backs /metrics; nil means the default prometheus registry.
	Registry *prometheus.Registry
}

func New(convert *handlers.ConvertHandler, health *handlers.HealthHandler, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	var reg prometheus.Registerer = prometheus.DefaultRegisterer
	metrics := promhttp.Handler()
	if opts.Registry != nil {
		reg = opts.Registry
		metrics = promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewHTTPMetrics(reg).Handler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		ExposedHeaders: []string{"Content-Disposition", "X-Run-Id"},
	}))

	r.Get("/health", health.Handle)
	r.Method(http.MethodGet, "/metrics", metrics)

	r.Route("/convert", func(r chi.Router) {
		r.Post("/", convert.HandleAuto)
		r.Post("/roster", convert.HandleRoster)
		r.Post("/volunteers", convert.HandleVolunteers)
	})

	return r
}
