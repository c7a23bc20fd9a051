// Package http provides the HTTP delivery layer for the URL shortener service.
// This package contains the HTTP handlers and related types used for processing
// incoming requests, validating input, and formatting responses.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vadimbarashkov/url-shortener/docs"
)

// InstanceIDHeader identifies the process that served a response.
const InstanceIDHeader = "X-Instance-ID"

var defaultAllowedOrigins = []string{"https://*", "http://*"}

type options struct {
	clock          func() time.Time
	instanceID     string
	allowedOrigins []string
}

type Option func(*options)

// WithClock sets the time source used for access record timestamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func WithInstanceID(id string) Option {
	return func(o *options) {
		o.instanceID = id
	}
}

func WithAllowedOrigins(origins []string) Option {
	return func(o *options) {
		o.allowedOrigins = origins
	}
}

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the URL shortener API.
func NewRouter(logger *httplog.Logger, urlUseCase urlUseCase, opts ...Option) *chi.Mux {
	o := &options{
		clock:          func() time.Time { return time.Now().UTC() },
		allowedOrigins: defaultAllowedOrigins,
	}
	for _, opt := range opts {
		opt(o)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   o.allowedOrigins,
		AllowedMethods:   []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		ExposedHeaders:   []string{InstanceIDHeader, "Location"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(instanceID(o.instanceID))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(docs.SwaggerYAML)
	})

	h := newURLHandler(urlUseCase, validator.New(), logger, o)

	r.Get("/", handleWelcome)
	r.Get("/ping", handlePing)
	r.Get("/health", h.health)
	r.Post("/shorten", h.shortenURL)
	r.Get("/analytics/{shortCode}", h.getAnalytics)
	r.Get("/{shortCode}", h.resolveShortCode)

	return r
}

// instanceID tags every response with the id of the serving process.
func instanceID(id string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id != "" {
				w.Header().Set(InstanceIDHeader, id)
			}
			next.ServeHTTP(w, r)
		})
	}
}
