package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/url-shortener/internal/adapter/repository/memory"
	"github.com/vadimbarashkov/url-shortener/internal/config"
	"github.com/vadimbarashkov/url-shortener/internal/telemetry"
	"github.com/vadimbarashkov/url-shortener/internal/usecase"
	"golang.org/x/sync/errgroup"

	gonanoid "github.com/matoous/go-nanoid/v2"
	delivery "github.com/vadimbarashkov/url-shortener/internal/adapter/delivery/http"
)

const serviceName = "url-shortener"

type Option func(*App)

// WithLogWriter redirects the application log.
func WithLogWriter(w io.Writer) Option {
	return func(a *App) {
		a.logWriter = w
	}
}

// App holds the wired service for a single process.
type App struct {
	cfg        *config.Config
	logWriter  io.Writer
	logger     *httplog.Logger
	metrics    *telemetry.Metrics
	instanceID string
	handler    http.Handler
}

func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	const op = "app.New"

	a := &App{
		cfg:       cfg,
		logWriter: os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}

	instanceID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to generate instance id: %w", op, err)
	}
	a.instanceID = instanceID

	a.logger = httplog.NewLogger(serviceName, httplog.Options{
		LogLevel: cfg.Log.SlogLevel(),
		JSON:     cfg.Log.JSON,
		Concise:  cfg.Log.Concise,
		Tags: map[string]string{
			"env":         cfg.Env,
			"instance_id": instanceID,
		},
		Writer: a.logWriter,
	})

	a.metrics, err = telemetry.New(ctx, cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to set up telemetry: %w", op, err)
	}

	urlUseCase := usecase.NewURLUseCase(
		cfg.BaseURL,
		memory.NewMappingStore(),
		memory.NewAnalyticsLog(),
		a.metrics,
	)

	a.handler = delivery.NewRouter(a.logger, urlUseCase,
		delivery.WithInstanceID(instanceID),
		delivery.WithAllowedOrigins(cfg.CORS.AllowedOrigins),
	)

	return a, nil
}

func (a *App) Handler() http.Handler {
	return a.handler
}

func (a *App) InstanceID() string {
	return a.instanceID
}

// Run serves HTTP until ctx is cancelled, then shuts the server down and
// flushes telemetry.
func (a *App) Run(ctx context.Context) error {
	const op = "app.App.Run"

	server := &http.Server{
		Addr:           a.cfg.HTTPServer.Addr(),
		Handler:        a.handler,
		ReadTimeout:    a.cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   a.cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    a.cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: a.cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("starting server",
			slog.String("addr", server.Addr),
			slog.String("env", a.cfg.Env),
		)

		var err error

		switch a.cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(a.cfg.HTTPServer.CertFile, a.cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		a.logger.Info("shutting down server")

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		if err := a.metrics.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown telemetry: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}

// Run builds the application from cfg and serves it until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	a, err := New(ctx, cfg)
	if err != nil {
		return err
	}

	return a.Run(ctx)
}
