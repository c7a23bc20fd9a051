package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/url-shortener/internal/entity"
	"github.com/vadimbarashkov/url-shortener/internal/shortcode"
)

// TimestampLayout is the format of access record timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

const welcomeMessage = "Welcome to the URL Shortener Service"

func handleWelcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, welcomeMessage)
}

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

type urlUseCase interface {
	ShortenURL(ctx context.Context, originalURL string) (*entity.URL, error)
	ResolveShortCode(ctx context.Context, shortCode string, record entity.AccessRecord) (*entity.URL, error)
	GetAnalytics(ctx context.Context, shortCode string) ([]entity.AccessRecord, error)
	CountURLs(ctx context.Context) int
	ShortURL(shortCode string) string
}

type urlHandler struct {
	useCase    urlUseCase
	validate   *validator.Validate
	logger     *httplog.Logger
	clock      func() time.Time
	instanceID string
}

func newURLHandler(useCase urlUseCase, validate *validator.Validate, logger *httplog.Logger, o *options) *urlHandler {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &urlHandler{
		useCase:    useCase,
		validate:   validate,
		logger:     logger,
		clock:      o.clock,
		instanceID: o.instanceID,
	}
}

func (h *urlHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	var req shortenRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return
	}

	url, err := h.useCase.ShortenURL(r.Context(), req.OriginalURL)
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		switch {
		case errors.Is(err, entity.ErrEmptyURL):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, invalidRequestBodyResponse)
		case errors.Is(err, entity.ErrGenerationExhausted):
			h.logger.Error("short code generation exhausted",
				slog.String("original_url", req.OriginalURL),
				slog.Int("attempts", shortcode.MaxAttempts),
			)

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, generationExhaustedResponse)
		default:
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, serverErrorResponse)
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, shortenResponse{ShortURL: h.useCase.ShortURL(url.ShortCode)})
}

func (h *urlHandler) resolveShortCode(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	if !shortcode.IsValid(shortCode) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, urlNotFoundResponse)
		return
	}

	record := entity.AccessRecord{
		Timestamp: h.clock().Format(TimestampLayout),
		Address:   r.RemoteAddr,
	}

	url, err := h.useCase.ResolveShortCode(r.Context(), shortCode, record)
	if err != nil {
		if errors.Is(err, entity.ErrURLNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, urlNotFoundResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	http.Redirect(w, r, url.OriginalURL, http.StatusFound)
}

func (h *urlHandler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	records, err := h.useCase.GetAnalytics(r.Context(), shortCode)
	if err != nil {
		if errors.Is(err, entity.ErrAnalyticsNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, analyticsNotFoundResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toAnalyticsResponse(records))
}

func (h *urlHandler) health(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, healthResponse{
		Status:     statusOK,
		InstanceID: h.instanceID,
		URLs:       h.useCase.CountURLs(r.Context()),
	})
}
