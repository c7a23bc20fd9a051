package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vadimbarashkov/url-shortener/internal/entity"
	"github.com/vadimbarashkov/url-shortener/internal/shortcode"
	"github.com/vadimbarashkov/url-shortener/internal/telemetry"
)

type urlRepository interface {
	InsertIfAbsent(shortCode, originalURL string) bool
	Get(shortCode string) (string, error)
	Len() int
}

type analyticsRepository interface {
	Append(shortCode string, record entity.AccessRecord)
	Get(shortCode string) ([]entity.AccessRecord, error)
}

type URLUseCase struct {
	baseURL       string
	urlRepo       urlRepository
	analyticsRepo analyticsRepository
	metrics       *telemetry.Metrics
}

// NewURLUseCase builds the use case. metrics may be nil.
func NewURLUseCase(
	baseURL string,
	urlRepo urlRepository,
	analyticsRepo analyticsRepository,
	metrics *telemetry.Metrics,
) *URLUseCase {
	return &URLUseCase{
		baseURL:       strings.TrimRight(baseURL, "/"),
		urlRepo:       urlRepo,
		analyticsRepo: analyticsRepo,
		metrics:       metrics,
	}
}

// ShortenURL binds originalURL to a fresh short code. Each candidate is
// claimed with a single InsertIfAbsent call, so two concurrent callers can
// never end up with the same code.
func (uc *URLUseCase) ShortenURL(ctx context.Context, originalURL string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ShortenURL"

	if originalURL == "" {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrEmptyURL)
	}

	shortCode, err := shortcode.Generate(originalURL, func(candidate string) bool {
		return !uc.urlRepo.InsertIfAbsent(candidate, originalURL)
	})
	if err != nil {
		if errors.Is(err, entity.ErrGenerationExhausted) {
			uc.metrics.GenerationExhausted(ctx)
		}

		return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
	}

	uc.metrics.URLShortened(ctx)

	return &entity.URL{
		ShortCode:   shortCode,
		OriginalURL: originalURL,
	}, nil
}

// ResolveShortCode looks up shortCode and appends record to its access log.
// Nothing is appended for unknown codes.
func (uc *URLUseCase) ResolveShortCode(ctx context.Context, shortCode string, record entity.AccessRecord) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ResolveShortCode"

	originalURL, err := uc.urlRepo.Get(shortCode)
	if err != nil {
		if errors.Is(err, entity.ErrURLNotFound) {
			uc.metrics.RedirectNotFound(ctx)
		}

		return nil, fmt.Errorf("%s: failed to resolve short code: %w", op, err)
	}

	uc.analyticsRepo.Append(shortCode, record)
	uc.metrics.Redirected(ctx)

	return &entity.URL{
		ShortCode:   shortCode,
		OriginalURL: originalURL,
	}, nil
}

func (uc *URLUseCase) GetAnalytics(ctx context.Context, shortCode string) ([]entity.AccessRecord, error) {
	const op = "usecase.URLUseCase.GetAnalytics"

	uc.metrics.AnalyticsRequested(ctx)

	records, err := uc.analyticsRepo.Get(shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get analytics: %w", op, err)
	}

	return records, nil
}

// CountURLs returns the number of stored short codes.
func (uc *URLUseCase) CountURLs(_ context.Context) int {
	return uc.urlRepo.Len()
}

// ShortURL returns the public URL for shortCode.
func (uc *URLUseCase) ShortURL(shortCode string) string {
	return uc.baseURL + "/" + shortCode
}
