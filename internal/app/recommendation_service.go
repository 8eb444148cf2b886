// Package app contains application services that orchestrate use cases.
// It coordinates the domain catalog with telemetry, metrics and the share
// ports; HTTP and CLI specifics stay in the adapters.
package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/maeumgido/internal/domain"
	"github.com/jsamuelsen/maeumgido/internal/platform/logging"
	"github.com/jsamuelsen/maeumgido/internal/platform/telemetry"
)

// EmptyCatalogMessage is shown when there is nothing at all to recommend.
const EmptyCatalogMessage = "조건에 맞는 기도문을 찾지 못했습니다."

// MaxLabelLength bounds facet labels accepted from callers.
const MaxLabelLength = 64

// RecommendationService serves facet lists, recommendations and catalog lookups.
// The catalog is immutable, so the service is safe for concurrent use.
type RecommendationService struct {
	catalog   *domain.Catalog
	publicURL string
	metrics   *Metrics
	tracer    trace.Tracer
	logger    *slog.Logger
}

// RecommendationServiceConfig contains the service dependencies.
type RecommendationServiceConfig struct {
	Catalog *domain.Catalog

	// PublicURL is attached to share payloads.
	PublicURL string

	// Metrics is optional.
	Metrics *Metrics
	Logger  *slog.Logger
}

// NewRecommendationService creates a recommendation service. It panics without a catalog.
func NewRecommendationService(cfg RecommendationServiceConfig) *RecommendationService {
	if cfg.Catalog == nil {
		panic("app: RecommendationService requires a Catalog")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &RecommendationService{
		catalog:   cfg.Catalog,
		publicURL: cfg.PublicURL,
		metrics:   cfg.Metrics,
		tracer:    telemetry.Tracer(),
		logger:    logger.With(slog.String("component", "app.RecommendationService")),
	}
}

// Name implements ports.HealthChecker.
func (s *RecommendationService) Name() string {
	return "catalog"
}

// Check implements ports.HealthChecker. The catalog is loaded before the
// service exists, so only a cancelled probe fails. An empty catalog is still
// ready; every recommendation then carries EmptyCatalogMessage.
func (s *RecommendationService) Check(ctx context.Context) error {
	return ctx.Err()
}

// CatalogSize returns the number of prayers loaded.
func (s *RecommendationService) CatalogSize() int {
	return s.catalog.Len()
}

// Facets returns the selectable emotion and situation labels.
func (s *RecommendationService) Facets(_ context.Context) domain.FacetSets {
	return s.catalog.Facets()
}

// ValidateSelection rejects labels that cannot come from a real catalog.
// Unknown but well-formed labels are allowed; they simply match nothing.
func ValidateSelection(sel domain.Selection) error {
	if len([]rune(sel.Emotion)) > MaxLabelLength {
		return domain.NewValidationErrorWithValue("emotion", "label is too long", sel.Emotion)
	}

	if len([]rune(sel.Situation)) > MaxLabelLength {
		return domain.NewValidationErrorWithValue("situation", "label is too long", sel.Situation)
	}

	return nil
}

// Recommend ranks the catalog for sel.
func (s *RecommendationService) Recommend(ctx context.Context, sel domain.Selection) (domain.Recommendation, error) {
	ctx, span := s.tracer.Start(ctx, "RecommendationService.Recommend",
		trace.WithAttributes(
			attribute.String("selection.emotion", sel.Emotion),
			attribute.String("selection.situation", sel.Situation),
		),
	)
	defer span.End()

	if err := ValidateSelection(sel); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.Recommendation{}, err
	}

	rec := s.catalog.Recommend(sel)

	span.SetAttributes(
		attribute.Int("recommendation.count", len(rec.Items)),
		attribute.Bool("recommendation.fallback", rec.Fallback),
	)
	s.metrics.recordRecommendation(rec.Fallback)

	logger := logging.FromContextOr(ctx, s.logger)

	logger.DebugContext(ctx, "recommended prayers",
		slog.String("selection", sel.Label()),
		slog.Int("count", len(rec.Items)),
		slog.Bool("fallback", rec.Fallback),
	)

	if logger.Enabled(ctx, logging.LevelTrace) {
		for _, sp := range domain.Rank(s.catalog.All(), sel) {
			logger.Log(ctx, logging.LevelTrace, "scored prayer",
				slog.String("prayer_id", sp.Prayer.ID),
				slog.Int("score", sp.Score),
			)
		}
	}

	return rec, nil
}

// Prayer returns one prayer by id.
func (s *RecommendationService) Prayer(_ context.Context, id string) (domain.Prayer, error) {
	if id == "" {
		return domain.Prayer{}, domain.NewValidationError("id", "cannot be empty")
	}

	return s.catalog.Get(id)
}

// ListPrayers returns up to limit prayers in title order, starting after the
// prayer with id after. An empty after starts from the beginning.
func (s *RecommendationService) ListPrayers(_ context.Context, after string, limit int) ([]domain.Prayer, error) {
	if limit <= 0 {
		return nil, domain.NewValidationErrorWithValue("limit", "must be positive", limit)
	}

	sorted := s.catalog.SortedByTitle()

	start := 0
	if after != "" {
		start = -1

		for i := range sorted {
			if sorted[i].ID == after {
				start = i + 1
				break
			}
		}

		if start < 0 {
			return nil, domain.NewValidationErrorWithValue("cursor", "unknown position", after)
		}
	}

	end := min(start+limit, len(sorted))

	return sorted[start:end], nil
}

// SharePayload builds the share payload for the featured prayer of sel.
// Returns a NotFoundError when there is no featured prayer.
func (s *RecommendationService) SharePayload(_ context.Context, sel domain.Selection) (domain.SharePayload, error) {
	if err := ValidateSelection(sel); err != nil {
		return domain.SharePayload{}, err
	}

	rec := s.catalog.Recommend(sel)

	featured, ok := rec.Featured()
	if !ok {
		return domain.SharePayload{}, domain.NewNotFoundError("featured prayer", "")
	}

	return domain.NewSharePayload(&featured, sel, s.publicURL), nil
}
