// Package assess runs a presence assessment end to end: input validation,
// result acquisition, score and sentiment computation, optional review
// collection and report assembly.
package assess

import (
	"context"
	"strings"
	"time"

	"github.com/jayvaglio/online-presence-app/internal/common/config"
	"github.com/jayvaglio/online-presence-app/internal/common/errors"
	"github.com/jayvaglio/online-presence-app/internal/common/logger"
	"github.com/jayvaglio/online-presence-app/internal/common/metrics"
	"github.com/jayvaglio/online-presence-app/internal/models"
	"github.com/jayvaglio/online-presence-app/internal/presence/report"
	"github.com/jayvaglio/online-presence-app/internal/presence/reviews"
	"github.com/jayvaglio/online-presence-app/internal/presence/score"
	"github.com/jayvaglio/online-presence-app/internal/presence/sentiment"
	"github.com/jayvaglio/online-presence-app/internal/presence/source"
)

// ReviewCollector is the optional review collection dependency. It is nil
// when review collection is disabled or no search provider is configured.
type ReviewCollector interface {
	Collect(ctx context.Context, query string) []models.Review
}

type Handler struct {
	config  config.Config
	source  source.Source
	reviews ReviewCollector
	logger  logger.Logger
}

func NewHandler(cfg config.Config, src source.Source, reviews ReviewCollector, log logger.Logger) *Handler {
	return &Handler{
		config:  cfg,
		source:  src,
		reviews: reviews,
		logger:  log.WithFields(map[string]interface{}{"component": "assess"}),
	}
}

// Execute runs one assessment. Validation failures and provider failures are
// returned as standard errors; review collection failures are not, the report
// simply carries no reviews.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := validateInput(input); err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("validation_error").Inc()
		return nil, err
	}

	query := strings.TrimSpace(input.Name)
	start := time.Now()

	items, err := h.source.Fetch(ctx, query)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("provider_error").Inc()
		h.logger.WithError(err).Error("result fetch failed", map[string]interface{}{
			"query": query,
		})
		return nil, errors.AsStandard(err)
	}

	// Score and sentiment are independent views over the same items; neither
	// feeds into the other.
	presenceScore := score.Calculate(items)
	label := sentiment.Estimate(items)

	var collected []models.Review
	var stats *models.ReviewStats
	if h.reviews != nil {
		collected = h.reviews.Collect(ctx, query)
		stats = reviews.Stats(collected)
	}

	metrics.SearchRequestsTotal.WithLabelValues("success").Inc()
	metrics.SearchRequestDuration.WithLabelValues(h.sourceLabel()).Observe(time.Since(start).Seconds())

	h.logger.Info("assessment complete", map[string]interface{}{
		"query":         query,
		"items":         len(items),
		"presenceScore": presenceScore,
		"sentiment":     string(label),
		"reviews":       len(collected),
	})

	return &Output{
		Report: report.Build(query, items, presenceScore, label, collected, stats),
	}, nil
}

func (h *Handler) sourceLabel() string {
	if h.config.Search.ProviderConfigured() {
		return "provider"
	}
	return "fallback"
}
