// Package source acquires result items for a presence query, either from the
// configured search provider or from a deterministic offline fallback.
package source

import (
	"context"

	"github.com/jayvaglio/online-presence-app/internal/common/cache"
	"github.com/jayvaglio/online-presence-app/internal/common/config"
	httpclient "github.com/jayvaglio/online-presence-app/internal/common/http"
	"github.com/jayvaglio/online-presence-app/internal/common/logger"
	"github.com/jayvaglio/online-presence-app/internal/models"
)

// Source returns an ordered list of result items for a query. Scoring and
// sentiment are computed downstream, never here.
type Source interface {
	Fetch(ctx context.Context, query string) ([]models.ResultItem, error)
}

// Select picks the source variant once, based on configuration presence: the
// provider whenever a credential is configured, the fallback otherwise. There
// is no runtime fallback on provider failure; a failed provider call is
// surfaced to the caller as a provider error.
func Select(cfg config.Config, redisClient *cache.RedisClient, log logger.Logger) Source {
	if !cfg.Search.ProviderConfigured() {
		return NewFallback()
	}

	var src Source = NewProvider(cfg.Search, httpclient.NewClient(cfg.Search.HTTPTimeout()), log)
	if cfg.Cache.Enabled && redisClient != nil {
		src = NewCached(src, redisClient, cfg.Cache.TTLDuration(), log)
	}
	return src
}
