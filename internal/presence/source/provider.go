package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jayvaglio/online-presence-app/internal/common/config"
	stderrors "github.com/jayvaglio/online-presence-app/internal/common/errors"
	httpclient "github.com/jayvaglio/online-presence-app/internal/common/http"
	"github.com/jayvaglio/online-presence-app/internal/common/logger"
	"github.com/jayvaglio/online-presence-app/internal/common/metrics"
	"github.com/jayvaglio/online-presence-app/internal/models"
)

// Provider fetches organic results from a Google CSE style search API. One
// attempt per request; failures are surfaced, never swallowed into the
// fallback.
type Provider struct {
	cfg    config.SearchConfig
	client *httpclient.Client
	logger logger.Logger
}

func NewProvider(cfg config.SearchConfig, client *httpclient.Client, log logger.Logger) *Provider {
	return &Provider{
		cfg:    cfg,
		client: client,
		logger: log.WithFields(map[string]interface{}{"source": "provider"}),
	}
}

// providerResult mirrors the provider's record shape. Every field is
// optional on the wire; absent fields decode to "".
type providerResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Source  string `json:"source"`
	Snippet string `json:"snippet"`
}

func (p *Provider) Fetch(ctx context.Context, query string) ([]models.ResultItem, error) {
	searchURL := p.buildSearchURL(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, stderrors.NewProviderRequestError(err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("error").Inc()
		if isTimeout(ctx, err) {
			return nil, stderrors.NewProviderTimeoutError(err)
		}
		return nil, stderrors.NewProviderRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequestsTotal.WithLabelValues("error").Inc()
		return nil, stderrors.NewProviderBadResponseError(fmt.Sprintf("search API returned %d", resp.StatusCode))
	}

	var apiResponse struct {
		Items []providerResult `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("error").Inc()
		return nil, stderrors.NewProviderBadResponseError(fmt.Sprintf("decode response: %v", err))
	}

	metrics.ProviderRequestsTotal.WithLabelValues("ok").Inc()

	items := p.mapResults(query, apiResponse.Items)

	p.logger.Info("provider search completed", map[string]interface{}{
		"query":       query,
		"resultCount": len(items),
	})

	return items, nil
}

func (p *Provider) buildSearchURL(query string) string {
	baseURL, _ := url.Parse(p.cfg.APIBaseURL)
	params := url.Values{}
	params.Add("key", p.cfg.APIKey)
	params.Add("cx", p.cfg.EngineID)
	params.Add("q", query)
	params.Add("num", fmt.Sprintf("%d", p.cfg.MaxResults))
	baseURL.RawQuery = params.Encode()
	return baseURL.String()
}

// mapResults normalizes provider records into the common item shape, with
// per-field fallbacks for the provider's optional fields.
func (p *Provider) mapResults(query string, results []providerResult) []models.ResultItem {
	n := len(results)
	if n > p.cfg.MaxResults {
		n = p.cfg.MaxResults
	}

	items := make([]models.ResultItem, 0, n)
	for _, r := range results[:n] {
		title := r.Title
		if title == "" {
			title = r.Snippet
		}
		if title == "" {
			title = query
		}

		link := r.Link
		if link == "" {
			link = r.Source
		}
		if link == "" {
			link = "#"
		}

		items = append(items, models.ResultItem{
			Title:   title,
			Link:    link,
			Snippet: r.Snippet,
		})
	}
	return items
}

func isTimeout(ctx context.Context, err error) bool {
	return ctx.Err() == context.DeadlineExceeded ||
		strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "deadline") ||
		strings.Contains(err.Error(), "Client.Timeout")
}
