package assess

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayvaglio/online-presence-app/internal/common/config"
	"github.com/jayvaglio/online-presence-app/internal/common/errors"
	"github.com/jayvaglio/online-presence-app/internal/common/logger"
	"github.com/jayvaglio/online-presence-app/internal/models"
	"github.com/jayvaglio/online-presence-app/internal/presence/source"
)

type stubSource struct {
	items   []models.ResultItem
	err     error
	fetches int
	query   string
}

func (s *stubSource) Fetch(_ context.Context, query string) ([]models.ResultItem, error) {
	s.fetches++
	s.query = query
	return s.items, s.err
}

type stubCollector struct {
	reviews []models.Review
	calls   int
}

func (s *stubCollector) Collect(_ context.Context, _ string) []models.Review {
	s.calls++
	return s.reviews
}

func testConfig() config.Config {
	var cfg config.Config
	cfg.Search.MaxResults = 10
	return cfg
}

func TestExecuteAssemblesReport(t *testing.T) {
	src := &stubSource{items: []models.ResultItem{
		{Title: "Jane Doe", Link: "https://www.linkedin.com/in/janedoe", Snippet: "founder of Acme"},
		{Title: "Jane Doe profile", Link: "https://twitter.com/janedoe", Snippet: "award winner"},
	}}

	h := NewHandler(testConfig(), src, nil, logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), &Input{Name: "Jane Doe"})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", out.Report.Query)
	assert.Len(t, out.Report.Items, 2)
	assert.Equal(t, 30, out.Report.PresenceScore)
	assert.Equal(t, "positive", out.Report.Sentiment)
	assert.Equal(t, "linkedin.com", out.Report.TopDomain)
	assert.NotEmpty(t, out.Report.Grade)
	assert.NotEmpty(t, out.Report.Tips)
	assert.Nil(t, out.Report.Reviews)
}

func TestExecuteTrimsQuery(t *testing.T) {
	src := &stubSource{}

	h := NewHandler(testConfig(), src, nil, logger.NewTestLogger(t))
	_, err := h.Execute(context.Background(), &Input{Name: "  Jane Doe  "})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", src.query)
}

func TestExecuteValidationShortCircuits(t *testing.T) {
	src := &stubSource{err: assert.AnError}

	h := NewHandler(testConfig(), src, nil, logger.NewTestLogger(t))

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := h.Execute(context.Background(), &Input{Name: name})

		std := errors.AsStandard(err)
		require.NotNil(t, std)
		assert.Equal(t, errors.ErrCodeValidationFailed, std.Code)
		assert.Equal(t, "name required", std.PublicMessage)
	}

	assert.Zero(t, src.fetches)
}

func TestExecuteProviderErrorSurfaces(t *testing.T) {
	src := &stubSource{err: errors.NewProviderBadResponseError("status 403")}

	h := NewHandler(testConfig(), src, nil, logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), &Input{Name: "Jane Doe"})

	assert.Nil(t, out)
	std := errors.AsStandard(err)
	require.NotNil(t, std)
	assert.Equal(t, errors.ErrCodeProviderBadResponse, std.Code)
}

func TestExecuteEmptyResults(t *testing.T) {
	src := &stubSource{}

	h := NewHandler(testConfig(), src, nil, logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), &Input{Name: "Jane Doe"})

	require.NoError(t, err)
	assert.Equal(t, 0, out.Report.PresenceScore)
	assert.Equal(t, "mixed/neutral", out.Report.Sentiment)
	assert.Empty(t, out.Report.TopDomain)
}

func TestExecuteCollectsReviews(t *testing.T) {
	rating := 4.5
	src := &stubSource{items: []models.ResultItem{
		{Title: "Jane Doe", Link: "https://example.com/jane", Snippet: "profile"},
	}}
	collector := &stubCollector{reviews: []models.Review{
		{Site: "Yelp", Text: "great", Rating: &rating, URL: "https://www.yelp.com/biz/jane"},
	}}

	h := NewHandler(testConfig(), src, collector, logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), &Input{Name: "Jane Doe"})

	require.NoError(t, err)
	assert.Equal(t, 1, collector.calls)
	require.Len(t, out.Report.Reviews, 1)
	require.NotNil(t, out.Report.ReviewStats)
	assert.Equal(t, 4.5, out.Report.ReviewStats.AverageRating)
	assert.Equal(t, 1, out.Report.ReviewStats.PositiveReviews)
}

func TestExecuteFallbackSourceEndToEnd(t *testing.T) {
	h := NewHandler(testConfig(), source.NewFallback(), nil, logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), &Input{Name: "Jane Doe"})

	require.NoError(t, err)
	assert.Len(t, out.Report.Items, 4)
	assert.Equal(t, source.FallbackTopDomain, out.Report.TopDomain)
	assert.Greater(t, out.Report.PresenceScore, 0)
}
