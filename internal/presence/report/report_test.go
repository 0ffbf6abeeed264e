package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayvaglio/online-presence-app/internal/models"
	"github.com/jayvaglio/online-presence-app/internal/presence/sentiment"
)

func TestBuildAssemblesReport(t *testing.T) {
	items := []models.ResultItem{
		{Title: "Jane Doe", Link: "https://www.linkedin.com/in/janedoe", Snippet: "founder"},
		{Title: "Jane Doe wins award", Link: "https://news.example.com/a", Snippet: "award"},
	}

	r := Build("Jane Doe", items, 45, sentiment.Positive, nil, nil)

	assert.Equal(t, "Jane Doe", r.Query)
	assert.Equal(t, 45, r.PresenceScore)
	assert.Equal(t, "positive", r.Sentiment)
	assert.Equal(t, "linkedin.com", r.TopDomain)
	assert.NotEmpty(t, r.Grade)
	assert.NotEmpty(t, r.Tips)
}

func TestBuildTopDomainEmptyWhenLinkUnparseable(t *testing.T) {
	items := []models.ResultItem{{Title: "x", Link: "#", Snippet: ""}}

	r := Build("Jane Doe", items, 12, sentiment.Mixed, nil, nil)
	assert.Empty(t, r.TopDomain)
}

func TestBuildTopDomainEmptyWithoutItems(t *testing.T) {
	r := Build("Jane Doe", nil, 0, sentiment.Mixed, nil, nil)
	assert.Empty(t, r.TopDomain)
}

func TestGradeBoundaries(t *testing.T) {
	rated := &models.ReviewStats{AverageRating: 4.8, PositiveReviews: 5, NegativeReviews: 0}

	cases := []struct {
		name     string
		score    int
		label    sentiment.Label
		stats    *models.ReviewStats
		expected string
	}{
		{"strong presence all around", 85, sentiment.Positive, rated, "A"},
		{"good score positive sentiment no reviews", 85, sentiment.Positive, nil, "A"},
		{"mid score mixed sentiment", 45, sentiment.Mixed, nil, "D"},
		{"low score negative sentiment", 10, sentiment.Negative, nil, "F"},
		{"mid score negative reviews", 65, sentiment.Positive, &models.ReviewStats{AverageRating: 2.0, PositiveReviews: 0, NegativeReviews: 4}, "C"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Grade(tc.score, tc.label, tc.stats))
		})
	}
}

func TestGradeAlwaysLetter(t *testing.T) {
	for score := 0; score <= 100; score += 10 {
		for _, label := range []sentiment.Label{sentiment.Positive, sentiment.Negative, sentiment.Mixed} {
			g := Grade(score, label, nil)
			assert.Contains(t, []string{"A", "B", "C", "D", "F"}, g)
		}
	}
}

func TestTipsLowVisibility(t *testing.T) {
	tips := Tips([]models.ResultItem{{Title: "only one"}}, sentiment.Mixed, nil)

	require.NotEmpty(t, tips)
	assert.Contains(t, tips[0], "visibility")
}

func TestTipsNegativeSentiment(t *testing.T) {
	items := make([]models.ResultItem, 5)
	tips := Tips(items, sentiment.Negative, nil)

	require.Len(t, tips, 1)
	assert.Contains(t, tips[0], "Negative coverage")
}

func TestTipsReviewProblems(t *testing.T) {
	items := make([]models.ResultItem, 5)
	stats := &models.ReviewStats{AverageRating: 2.5, PositiveReviews: 1, NegativeReviews: 3}

	tips := Tips(items, sentiment.Positive, stats)

	require.Len(t, tips, 2)
	assert.Contains(t, tips[0], "average review rating")
	assert.Contains(t, tips[1], "Negative reviews outnumber")
}

func TestTipsStrongPresence(t *testing.T) {
	items := make([]models.ResultItem, 5)
	stats := &models.ReviewStats{AverageRating: 4.9, PositiveReviews: 5, NegativeReviews: 0}

	tips := Tips(items, sentiment.Positive, stats)

	require.Len(t, tips, 1)
	assert.Contains(t, tips[0], "looks strong")
}
