// internal/models/presence.go
package models

// ResultItem is one search result for a presence query. Link may be
// malformed; consumers degrade to the unknown-domain sentinel rather than
// failing. Items are immutable once created and scoped to a single query.
type ResultItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Review is a single customer review extracted from a result page.
type Review struct {
	Site   string   `json:"site"`
	Text   string   `json:"text"`
	Rating *float64 `json:"rating"`
	URL    string   `json:"url"`
}

// ReviewStats aggregates ratings across collected reviews. A review counts
// as positive at 4 stars or above.
type ReviewStats struct {
	AverageRating   float64 `json:"averageRating"`
	PositiveReviews int     `json:"positiveReviews"`
	NegativeReviews int     `json:"negativeReviews"`
}

// PresenceReport is the full response for one presence query. It is created
// once per request and never persisted.
type PresenceReport struct {
	Query         string       `json:"query"`
	Items         []ResultItem `json:"items"`
	PresenceScore int          `json:"presenceScore"`
	Sentiment     string       `json:"sentiment"`
	TopDomain     string       `json:"topDomain,omitempty"`
	Grade         string       `json:"grade"`
	Tips          []string     `json:"tips"`
	Reviews       []Review     `json:"reviews,omitempty"`
	ReviewStats   *ReviewStats `json:"reviewStats,omitempty"`
}
