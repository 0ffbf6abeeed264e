package source

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jayvaglio/online-presence-app/internal/models"
)

// FallbackTopDomain is the normalized domain of the first fallback channel.
const FallbackTopDomain = "linkedin.com"

// Fallback synthesizes a fixed set of presence-channel items when no provider
// credential is configured. Construction is purely deterministic: no network,
// no randomness, no clock. It is not an error-recovery path.
type Fallback struct{}

func NewFallback() *Fallback {
	return &Fallback{}
}

// presenceChannel describes one conventional place to look for a person
// online. The search URL is built by encoding the query into urlFormat.
type presenceChannel struct {
	name      string
	urlFormat string
	snippet   string
}

var fallbackChannels = []presenceChannel{
	{
		name:      "LinkedIn",
		urlFormat: "https://www.linkedin.com/search/results/people/?keywords=%s",
		snippet:   "Professional network profile search.",
	},
	{
		name:      "Twitter",
		urlFormat: "https://twitter.com/search?q=%s",
		snippet:   "Social media profile and mention search.",
	},
	{
		name:      "Medium",
		urlFormat: "https://medium.com/search?q=%s",
		snippet:   "Long-form writing and published articles.",
	},
	{
		name:      "Web search",
		urlFormat: "https://www.google.com/search?q=%s+personal+website",
		snippet:   "General web search for a personal website.",
	},
}

func (f *Fallback) Fetch(_ context.Context, query string) ([]models.ResultItem, error) {
	encoded := url.QueryEscape(query)

	items := make([]models.ResultItem, 0, len(fallbackChannels))
	for _, ch := range fallbackChannels {
		items = append(items, models.ResultItem{
			Title:   fmt.Sprintf("%s: %s", ch.name, query),
			Link:    fmt.Sprintf(ch.urlFormat, encoded),
			Snippet: ch.snippet,
		})
	}
	return items, nil
}
