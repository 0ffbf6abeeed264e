// Package reviews collects customer reviews from review-site pages discovered
// through the search source. Collection is best effort: any fetch or parse
// failure yields fewer (or zero) reviews, never an error to the caller.
package reviews

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jayvaglio/online-presence-app/internal/common/config"
	httpclient "github.com/jayvaglio/online-presence-app/internal/common/http"
	"github.com/jayvaglio/online-presence-app/internal/common/logger"
	"github.com/jayvaglio/online-presence-app/internal/models"
	"github.com/jayvaglio/online-presence-app/internal/presence/source"
)

const siteName = "Yelp"

var ratingPattern = regexp.MustCompile(`([0-5](?:\.\d)?) star rating`)

// Collector discovers business pages via a site-restricted search and parses
// review blocks out of them.
type Collector struct {
	cfg    config.ReviewsConfig
	src    source.Source
	client *httpclient.Client
	logger logger.Logger
}

func NewCollector(cfg config.ReviewsConfig, src source.Source, log logger.Logger) *Collector {
	return &Collector{
		cfg:    cfg,
		src:    src,
		client: httpclient.NewClient(cfg.HTTPTimeout()),
		logger: log.WithFields(map[string]interface{}{"component": "reviews"}),
	}
}

// Collect searches "<query> site:yelp.com", fetches business pages from the
// results and extracts up to MaxReviews reviews. Search or fetch failures are
// logged and swallowed.
func (c *Collector) Collect(ctx context.Context, query string) []models.Review {
	items, err := c.src.Fetch(ctx, query+" site:yelp.com")
	if err != nil {
		c.logger.WithError(err).Warn("review discovery search failed", map[string]interface{}{
			"query": query,
		})
		return nil
	}

	var reviews []models.Review
	for _, item := range items {
		if !strings.Contains(item.Link, "/biz/") {
			continue
		}
		if len(reviews) >= c.cfg.MaxReviews {
			break
		}

		body, err := c.fetchPage(ctx, item.Link)
		if err != nil {
			c.logger.WithError(err).Warn("review page fetch failed", map[string]interface{}{
				"url": item.Link,
			})
			continue
		}

		parsed := ParsePage(body, item.Link)
		for _, r := range parsed {
			if len(reviews) >= c.cfg.MaxReviews {
				break
			}
			reviews = append(reviews, r)
		}
	}

	return reviews
}

func (c *Collector) fetchPage(ctx context.Context, pageURL string) (string, error) {
	resp, err := c.client.Get(ctx, pageURL, c.cfg.UserAgent)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &statusError{code: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.code)
}

// ParsePage extracts reviews from a business page. Review blocks are
// div[data-review-id] elements, falling back to div[class*="review__"] for
// older markup. Text comes from the block's first <p>; the star rating, when
// present, from the aria-label of a role="img" element.
func ParsePage(html, pageURL string) []models.Review {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	blocks := doc.Find("div[data-review-id]")
	if blocks.Length() == 0 {
		blocks = doc.Find(`div[class*="review__"]`)
	}

	var reviews []models.Review
	blocks.Each(func(_ int, block *goquery.Selection) {
		text := strings.TrimSpace(block.Find("p").First().Text())
		if text == "" {
			return
		}

		reviews = append(reviews, models.Review{
			Site:   siteName,
			Text:   text,
			Rating: extractRating(block),
			URL:    pageURL,
		})
	})

	return reviews
}

func extractRating(block *goquery.Selection) *float64 {
	label, ok := block.Find(`div[role="img"]`).First().Attr("aria-label")
	if !ok {
		return nil
	}

	m := ratingPattern.FindStringSubmatch(label)
	if m == nil {
		return nil
	}

	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &val
}

// Stats aggregates ratings; reviews without a rating are skipped for the
// average, 4.0 and above counts as positive. Returns nil when no review
// carries a rating.
func Stats(reviews []models.Review) *models.ReviewStats {
	var sum float64
	var rated, positive, negative int

	for _, r := range reviews {
		if r.Rating == nil {
			continue
		}
		rated++
		sum += *r.Rating
		if *r.Rating >= 4 {
			positive++
		} else {
			negative++
		}
	}

	if rated == 0 {
		return nil
	}

	return &models.ReviewStats{
		AverageRating:   roundTo2(sum / float64(rated)),
		PositiveReviews: positive,
		NegativeReviews: negative,
	}
}

func roundTo2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
