// Package report assembles the final presence report: score, sentiment,
// top domain, letter grade and improvement tips.
package report

import (
	"github.com/jayvaglio/online-presence-app/internal/models"
	"github.com/jayvaglio/online-presence-app/internal/presence/hostname"
	"github.com/jayvaglio/online-presence-app/internal/presence/sentiment"
)

// Build puts a report together from independently computed parts. The top
// domain comes from the first result item; it is empty when the item's link
// does not parse to a hostname.
func Build(query string, items []models.ResultItem, score int, label sentiment.Label, reviews []models.Review, stats *models.ReviewStats) models.PresenceReport {
	topDomain := ""
	if len(items) > 0 {
		topDomain = hostname.FromLink(items[0].Link)
	}

	return models.PresenceReport{
		Query:         query,
		Items:         items,
		PresenceScore: score,
		Sentiment:     string(label),
		TopDomain:     topDomain,
		Grade:         Grade(score, label, stats),
		Tips:          Tips(items, label, stats),
		Reviews:       reviews,
		ReviewStats:   stats,
	}
}

// Grade folds score, sentiment and review stats into a letter grade on an
// eight point scale: up to four points from the presence score, two from
// sentiment, two from the positive review share.
func Grade(score int, label sentiment.Label, stats *models.ReviewStats) string {
	points := 0

	switch {
	case score >= 80:
		points += 4
	case score >= 60:
		points += 3
	case score >= 40:
		points += 2
	case score >= 20:
		points++
	}

	switch label {
	case sentiment.Positive:
		points += 2
	case sentiment.Mixed:
		points++
	}

	if stats != nil {
		rated := stats.PositiveReviews + stats.NegativeReviews
		if rated > 0 {
			ratio := float64(stats.PositiveReviews) / float64(rated)
			if ratio >= 0.8 {
				points += 2
			} else if ratio >= 0.5 {
				points++
			}
		}
	} else {
		// No rated reviews found; do not penalize, give the middle point.
		points++
	}

	switch {
	case points >= 7:
		return "A"
	case points >= 6:
		return "B"
	case points >= 5:
		return "C"
	case points >= 4:
		return "D"
	default:
		return "F"
	}
}

// Tips produces actionable suggestions based on what the assessment found.
func Tips(items []models.ResultItem, label sentiment.Label, stats *models.ReviewStats) []string {
	var tips []string

	if len(items) < 3 {
		tips = append(tips, "Increase your online visibility by creating profiles on LinkedIn, Twitter and a personal website.")
	}

	if label == sentiment.Negative {
		tips = append(tips, "Negative coverage dominates your search results. Consider publishing positive content and addressing concerns directly.")
	}

	if stats != nil {
		if stats.AverageRating < 3.5 {
			tips = append(tips, "Your average review rating is low. Encourage satisfied customers to leave reviews.")
		}
		if stats.NegativeReviews > stats.PositiveReviews {
			tips = append(tips, "Negative reviews outnumber positive ones. Respond to criticism professionally and resolve complaints.")
		}
	}

	if len(tips) == 0 {
		tips = append(tips, "Your online presence looks strong. Keep publishing content regularly to maintain it.")
	}

	return tips
}
