// Package score converts a result set into a bounded presence score.
package score

import (
	"github.com/jayvaglio/online-presence-app/internal/models"
	"github.com/jayvaglio/online-presence-app/internal/presence/hostname"
)

const (
	maxScore      = 100
	domainWeight  = 12
	volumeWeight  = 3
	volumeItemCap = 10
)

// Calculate scores the breadth and volume of a result set. Distinct
// normalized hostnames dominate the score so that many hits on one site do
// not read as broad presence; the unknown-domain sentinel counts as a single
// domain. Empty input scores 0.
func Calculate(items []models.ResultItem) int {
	if len(items) == 0 {
		return 0
	}

	domains := make(map[string]struct{}, len(items))
	for _, item := range items {
		domains[hostname.Normalize(item.Link)] = struct{}{}
	}

	n := len(items)
	if n > volumeItemCap {
		n = volumeItemCap
	}

	s := len(domains)*domainWeight + n*volumeWeight
	if s > maxScore {
		return maxScore
	}
	return s
}
