// Package sentiment derives a coarse three-way label from result snippets.
package sentiment

import (
	"strings"

	"github.com/jayvaglio/online-presence-app/internal/models"
)

// Label is one of the three coarse sentiment outcomes.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Mixed    Label = "mixed/neutral"
)

// Fixed marker lexicons. Matching is substring containment, not whole-word:
// "controversial" matches "controvers", but so does "winter" match "win".
// That coarseness is a known limitation of the heuristic, kept as-is.
var (
	positiveMarkers = []string{"award", "honor", "lead", "founder", "ceo", "win", "positive", "celebrat"}
	negativeMarkers = []string{"scandal", "charged", "arrest", "lawsuit", "controvers", "accused"}
)

// Estimate concatenates all snippets and counts which markers from each
// lexicon appear at least once. More positive markers than negative yields
// Positive, the reverse yields Negative, ties (including 0/0) yield Mixed.
func Estimate(items []models.ResultItem) Label {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.Snippet)
		b.WriteString(" ")
	}
	text := strings.ToLower(b.String())

	p := countPresent(text, positiveMarkers)
	m := countPresent(text, negativeMarkers)

	switch {
	case p > m:
		return Positive
	case m > p:
		return Negative
	default:
		return Mixed
	}
}

func countPresent(text string, markers []string) int {
	count := 0
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			count++
		}
	}
	return count
}
