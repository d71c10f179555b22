// Package highlight scans article bodies for phrases from a fixed bias
// vocabulary. It is a keyword lookup, not a classifier: the catalog plus a
// case-insensitive substring search fully determine the output.
package highlight

import (
	"strings"

	"github.com/yushkumar524/BiasLabPrototype/internal/bias"
	"github.com/yushkumar524/BiasLabPrototype/internal/models"
)

// maxPerArticle caps highlights per article.
const maxPerArticle = 5

// Detection confidence band.
const (
	confidenceMin = 0.70
	confidenceMax = 0.95
)

// Scan returns up to five highlights for content, in catalog order with the
// first occurrence of each phrase. rng supplies the per-detection confidence
// draw.
func Scan(content string, rng bias.Rand) []models.HighlightedPhrase {
	lower := strings.ToLower(content)

	var found []models.HighlightedPhrase
	for _, entry := range Catalog {
		start := strings.Index(lower, entry.Text)
		if start < 0 {
			continue
		}
		found = append(found, models.HighlightedPhrase{
			Text:       entry.Text,
			StartPos:   start,
			EndPos:     start + len(entry.Text),
			BiasType:   string(entry.Dimension),
			Confidence: rng.FloatBetween(confidenceMin, confidenceMax),
			Color:      Color(entry.Dimension),
		})
		if len(found) == maxPerArticle {
			break
		}
	}
	return found
}
