// Package feed scores live RSS headlines with the same pipeline used
// for the generated dataset. It exists for the `score` command, which
// lets you point the analyzer at a real feed and eyeball the output.
package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/yushkumar524/BiasLabPrototype/internal/bias"
	"github.com/yushkumar524/BiasLabPrototype/internal/highlight"
	"github.com/yushkumar524/BiasLabPrototype/internal/models"
)

// Preview is one scored feed item.
type Preview struct {
	Title      string
	Link       string
	Published  time.Time
	Scores     models.BiasScores
	Highlights []models.HighlightedPhrase
}

// Score fetches an RSS or Atom feed and scores up to limit items. The
// feed's own title is used as the source name, so known outlets get
// their baseline profile and everything else falls back to neutral.
func Score(ctx context.Context, url string, limit int, rng bias.Rand) ([]Preview, error) {
	parser := gofeed.NewParser()
	f, err := parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	source := strings.TrimSpace(f.Title)
	if source == "" {
		source = url
	}

	scorer := bias.NewScorer(rng)
	previews := make([]Preview, 0, limit)
	for _, item := range f.Items {
		if len(previews) >= limit {
			break
		}

		pub := time.Now()
		if item.PublishedParsed != nil {
			pub = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			pub = *item.UpdatedParsed
		}

		body := item.Description
		if body == "" {
			body = item.Content
		}
		text := item.Title + " " + stripHTML(body)

		previews = append(previews, Preview{
			Title:      item.Title,
			Link:       item.Link,
			Published:  pub,
			Scores:     scorer.Score(source, nil),
			Highlights: highlight.Scan(text, rng),
		})
	}
	return previews, nil
}

// Truncate shortens s to at most n runes, appending an ellipsis when
// anything was cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
