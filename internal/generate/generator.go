// Package generate synthesizes the article corpus served by the prototype.
// Generation runs once at process start; the resulting records are never
// mutated afterwards.
package generate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yushkumar524/BiasLabPrototype/internal/bias"
	"github.com/yushkumar524/BiasLabPrototype/internal/highlight"
	"github.com/yushkumar524/BiasLabPrototype/internal/models"
)

// defaultLookback places the corpus in the three days leading up to now.
const defaultLookback = 72 * time.Hour

// Options control corpus synthesis. The zero value gives a time-seeded corpus
// anchored at the current time.
type Options struct {
	Now      time.Time     // zero = time.Now()
	Lookback time.Duration // zero = 72h
	Rand     bias.Rand     // nil = time-seeded source
}

// Articles builds the full article collection from the fixed templates, in
// template order. Publication dates spread each narrative's members eight
// hours apart from the lookback base, plus up to five days of jitter.
func Articles(opts Options) []models.Article {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	lookback := opts.Lookback
	if lookback <= 0 {
		lookback = defaultLookback
	}
	rng := opts.Rand
	if rng == nil {
		rng = bias.NewRand(0)
	}

	scorer := bias.NewScorer(rng)
	base := now.Add(-lookback)

	var articles []models.Article
	for _, tpl := range templates {
		for i, at := range tpl.Articles {
			id := uuid.NewString()
			published := base.Add(time.Duration(i*8+rng.IntBetween(0, 120)) * time.Hour)

			articles = append(articles, models.Article{
				ID:                 id,
				Title:              at.Title,
				Content:            at.Content,
				Source:             at.Source,
				Author:             fmt.Sprintf("Reporter %d", rng.IntBetween(1, 50)),
				PublishedDate:      published,
				URL:                articleURL(at.Source, id),
				BiasScores:         scorer.Score(at.Source, at.Modifier),
				HighlightedPhrases: highlight.Scan(at.Content, rng),
				NarrativeID:        tpl.NarrativeID,
			})
		}
	}
	return articles
}

// articleURL derives a synthetic link from the outlet name and id prefix.
func articleURL(source, id string) string {
	host := strings.ReplaceAll(strings.ToLower(source), " ", "")
	return fmt.Sprintf("https://%s.com/article/%s", host, id[:8])
}
