// Package store holds the immutable dataset and the read-only query layer
// over it. The store is built once at startup; every method is a pure read
// and safe for concurrent use without locking.
package store

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/yushkumar524/BiasLabPrototype/internal/models"
)

// Query errors. The transport layer maps these onto responses.
var (
	ErrNotFound     = errors.New("not found")
	ErrEmptyDataset = errors.New("no articles loaded")
)

// Pagination bounds for ListArticles.
const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Store is the immutable article and narrative collection.
type Store struct {
	articles   []models.Article
	narratives []models.Narrative

	articleByID   map[string]*models.Article
	narrativeByID map[string]*models.Narrative
}

// New builds the store from the collections produced at initialization. The
// inputs are not copied; callers must not mutate them afterwards.
func New(articles []models.Article, narratives []models.Narrative) *Store {
	s := &Store{
		articles:      articles,
		narratives:    narratives,
		articleByID:   make(map[string]*models.Article, len(articles)),
		narrativeByID: make(map[string]*models.Narrative, len(narratives)),
	}
	for i := range articles {
		s.articleByID[articles[i].ID] = &articles[i]
	}
	for i := range narratives {
		s.narrativeByID[narratives[i].ID] = &narratives[i]
	}
	return s
}

// ArticleQuery filters ListArticles. Zero values disable each filter.
type ArticleQuery struct {
	Limit       int     // clamped to [1, MaxLimit]; non-positive means DefaultLimit
	Offset      int     // negative treated as 0
	MinOverall  float64 // drop articles with overall bias below this
	NarrativeID string  // exact match when non-empty
}

// ListArticles returns summaries sorted by publication date, newest first,
// sliced to the query's window. An out-of-range window yields an empty slice.
func (s *Store) ListArticles(q ArticleQuery) []models.ArticleSummary {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	var matched []models.Article
	for _, a := range s.articles {
		if a.BiasScores.Overall < q.MinOverall {
			continue
		}
		if q.NarrativeID != "" && a.NarrativeID != q.NarrativeID {
			continue
		}
		matched = append(matched, a)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PublishedDate.After(matched[j].PublishedDate)
	})

	if offset >= len(matched) {
		return []models.ArticleSummary{}
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	out := make([]models.ArticleSummary, 0, end-offset)
	for _, a := range matched[offset:end] {
		out = append(out, a.Summary())
	}
	return out
}

// Article returns the full record for id, or ErrNotFound.
func (s *Store) Article(id string) (models.Article, error) {
	a, ok := s.articleByID[id]
	if !ok {
		return models.Article{}, ErrNotFound
	}
	return *a, nil
}

// Narratives returns summaries sorted by last update, newest first.
func (s *Store) Narratives() []models.NarrativeSummary {
	out := make([]models.NarrativeSummary, 0, len(s.narratives))
	for _, n := range s.narratives {
		out = append(out, n.Summary())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastUpdated.After(out[j].LastUpdated)
	})
	return out
}

// Narrative returns the full record for id, or ErrNotFound.
func (s *Store) Narrative(id string) (models.Narrative, error) {
	n, ok := s.narrativeByID[id]
	if !ok {
		return models.Narrative{}, ErrNotFound
	}
	return *n, nil
}

// Timeline returns the narrative's bias evolution, or ErrNotFound.
func (s *Store) Timeline(id string) ([]models.TimePoint, error) {
	n, ok := s.narrativeByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return n.BiasEvolution, nil
}

// NarrativeArticles returns member summaries sorted by publication date,
// newest first, or ErrNotFound.
func (s *Store) NarrativeArticles(id string) ([]models.ArticleSummary, error) {
	n, ok := s.narrativeByID[id]
	if !ok {
		return nil, ErrNotFound
	}

	members := make([]models.Article, 0, len(n.ArticleIDs))
	for _, aid := range n.ArticleIDs {
		if a, ok := s.articleByID[aid]; ok {
			members = append(members, *a)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].PublishedDate.After(members[j].PublishedDate)
	})

	out := make([]models.ArticleSummary, 0, len(members))
	for _, a := range members {
		out = append(out, a.Summary())
	}
	return out, nil
}

// Stats summarizes the whole dataset for the dashboard overview.
type Stats struct {
	TotalArticles      int               `json:"total_articles"`
	TotalNarratives    int               `json:"total_narratives"`
	AverageBiasScores  models.BiasScores `json:"average_bias_scores"`
	SourceDistribution map[string]int    `json:"source_distribution"`
	TimeRange          TimeRange         `json:"time_range"`
}

// TimeRange bounds the publication dates of the dataset.
type TimeRange struct {
	EarliestArticle time.Time `json:"earliest_article"`
	LatestArticle   time.Time `json:"latest_article"`
}

// Stats computes global score means, the per-source histogram and the
// publication time range. Returns ErrEmptyDataset over zero articles.
func (s *Store) Stats() (Stats, error) {
	if len(s.articles) == 0 {
		return Stats{}, ErrEmptyDataset
	}

	var sum models.BiasScores
	sources := make(map[string]int)
	earliest := s.articles[0].PublishedDate
	latest := s.articles[0].PublishedDate

	for _, a := range s.articles {
		sum.Overall += a.BiasScores.Overall
		sum.IdeologicalStance += a.BiasScores.IdeologicalStance
		sum.FactualGrounding += a.BiasScores.FactualGrounding
		sum.FramingChoices += a.BiasScores.FramingChoices
		sum.EmotionalTone += a.BiasScores.EmotionalTone
		sum.SourceTransparency += a.BiasScores.SourceTransparency

		sources[a.Source]++
		if a.PublishedDate.Before(earliest) {
			earliest = a.PublishedDate
		}
		if a.PublishedDate.After(latest) {
			latest = a.PublishedDate
		}
	}

	n := float64(len(s.articles))
	return Stats{
		TotalArticles:   len(s.articles),
		TotalNarratives: len(s.narratives),
		AverageBiasScores: models.BiasScores{
			Overall:            round1(sum.Overall / n),
			IdeologicalStance:  round1(sum.IdeologicalStance / n),
			FactualGrounding:   round1(sum.FactualGrounding / n),
			FramingChoices:     round1(sum.FramingChoices / n),
			EmotionalTone:      round1(sum.EmotionalTone / n),
			SourceTransparency: round1(sum.SourceTransparency / n),
		},
		SourceDistribution: sources,
		TimeRange:          TimeRange{EarliestArticle: earliest, LatestArticle: latest},
	}, nil
}

// Counts reports collection sizes for the health probe.
func (s *Store) Counts() (articles, narratives int) {
	return len(s.articles), len(s.narratives)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
