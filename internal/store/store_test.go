package store

import (
	"errors"
	"testing"
	"time"

	"github.com/yushkumar524/BiasLabPrototype/internal/bias"
	"github.com/yushkumar524/BiasLabPrototype/internal/generate"
	"github.com/yushkumar524/BiasLabPrototype/internal/models"
	"github.com/yushkumar524/BiasLabPrototype/internal/narrative"
)

var t0 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func fixtureArticle(id, narrativeID, source string, published time.Time, overall float64) models.Article {
	return models.Article{
		ID:            id,
		Title:         "title " + id,
		Source:        source,
		NarrativeID:   narrativeID,
		PublishedDate: published,
		BiasScores:    models.BiasScores{Overall: overall, FactualGrounding: 80},
	}
}

func fixtureStore() *Store {
	articles := []models.Article{
		fixtureArticle("a1", "n1", "Reuters", t0, 10),
		fixtureArticle("a2", "n1", "CNN", t0.Add(2*time.Hour), 40),
		fixtureArticle("a3", "n2", "CNN", t0.Add(4*time.Hour), 25),
		fixtureArticle("a4", "n2", "Fox News", t0.Add(6*time.Hour), 55),
	}
	narratives := []models.Narrative{
		{ID: "n1", Title: "First", ArticleIDs: []string{"a1", "a2"}, ArticleCount: 2, LastUpdated: t0.Add(2 * time.Hour),
			BiasEvolution: []models.TimePoint{{Timestamp: t0, ArticleCount: 1}, {Timestamp: t0.Add(2 * time.Hour), ArticleCount: 2}}},
		{ID: "n2", Title: "Second", ArticleIDs: []string{"a3", "a4"}, ArticleCount: 2, LastUpdated: t0.Add(6 * time.Hour),
			BiasEvolution: []models.TimePoint{{Timestamp: t0.Add(4 * time.Hour), ArticleCount: 1}, {Timestamp: t0.Add(6 * time.Hour), ArticleCount: 2}}},
	}
	return New(articles, narratives)
}

func TestListArticlesSortedNewestFirst(t *testing.T) {
	s := fixtureStore()
	got := s.ListArticles(ArticleQuery{})

	if len(got) != 4 {
		t.Fatalf("expected 4 articles, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].PublishedDate.After(got[i-1].PublishedDate) {
			t.Errorf("articles not sorted newest first at index %d", i)
		}
	}
	if got[0].ID != "a4" {
		t.Errorf("newest article = %s, want a4", got[0].ID)
	}
}

func TestListArticlesNarrativeFilter(t *testing.T) {
	s := fixtureStore()
	got := s.ListArticles(ArticleQuery{NarrativeID: "n1"})

	if len(got) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(got))
	}
	for _, a := range got {
		if a.NarrativeID != "n1" {
			t.Errorf("article %s has narrative %q, want n1", a.ID, a.NarrativeID)
		}
	}
}

func TestListArticlesMinOverall(t *testing.T) {
	s := fixtureStore()
	got := s.ListArticles(ArticleQuery{MinOverall: 30})

	if len(got) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(got))
	}
	for _, a := range got {
		if a.BiasScores.Overall < 30 {
			t.Errorf("article %s overall %.1f below threshold", a.ID, a.BiasScores.Overall)
		}
	}
}

func TestListArticlesFiltersCombine(t *testing.T) {
	s := fixtureStore()
	got := s.ListArticles(ArticleQuery{MinOverall: 30, NarrativeID: "n2"})

	if len(got) != 1 || got[0].ID != "a4" {
		t.Fatalf("expected only a4, got %v", got)
	}
}

func TestListArticlesPagination(t *testing.T) {
	s := fixtureStore()

	page := s.ListArticles(ArticleQuery{Limit: 2, Offset: 1})
	if len(page) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(page))
	}
	if page[0].ID != "a3" || page[1].ID != "a2" {
		t.Errorf("page = [%s, %s], want [a3, a2]", page[0].ID, page[1].ID)
	}

	empty := s.ListArticles(ArticleQuery{Offset: 100})
	if len(empty) != 0 {
		t.Errorf("offset past end should yield empty slice, got %d items", len(empty))
	}
	if empty == nil {
		t.Error("out-of-range window should be an empty slice, not nil")
	}
}

func TestListArticlesLimitClamped(t *testing.T) {
	s := fixtureStore()

	if got := s.ListArticles(ArticleQuery{Limit: 0}); len(got) != 4 {
		t.Errorf("zero limit should fall back to default, got %d items", len(got))
	}
	if got := s.ListArticles(ArticleQuery{Limit: 5000}); len(got) != 4 {
		t.Errorf("oversized limit should still return the dataset, got %d items", len(got))
	}
	if got := s.ListArticles(ArticleQuery{Offset: -3, Limit: 1}); len(got) != 1 || got[0].ID != "a4" {
		t.Errorf("negative offset should behave like zero, got %v", got)
	}
}

func TestArticleLookup(t *testing.T) {
	s := fixtureStore()

	a, err := s.Article("a2")
	if err != nil {
		t.Fatalf("Article(a2): %v", err)
	}
	if a.Source != "CNN" {
		t.Errorf("source = %q", a.Source)
	}

	_, err = s.Article("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNarrativesSortedByLastUpdated(t *testing.T) {
	s := fixtureStore()
	got := s.Narratives()

	if len(got) != 2 {
		t.Fatalf("expected 2 narratives, got %d", len(got))
	}
	if got[0].ID != "n2" || got[1].ID != "n1" {
		t.Errorf("order = [%s, %s], want [n2, n1]", got[0].ID, got[1].ID)
	}
}

func TestNarrativeLookupNotFound(t *testing.T) {
	s := fixtureStore()

	if _, err := s.Narrative("nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Narrative: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Timeline("nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Timeline: expected ErrNotFound, got %v", err)
	}
	if _, err := s.NarrativeArticles("nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("NarrativeArticles: expected ErrNotFound, got %v", err)
	}
}

func TestNarrativeArticlesSorted(t *testing.T) {
	s := fixtureStore()
	got, err := s.NarrativeArticles("n1")
	if err != nil {
		t.Fatalf("NarrativeArticles: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a2" || got[1].ID != "a1" {
		t.Errorf("members = %v, want [a2, a1]", got)
	}
}

func TestTimeline(t *testing.T) {
	s := fixtureStore()
	got, err := s.Timeline("n2")
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if len(got) != 2 || got[0].ArticleCount != 1 || got[1].ArticleCount != 2 {
		t.Errorf("timeline = %+v", got)
	}
}

func TestStats(t *testing.T) {
	s := fixtureStore()
	st, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if st.TotalArticles != 4 || st.TotalNarratives != 2 {
		t.Errorf("totals = %d/%d", st.TotalArticles, st.TotalNarratives)
	}
	// (10 + 40 + 25 + 55) / 4
	if st.AverageBiasScores.Overall != 32.5 {
		t.Errorf("avg overall = %.1f, want 32.5", st.AverageBiasScores.Overall)
	}
	if st.SourceDistribution["CNN"] != 2 || st.SourceDistribution["Reuters"] != 1 {
		t.Errorf("source distribution = %v", st.SourceDistribution)
	}
	if !st.TimeRange.EarliestArticle.Equal(t0) || !st.TimeRange.LatestArticle.Equal(t0.Add(6*time.Hour)) {
		t.Errorf("time range = %+v", st.TimeRange)
	}
}

func TestStatsEmptyDataset(t *testing.T) {
	s := New(nil, nil)
	if _, err := s.Stats(); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}

// Round-trip: scores seen through the narrative path must be bit-identical to
// the direct article lookup.
func TestScoreRoundTripThroughNarrative(t *testing.T) {
	articles := generate.Articles(generate.Options{Now: t0, Rand: bias.NewRand(5)})
	narratives := narrative.Build(articles, narrative.Metadata)
	s := New(articles, narratives)

	for _, n := range s.Narratives() {
		members, err := s.NarrativeArticles(n.ID)
		if err != nil {
			t.Fatalf("NarrativeArticles(%s): %v", n.ID, err)
		}
		for _, m := range members {
			direct, err := s.Article(m.ID)
			if err != nil {
				t.Fatalf("Article(%s): %v", m.ID, err)
			}
			if direct.BiasScores != m.BiasScores {
				t.Errorf("article %s: scores differ between lookup paths", m.ID)
			}
		}
	}
}
