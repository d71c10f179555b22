package narrative

import (
	"testing"
	"time"

	"github.com/yushkumar524/BiasLabPrototype/internal/models"
)

var t0 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func member(id, narrativeID string, published time.Time, scores models.BiasScores) models.Article {
	return models.Article{
		ID:            id,
		Title:         "title " + id,
		NarrativeID:   narrativeID,
		PublishedDate: published,
		BiasScores:    scores,
	}
}

func testMeta() []Info {
	return []Info{
		{ID: "story-a", Title: "Story A", Description: "first story", DominantFraming: "framing A"},
		{ID: "story-b", Title: "Story B", Description: "second story", DominantFraming: "framing B"},
	}
}

func TestBuildAverages(t *testing.T) {
	articles := []models.Article{
		member("a1", "story-a", t0, models.BiasScores{
			Overall: 20, IdeologicalStance: -10, FactualGrounding: 80,
			FramingChoices: 30, EmotionalTone: 25, SourceTransparency: 70,
		}),
		member("a2", "story-a", t0.Add(time.Hour), models.BiasScores{
			Overall: 31, IdeologicalStance: 15, FactualGrounding: 65,
			FramingChoices: 45, EmotionalTone: 40, SourceTransparency: 55,
		}),
	}

	narratives := Build(articles, testMeta())
	if len(narratives) != 1 {
		t.Fatalf("expected 1 narrative, got %d", len(narratives))
	}

	n := narratives[0]
	want := models.BiasScores{
		Overall: 25.5, IdeologicalStance: 2.5, FactualGrounding: 72.5,
		FramingChoices: 37.5, EmotionalTone: 32.5, SourceTransparency: 62.5,
	}
	if n.AvgBiasScores != want {
		t.Errorf("avg scores = %+v, want %+v", n.AvgBiasScores, want)
	}
	if n.ArticleCount != 2 || len(n.ArticleIDs) != 2 {
		t.Errorf("article count = %d, ids = %v", n.ArticleCount, n.ArticleIDs)
	}
}

func TestBuildTimelineOrderIndependentOfInput(t *testing.T) {
	s := models.BiasScores{Overall: 10}
	t1, t2, t3 := t0, t0.Add(8*time.Hour), t0.Add(16*time.Hour)

	// Deliberately shuffled insertion order.
	articles := []models.Article{
		member("late", "story-a", t3, s),
		member("early", "story-a", t1, s),
		member("mid", "story-a", t2, s),
	}

	narratives := Build(articles, testMeta())
	n := narratives[0]

	if len(n.BiasEvolution) != n.ArticleCount {
		t.Fatalf("timeline length %d != article count %d", len(n.BiasEvolution), n.ArticleCount)
	}
	wantTimes := []time.Time{t1, t2, t3}
	for i, tp := range n.BiasEvolution {
		if !tp.Timestamp.Equal(wantTimes[i]) {
			t.Errorf("point %d timestamp %v, want %v", i, tp.Timestamp, wantTimes[i])
		}
		if tp.ArticleCount != i+1 {
			t.Errorf("point %d rank = %d, want %d", i, tp.ArticleCount, i+1)
		}
	}
	if !n.CreatedDate.Equal(t1) || !n.LastUpdated.Equal(t3) {
		t.Errorf("created %v / updated %v, want %v / %v", n.CreatedDate, n.LastUpdated, t1, t3)
	}
}

func TestBuildSingleArticleNarrative(t *testing.T) {
	articles := []models.Article{
		member("only", "story-b", t0, models.BiasScores{Overall: 42}),
	}

	narratives := Build(articles, testMeta())
	if len(narratives) != 1 {
		t.Fatalf("expected 1 narrative, got %d", len(narratives))
	}
	n := narratives[0]
	if n.ID != "story-b" {
		t.Errorf("id = %q", n.ID)
	}
	if len(n.BiasEvolution) != 1 || n.BiasEvolution[0].ArticleCount != 1 {
		t.Errorf("single-member timeline = %+v", n.BiasEvolution)
	}
	if !n.CreatedDate.Equal(n.LastUpdated) {
		t.Error("single-member narrative should have equal created and updated dates")
	}
}

func TestBuildSkipsEmptyNarratives(t *testing.T) {
	articles := []models.Article{
		member("a1", "story-a", t0, models.BiasScores{}),
	}

	narratives := Build(articles, testMeta())
	for _, n := range narratives {
		if n.ID == "story-b" {
			t.Error("story-b has no members and should be omitted")
		}
	}
	if len(narratives) != 1 {
		t.Errorf("expected 1 narrative, got %d", len(narratives))
	}
}

func TestBuildPreservesMetadataOrder(t *testing.T) {
	articles := []models.Article{
		member("b1", "story-b", t0, models.BiasScores{}),
		member("a1", "story-a", t0, models.BiasScores{}),
	}

	narratives := Build(articles, testMeta())
	if len(narratives) != 2 {
		t.Fatalf("expected 2 narratives, got %d", len(narratives))
	}
	if narratives[0].ID != "story-a" || narratives[1].ID != "story-b" {
		t.Errorf("order = [%s, %s], want metadata order", narratives[0].ID, narratives[1].ID)
	}
}

func TestMetadataMatchesKnownNarratives(t *testing.T) {
	want := map[string]bool{"climate-policy": true, "economic-recovery": true, "tech-regulation": true}
	if len(Metadata) != len(want) {
		t.Fatalf("expected %d metadata entries, got %d", len(want), len(Metadata))
	}
	for _, info := range Metadata {
		if !want[info.ID] {
			t.Errorf("unexpected narrative id %q", info.ID)
		}
		if info.Title == "" || info.Description == "" || info.DominantFraming == "" {
			t.Errorf("incomplete metadata for %q", info.ID)
		}
	}
}
