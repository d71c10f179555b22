// Package models defines the data records exchanged between the dataset core
// and its collaborators (HTTP transport, TUI, tooling). All records are
// immutable after generation.
package models

import "time"

// BiasScores holds the five bias dimensions plus the composite overall score.
// Overall is 0-100 (higher = more biased). IdeologicalStance runs -100 (left)
// to 100 (right); every other dimension is 0-100.
type BiasScores struct {
	Overall            float64 `json:"overall"`
	IdeologicalStance  float64 `json:"ideological_stance"`
	FactualGrounding   float64 `json:"factual_grounding"`
	FramingChoices     float64 `json:"framing_choices"`
	EmotionalTone      float64 `json:"emotional_tone"`
	SourceTransparency float64 `json:"source_transparency"`
}

// HighlightedPhrase marks a biased phrase inside an article body. StartPos and
// EndPos are byte offsets into the content, start-inclusive, end-exclusive.
type HighlightedPhrase struct {
	Text       string  `json:"text"`
	StartPos   int     `json:"start_pos"`
	EndPos     int     `json:"end_pos"`
	BiasType   string  `json:"bias_type"`
	Confidence float64 `json:"confidence"`
	Color      string  `json:"color"`
}

// Article is a single scored news article.
type Article struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Content            string              `json:"content"`
	Source             string              `json:"source"`
	Author             string              `json:"author,omitempty"`
	PublishedDate      time.Time           `json:"published_date"`
	URL                string              `json:"url"`
	BiasScores         BiasScores          `json:"bias_scores"`
	HighlightedPhrases []HighlightedPhrase `json:"highlighted_phrases"`
	NarrativeID        string              `json:"narrative_id,omitempty"`
}

// ArticleSummary is the lightweight projection used in list responses.
type ArticleSummary struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Source        string     `json:"source"`
	PublishedDate time.Time  `json:"published_date"`
	BiasScores    BiasScores `json:"bias_scores"`
	NarrativeID   string     `json:"narrative_id,omitempty"`
}

// Summary projects the article into its list form.
func (a Article) Summary() ArticleSummary {
	return ArticleSummary{
		ID:            a.ID,
		Title:         a.Title,
		Source:        a.Source,
		PublishedDate: a.PublishedDate,
		BiasScores:    a.BiasScores,
		NarrativeID:   a.NarrativeID,
	}
}

// TimePoint is one step in a narrative's bias evolution: the scores of a
// single member article, where ArticleCount is that article's 1-based rank
// when members are ordered by publication time.
type TimePoint struct {
	Timestamp    time.Time  `json:"timestamp"`
	BiasScores   BiasScores `json:"bias_scores"`
	ArticleCount int        `json:"article_count"`
}

// Narrative is a cluster of articles from different outlets covering the same
// underlying story.
type Narrative struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	ArticleIDs      []string    `json:"article_ids"`
	DominantFraming string      `json:"dominant_framing"`
	ArticleCount    int         `json:"article_count"`
	AvgBiasScores   BiasScores  `json:"avg_bias_scores"`
	CreatedDate     time.Time   `json:"created_date"`
	LastUpdated     time.Time   `json:"last_updated"`
	BiasEvolution   []TimePoint `json:"bias_evolution"`
}

// NarrativeSummary is the lightweight projection used in list responses.
type NarrativeSummary struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	ArticleCount  int        `json:"article_count"`
	AvgBiasScores BiasScores `json:"avg_bias_scores"`
	LastUpdated   time.Time  `json:"last_updated"`
}

// Summary projects the narrative into its list form.
func (n Narrative) Summary() NarrativeSummary {
	return NarrativeSummary{
		ID:            n.ID,
		Title:         n.Title,
		Description:   n.Description,
		ArticleCount:  n.ArticleCount,
		AvgBiasScores: n.AvgBiasScores,
		LastUpdated:   n.LastUpdated,
	}
}
