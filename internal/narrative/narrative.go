// Package narrative clusters generated articles into story-level aggregates:
// averaged scores, publication bounds and a bias-evolution timeline.
package narrative

import (
	"math"
	"sort"

	"github.com/yushkumar524/BiasLabPrototype/internal/models"
)

// Info is the curated metadata for one narrative cluster.
type Info struct {
	ID              string
	Title           string
	Description     string
	DominantFraming string
}

// Metadata is the fixed narrative table, in presentation order. IDs must match
// the generator's templates; ids with no member articles are skipped.
var Metadata = []Info{
	{
		ID:              "climate-policy",
		Title:           "Climate Policy Court Ruling",
		Description:     "Federal court strikes down key climate regulations, sparking debate over environmental policy",
		DominantFraming: "Legal challenge to environmental regulations",
	},
	{
		ID:              "economic-recovery",
		Title:           "Economic Recovery Indicators",
		Description:     "Mixed signals in employment data fuel debate over economic health and policy effectiveness",
		DominantFraming: "Employment growth vs. underlying economic concerns",
	},
	{
		ID:              "tech-regulation",
		Title:           "Big Tech Regulatory Crackdown",
		Description:     "Federal regulators announce new investigations into major technology companies",
		DominantFraming: "Government regulation vs. tech industry innovation",
	},
}

// Build groups articles by narrative id and derives one Narrative per metadata
// entry that has at least one member. Metadata order is preserved.
func Build(articles []models.Article, meta []Info) []models.Narrative {
	byNarrative := make(map[string][]models.Article)
	for _, a := range articles {
		if a.NarrativeID == "" {
			continue
		}
		byNarrative[a.NarrativeID] = append(byNarrative[a.NarrativeID], a)
	}

	var narratives []models.Narrative
	for _, info := range meta {
		members := byNarrative[info.ID]
		if len(members) == 0 {
			continue
		}
		narratives = append(narratives, build(info, members))
	}
	return narratives
}

func build(info Info, members []models.Article) models.Narrative {
	ids := make([]string, len(members))
	for i, a := range members {
		ids[i] = a.ID
	}

	byDate := make([]models.Article, len(members))
	copy(byDate, members)
	sort.SliceStable(byDate, func(i, j int) bool {
		return byDate[i].PublishedDate.Before(byDate[j].PublishedDate)
	})

	evolution := make([]models.TimePoint, len(byDate))
	for i, a := range byDate {
		evolution[i] = models.TimePoint{
			Timestamp:    a.PublishedDate,
			BiasScores:   a.BiasScores,
			ArticleCount: i + 1,
		}
	}

	return models.Narrative{
		ID:              info.ID,
		Title:           info.Title,
		Description:     info.Description,
		ArticleIDs:      ids,
		DominantFraming: info.DominantFraming,
		ArticleCount:    len(members),
		AvgBiasScores:   averageScores(members),
		CreatedDate:     byDate[0].PublishedDate,
		LastUpdated:     byDate[len(byDate)-1].PublishedDate,
		BiasEvolution:   evolution,
	}
}

// averageScores takes the unweighted mean of each dimension independently.
// Overall is averaged directly from the members' composite values rather than
// recomputed from the averaged dimensions, so it can drift slightly from the
// formula applied to the averages.
func averageScores(members []models.Article) models.BiasScores {
	var sum models.BiasScores
	for _, a := range members {
		sum.Overall += a.BiasScores.Overall
		sum.IdeologicalStance += a.BiasScores.IdeologicalStance
		sum.FactualGrounding += a.BiasScores.FactualGrounding
		sum.FramingChoices += a.BiasScores.FramingChoices
		sum.EmotionalTone += a.BiasScores.EmotionalTone
		sum.SourceTransparency += a.BiasScores.SourceTransparency
	}
	n := float64(len(members))
	return models.BiasScores{
		Overall:            round1(sum.Overall / n),
		IdeologicalStance:  round1(sum.IdeologicalStance / n),
		FactualGrounding:   round1(sum.FactualGrounding / n),
		FramingChoices:     round1(sum.FramingChoices / n),
		EmotionalTone:      round1(sum.EmotionalTone / n),
		SourceTransparency: round1(sum.SourceTransparency / n),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
