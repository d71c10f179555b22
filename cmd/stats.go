package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db := buildDataset(cfg)
		stats, err := db.Stats()
		if err != nil {
			return fmt.Errorf("computing stats: %w", err)
		}

		fmt.Printf("Articles: %d\n", stats.TotalArticles)
		fmt.Printf("Narratives: %d\n", stats.TotalNarratives)
		fmt.Printf("Time range: %s to %s\n",
			stats.TimeRange.EarliestArticle.Format("Jan 2 15:04"),
			stats.TimeRange.LatestArticle.Format("Jan 2 15:04"),
		)

		avg := stats.AverageBiasScores
		fmt.Println("Average bias:")
		fmt.Printf("  ideological %+.1f  factual %.1f  emotional %.1f\n",
			avg.IdeologicalStance, avg.FactualGrounding, avg.EmotionalTone)
		fmt.Printf("  framing %.1f  transparency %.1f  overall %.1f\n",
			avg.FramingChoices, avg.SourceTransparency, avg.Overall)

		sources := make([]string, 0, len(stats.SourceDistribution))
		for s := range stats.SourceDistribution {
			sources = append(sources, s)
		}
		sort.Strings(sources)
		fmt.Println("Sources:")
		for _, s := range sources {
			fmt.Printf("  %-24s %d\n", s, stats.SourceDistribution[s])
		}
		return nil
	},
}
