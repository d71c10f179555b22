package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/yushkumar524/BiasLabPrototype/internal/bias"
	"github.com/yushkumar524/BiasLabPrototype/internal/feed"
)

var (
	flagFeedURL   string
	flagFeedLimit int
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score headlines from a live RSS feed",
	Long: `Fetch an RSS or Atom feed and run the bias scorer and phrase
highlighter over its items. This is a demo of the analysis pipeline on
real headlines; outlets without a known profile get neutral baselines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		previews, err := feed.Score(ctx, flagFeedURL, flagFeedLimit, bias.NewRand(flagSeed))
		if err != nil {
			return err
		}

		for _, p := range previews {
			fmt.Println(feed.Truncate(p.Title, 80))
			s := p.Scores
			fmt.Printf("  ideological %+.1f  factual %.1f  emotional %.1f  framing %.1f  transparency %.1f  overall %.1f\n",
				s.IdeologicalStance, s.FactualGrounding, s.EmotionalTone,
				s.FramingChoices, s.SourceTransparency, s.Overall)
			for _, h := range p.Highlights {
				fmt.Printf("  flagged: %q (%s, %.0f%%)\n", h.Text, h.BiasType, h.Confidence*100)
			}
			fmt.Printf("  %s\n\n", p.Link)
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringVar(&flagFeedURL, "feed", "", "feed URL to fetch")
	scoreCmd.Flags().IntVar(&flagFeedLimit, "limit", 5, "max items to score")
	scoreCmd.Flags().Int64Var(&flagSeed, "seed", 0, "scoring seed, 0 means time-based")
	scoreCmd.MarkFlagRequired("feed")
}
