package cmd

import (
	"fmt"

	"github.com/yushkumar524/BiasLabPrototype/internal/bias"
	"github.com/yushkumar524/BiasLabPrototype/internal/config"
	"github.com/yushkumar524/BiasLabPrototype/internal/generate"
	"github.com/yushkumar524/BiasLabPrototype/internal/narrative"
	"github.com/yushkumar524/BiasLabPrototype/internal/store"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// buildDataset generates the article corpus and groups it into
// narratives. The whole dataset lives in memory for the lifetime of
// the process.
func buildDataset(cfg *config.Config) *store.Store {
	seed := cfg.Dataset.Seed
	if flagSeed != 0 {
		seed = flagSeed
	}

	articles := generate.Articles(generate.Options{
		Lookback: cfg.LookbackDuration(),
		Rand:     bias.NewRand(seed),
	})
	narratives := narrative.Build(articles, narrative.Metadata)
	return store.New(articles, narratives)
}
