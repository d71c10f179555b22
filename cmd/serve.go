package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/yushkumar524/BiasLabPrototype/internal/logger"
	"github.com/yushkumar524/BiasLabPrototype/internal/server"
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)

	db := buildDataset(cfg)
	articles, narratives := db.Counts()
	log.Info("dataset ready", "articles", articles, "narratives", narratives)

	addr := cfg.Addr()
	if flagAddr != "" {
		addr = flagAddr
	}

	srv := server.New(db, log, cfg.Server.CORSOrigins)
	log.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, srv.Routes()); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
