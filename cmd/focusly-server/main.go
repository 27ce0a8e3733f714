package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/okan/focusly/internal/config"
	"github.com/okan/focusly/internal/server"
	"github.com/okan/focusly/internal/store"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			slog.Error("resolve db path", "err", err)
			os.Exit(1)
		}
	}

	s, err := store.New(dbPath)
	if err != nil {
		slog.Error("open database", "path", dbPath, "err", err)
		os.Exit(1)
	}
	defer s.Close()

	if err := s.DeleteExpiredAuthSessions(); err != nil {
		slog.Warn("prune expired sessions", "err", err)
	}

	slog.Info("starting focusly server", "addr", cfg.Addr, "db", dbPath)
	if err := server.New(s, cfg).Run(cfg.Addr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
