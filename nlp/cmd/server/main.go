package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oarkflow/rake/nlp/config"
	"github.com/oarkflow/rake/nlp/logging"
	"github.com/oarkflow/rake/nlp/server"
	"github.com/oarkflow/rake/nlp/stopwords"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	addr := flag.String("addr", "", "HTTP listen address (overrides server.address)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *addr); err != nil {
		slog.Error("server stopped", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Address = addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(log)

	idx, err := stopwords.LoadFile(cfg.Stopwords)
	if err != nil {
		return err
	}
	opts := server.Options{
		BodyLimit: cfg.Server.BodyLimit,
		CacheSize: cfg.Server.CacheSize,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
		AccessLog: os.Stdout,
		Logger:    log,
		Rake:      cfg.RakeOptions(),
	}
	if cfg.Server.WatchStopwords {
		opts.StopwordsFile = cfg.Stopwords
	}
	srv, err := server.New(idx, opts)
	if err != nil {
		return err
	}
	log.Info("stopwords loaded",
		slog.String("file", cfg.Stopwords),
		slog.Int("count", idx.Len()),
		slog.Bool("normalize", cfg.Rake.Normalize),
		slog.Int("workers", cfg.Rake.Workers))
	return srv.Run(ctx, cfg.Server.Address)
}
