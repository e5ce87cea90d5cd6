// Package server exposes keyword extraction over HTTP.
package server

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oarkflow/xid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/oarkflow/rake/nlp/keyword"
	"github.com/oarkflow/rake/nlp/logging"
	"github.com/oarkflow/rake/nlp/stopwords"
)

type Options struct {
	BodyLimit int
	CacheSize int
	// RateLimit is requests per second; 0 disables rate limiting.
	RateLimit float64
	RateBurst int
	// StopwordsFile is watched for changes when set.
	StopwordsFile string
	// AccessLog receives one line per request; nil disables it.
	AccessLog io.Writer
	Logger    *slog.Logger
	Rake      []keyword.Option
}

// cached records the engine that produced scores. Entries from a replaced
// engine count as misses.
type cached struct {
	engine *keyword.Rake
	scores []keyword.Score
}

type Server struct {
	app     *fiber.App
	engine  atomic.Pointer[keyword.Rake]
	cache   *lru.Cache[string, cached]
	limiter *rate.Limiter
	metrics *metrics
	opts    Options
	log     *slog.Logger
}

func New(index *stopwords.Index, opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 1024
	}
	limit := rate.Limit(opts.RateLimit)
	if opts.RateLimit <= 0 {
		limit = rate.Inf
	}
	cache, err := lru.New[string, cached](opts.CacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "create cache")
	}
	s := &Server{
		cache:   cache,
		limiter: rate.NewLimiter(limit, max(opts.RateBurst, 1)),
		metrics: newMetrics(),
		opts:    opts,
		log:     opts.Logger,
	}
	if err := s.Swap(index); err != nil {
		return nil, err
	}
	s.app = s.routes()
	return s, nil
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Engine() *keyword.Rake {
	return s.engine.Load()
}

// Swap puts a new engine built from index in service and drops cached
// results computed with the previous one.
func (s *Server) Swap(index *stopwords.Index) error {
	opts := append([]keyword.Option{keyword.WithLogger(s.log)}, s.opts.Rake...)
	r, err := keyword.New(index, opts...)
	if err != nil {
		return errors.Wrap(err, "build engine")
	}
	if s.engine.Swap(r) != nil {
		s.metrics.reloads.Inc()
	}
	s.cache.Purge()
	s.metrics.stopwords.Set(float64(index.Len()))
	return nil
}

func (s *Server) routes() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "rake",
		BodyLimit:             s.opts.BodyLimit,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return xid.New().String()
		},
	}))
	if s.opts.AccessLog != nil {
		app.Use(logger.New(logger.Config{Output: s.opts.AccessLog}))
	}
	app.Use(s.countRequests)
	app.Use(compress.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
	app.Get("/stopwords", s.stopwordCount)

	app.Post("/keywords", s.rateLimit, s.keywords)
	app.Post("/corpus", s.rateLimit, s.corpus)
	return app
}

func (s *Server) countRequests(c *fiber.Ctx) error {
	err := c.Next()
	code := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	s.metrics.requests.WithLabelValues(c.Route().Path, strconv.Itoa(code)).Inc()
	return err
}

func (s *Server) rateLimit(c *fiber.Ctx) error {
	if !s.limiter.Allow() {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded"})
	}
	return c.Next()
}

// Run serves on addr until ctx is cancelled. When a stopword file is
// configured, changes to it are swapped in while serving.
func (s *Server) Run(ctx context.Context, addr string) error {
	if s.opts.StopwordsFile != "" {
		go func() {
			err := stopwords.Watch(ctx, s.opts.StopwordsFile, func(idx *stopwords.Index) {
				if err := s.Swap(idx); err != nil {
					s.log.Error("stopword swap failed", slog.String("err", err.Error()))
				}
			}, s.log)
			if err != nil {
				s.log.Error("stopword watcher stopped", slog.String("err", err.Error()))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", addr))
		errCh <- s.app.Listen(addr)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.app.ShutdownWithContext(shutdownCtx)
	}
}
