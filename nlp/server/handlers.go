package server

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/rake/nlp/export"
	"github.com/oarkflow/rake/nlp/keyword"
)

type keywordsRequest struct {
	Text string `json:"text"`
	TopN int    `json:"top_n"`
}

type keywordsResponse struct {
	Keywords []keyword.Score `json:"keywords"`
}

type corpusRequest struct {
	Documents []string `json:"documents"`
	TopN      int      `json:"top_n"`
}

type corpusResponse struct {
	Documents int             `json:"documents"`
	Keywords  []keyword.Score `json:"keywords"`
}

func (s *Server) keywords(c *fiber.Ctx) error {
	var req keywordsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	engine := s.Engine()
	entry, ok := s.cache.Get(req.Text)
	if ok && entry.engine == engine {
		s.metrics.cache.WithLabelValues("hit").Inc()
	} else {
		s.metrics.cache.WithLabelValues("miss").Inc()
		start := time.Now()
		entry = cached{engine: engine, scores: engine.Extract(req.Text)}
		s.metrics.duration.WithLabelValues("keywords").Observe(time.Since(start).Seconds())
		s.cache.Add(req.Text, entry)
	}
	return c.JSON(keywordsResponse{Keywords: export.TopN(entry.scores, req.TopN)})
}

func (s *Server) corpus(c *fiber.Ctx) error {
	var req corpusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	start := time.Now()
	scores, err := s.Engine().KeywordsContext(c.UserContext(), req.Documents)
	if err != nil {
		s.log.Error("corpus scoring failed",
			slog.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
			slog.String("err", err.Error()))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	s.metrics.duration.WithLabelValues("corpus").Observe(time.Since(start).Seconds())
	return c.JSON(corpusResponse{
		Documents: len(req.Documents),
		Keywords:  export.TopN(scores, req.TopN),
	})
}

func (s *Server) stopwordCount(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"count": s.Engine().Index().Len()})
}
