// Package app provides the core business service that implements
// the dependencies required by the HTTP API.
package app

import (
	"context"

	"github.com/glennib/case-poker/internal/domain/card"
	"github.com/glennib/case-poker/internal/domain/classify"
	"github.com/glennib/case-poker/internal/domain/deck"
	"github.com/glennib/case-poker/internal/domain/hand"
	"github.com/glennib/case-poker/pkg/logger"
	"github.com/glennib/case-poker/pkg/metrics"
)

// Service draws and analyzes five-card hands. It is stateless apart from the
// dealer's randomness source, so one Service serves concurrent requests
// without coordination.
type Service struct {
	dealer *deck.Dealer
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDealer sets the dealer used for random draws.
func WithDealer(d *deck.Dealer) Option {
	return func(s *Service) {
		if d != nil {
			s.dealer = d
		}
	}
}

// WithDealSeed seeds the dealer for reproducible draws. Zero keeps the
// default wall-clock seeding. Ignored when WithDealer is also given.
func WithDealSeed(seed int64) Option {
	return func(s *Service) {
		if seed != 0 {
			s.dealer = deck.NewDealer(deck.WithSeed(seed))
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}

	for _, opt := range opts {
		opt(s)
	}

	if s.dealer == nil {
		s.dealer = deck.NewDealer()
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}

	return s
}

// Draw deals a random five-card hand and classifies it.
func (s *Service) Draw(ctx context.Context) (hand.Hand, classify.Category) {
	h := s.dealer.Draw()
	category := classify.Classify(h)

	metrics.RecordDraw()
	metrics.RecordClassification(category.String())
	s.logger.Debug(ctx, "drew hand", logger.String("category", category.String()))

	return h, category
}

// Analyze parses a comma-separated list of card codes, builds a hand from
// them and classifies it. Parse and hand construction errors are returned to
// the caller untouched; the service never suppresses them.
func (s *Service) Analyze(ctx context.Context, codes string) (classify.Category, error) {
	cards, err := card.ParseList(codes)
	if err != nil {
		metrics.RecordRejectedCards("parse")
		return 0, err
	}

	h, err := hand.New(cards)
	if err != nil {
		metrics.RecordRejectedCards("hand")
		return 0, err
	}

	category := classify.Classify(h)
	metrics.RecordClassification(category.String())
	s.logger.Debug(ctx, "analyzed hand",
		logger.String("cards", codes),
		logger.String("category", category.String()))

	return category, nil
}
