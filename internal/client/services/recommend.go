package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/dmitrijs2005/cineia/internal/client/client"
	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

const (
	// DefaultRecommendationTimeout bounds the wait for the AI answer.
	DefaultRecommendationTimeout = 15 * time.Second
	fallbackSize                 = 10
	fallbackMessage              = "Filmes em destaque"
)

var ErrNoRecommendations = errors.New("no movies available for recommendations")

// CatalogLoader is satisfied by *catalog.Cache.
type CatalogLoader interface {
	Load(ctx context.Context) ([]models.Movie, error)
}

// RecommendationService races the AI recommendations against a timeout and
// falls back to the head of the catalog.
type RecommendationService interface {
	Load(ctx context.Context, userID int64) (models.RecommendationList, error)
}

type recommendationService struct {
	client  client.Client
	catalog CatalogLoader
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker[models.RecommendationList]
	log     logging.Logger
}

// BreakerSettings configure the breaker around the AI call.
type BreakerSettings struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

func NewRecommendationService(c client.Client, cat CatalogLoader, timeout time.Duration, bs BreakerSettings, log logging.Logger) RecommendationService {
	if timeout <= 0 {
		timeout = DefaultRecommendationTimeout
	}
	if bs.ConsecutiveFailures == 0 {
		bs.ConsecutiveFailures = 3
	}
	if bs.OpenTimeout <= 0 {
		bs.OpenTimeout = time.Minute
	}
	l := log.With("component", "recommendations")

	cb := gobreaker.NewCircuitBreaker[models.RecommendationList](gobreaker.Settings{
		Name:        "recommendations-ai",
		MaxRequests: 1,
		Timeout:     bs.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= bs.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Info(context.Background(), "breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &recommendationService{client: c, catalog: cat, timeout: timeout, cb: cb, log: l}
}

type recommendationResult struct {
	list models.RecommendationList
	err  error
}

func (s *recommendationService) Load(ctx context.Context, userID int64) (models.RecommendationList, error) {
	// The AI call keeps running after a timeout; its late answer is dropped.
	done := make(chan recommendationResult, 1)
	callCtx := context.WithoutCancel(ctx)
	go func() {
		list, err := s.cb.Execute(func() (models.RecommendationList, error) {
			return s.client.Recommendations(callCtx, userID)
		})
		done <- recommendationResult{list: list, err: err}
	}()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case res := <-done:
		if res.err == nil {
			return res.list, nil
		}
		if errors.Is(res.err, gobreaker.ErrOpenState) || errors.Is(res.err, gobreaker.ErrTooManyRequests) {
			s.log.Warn(ctx, "ai recommendations skipped, breaker open")
		} else {
			s.log.Warn(ctx, "ai recommendations failed", "user_id", userID, "err", res.err)
		}
	case <-timer.C:
		s.log.Warn(ctx, "ai recommendations timed out", "user_id", userID, "timeout", s.timeout)
	case <-ctx.Done():
		return models.RecommendationList{}, ctx.Err()
	}

	return s.fallback(ctx)
}

func (s *recommendationService) fallback(ctx context.Context) (models.RecommendationList, error) {
	movies, err := s.catalog.Load(ctx)
	if err != nil {
		return models.RecommendationList{}, fmt.Errorf("recommendations fallback: %w", err)
	}
	if len(movies) == 0 {
		return models.RecommendationList{}, ErrNoRecommendations
	}
	if len(movies) > fallbackSize {
		movies = movies[:fallbackSize]
	}
	items := make([]models.Recommendation, len(movies))
	for i, m := range movies {
		items[i] = models.RecommendationFromMovie(m)
	}
	return models.RecommendationList{
		Kind:     models.RecommendationGeneral,
		Message:  fallbackMessage,
		Items:    items,
		Fallback: true,
	}, nil
}
