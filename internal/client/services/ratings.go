package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/cineia/internal/client/client"
	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/client/state"
	"github.com/dmitrijs2005/cineia/internal/common"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

// RatingService keeps the signed-in user's ratings.
//
// Load never fails: on error the cache is emptied and the views render
// without badges. Submit validates locally, posts, then re-fetches the whole
// list rather than patching the cache.
type RatingService interface {
	Load(ctx context.Context, userID int64) []models.Rating
	Submit(ctx context.Context, userID, movieID int64, rating int) (int64, error)
	For(movieID int64) float64
	All() []models.Rating
}

type ratingService struct {
	client client.Client
	state  *state.Store
	log    logging.Logger

	mu    sync.RWMutex
	list  []models.Rating
	index models.RatingIndex
}

func NewRatingService(c client.Client, st *state.Store, log logging.Logger) RatingService {
	return &ratingService{client: c, state: st, log: log.With("component", "ratings"), index: models.RatingIndex{}}
}

func (s *ratingService) Load(ctx context.Context, userID int64) []models.Rating {
	list, err := s.client.ListRatings(ctx, userID)
	if err != nil {
		s.log.Warn(ctx, "ratings unavailable, continuing without them", "user_id", userID, "err", err)
		list = nil
	}
	s.replace(list)
	s.state.SetRatings(list)
	return append([]models.Rating(nil), list...)
}

func (s *ratingService) Submit(ctx context.Context, userID, movieID int64, rating int) (int64, error) {
	if rating < 1 || rating > 10 {
		return 0, common.ErrInvalidRating
	}
	req := models.RateRequest{UserID: userID, MovieID: movieID, Rating: rating}
	if err := models.Validate(req); err != nil {
		return 0, err
	}

	id, err := s.client.Rate(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("submit rating: %w", err)
	}
	s.log.Info(ctx, "rating saved", "movie_id", movieID, "rating", rating, "rating_id", id)

	s.Load(ctx, userID)
	return id, nil
}

func (s *ratingService) For(movieID int64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.For(movieID)
}

func (s *ratingService) All() []models.Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Rating(nil), s.list...)
}

func (s *ratingService) replace(list []models.Rating) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = list
	s.index = models.IndexRatings(list)
}
