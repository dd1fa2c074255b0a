package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cineia/internal/client/client"
	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/client/state"
	"github.com/dmitrijs2005/cineia/internal/common"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

// AdminService exposes the two catalog-maintenance calls. Both require the
// signed-in user to be an admin.
type AdminService interface {
	SearchExternal(ctx context.Context, title string) (models.Movie, error)
	AddMovie(ctx context.Context, movie models.Movie) (int64, error)
	Stats(ctx context.Context) (models.StatsResponse, error)
}

type adminService struct {
	client client.Client
	state  *state.Store
	log    logging.Logger
}

func NewAdminService(c client.Client, st *state.Store, log logging.Logger) AdminService {
	return &adminService{client: c, state: st, log: log.With("component", "admin")}
}

func (s *adminService) authorize() error {
	u, ok := s.state.User()
	if !ok {
		return common.ErrUnauthenticated
	}
	if !u.IsAdmin {
		return common.ErrForbidden
	}
	return nil
}

func (s *adminService) SearchExternal(ctx context.Context, title string) (models.Movie, error) {
	if err := s.authorize(); err != nil {
		return models.Movie{}, err
	}
	req := models.SearchMovieRequest{Title: strings.TrimSpace(title)}
	if err := models.Validate(req); err != nil {
		return models.Movie{}, err
	}
	m, err := s.client.SearchExternal(ctx, req.Title)
	if err != nil {
		return models.Movie{}, fmt.Errorf("external search: %w", err)
	}
	return m, nil
}

func (s *adminService) AddMovie(ctx context.Context, movie models.Movie) (int64, error) {
	if err := s.authorize(); err != nil {
		return 0, err
	}
	if err := models.Validate(movie); err != nil {
		return 0, err
	}
	id, err := s.client.AddMovie(ctx, movie)
	if err != nil {
		return 0, fmt.Errorf("add movie: %w", err)
	}
	s.log.Info(ctx, "movie added", "movie_id", id, "title", movie.Title)
	return id, nil
}

func (s *adminService) Stats(ctx context.Context) (models.StatsResponse, error) {
	if err := s.authorize(); err != nil {
		return models.StatsResponse{}, err
	}
	st, err := s.client.Stats(ctx)
	if err != nil {
		return models.StatsResponse{}, fmt.Errorf("stats: %w", err)
	}
	return st, nil
}
