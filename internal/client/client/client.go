package client

import (
	"context"

	"github.com/dmitrijs2005/cineia/internal/client/models"
)

// Client is the CineIA backend API as seen by the client services.
type Client interface {
	Health(ctx context.Context) (models.Health, error)

	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (int64, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)

	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)

	ListRatings(ctx context.Context, userID int64) ([]models.Rating, error)
	CountRatings(ctx context.Context, userID int64) (int, error)
	RecentRatings(ctx context.Context, userID int64) ([]models.Rating, int, error)
	Rate(ctx context.Context, req models.RateRequest) (int64, error)

	Recommendations(ctx context.Context, userID int64) (models.RecommendationList, error)

	SearchExternal(ctx context.Context, title string) (models.Movie, error)
	AddMovie(ctx context.Context, movie models.Movie) (int64, error)
	Stats(ctx context.Context) (models.StatsResponse, error)
}
