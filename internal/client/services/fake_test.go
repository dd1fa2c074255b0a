package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/cineia/internal/client/client"
	"github.com/dmitrijs2005/cineia/internal/client/models"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	mu sync.Mutex

	HealthErr error

	LoginUser models.User
	LoginErr  error
	LastLogin models.LoginRequest

	RegisterID   int64
	RegisterErr  error
	LastRegister *models.RegisterRequest

	GetUserRet models.User
	GetUserErr error
	GetUserIDs []int64

	Movies    []models.Movie
	MoviesErr error
	Movie     models.Movie
	MovieErr  error

	Ratings      []models.Rating
	RatingsErr   error
	RatingsCalls int

	Count    int
	CountErr error

	Recent      []models.Rating
	RecentCount int
	RecentErr   error

	RateID   int64
	RateErr  error
	RateReqs []models.RateRequest

	Recs      models.RecommendationList
	RecsErr   error
	RecsBlock chan struct{}
	RecsCalls int

	External    models.Movie
	ExternalErr error
	AddedID     int64
	AddErr      error
	Added       []models.Movie

	StatsRet models.StatsResponse
	StatsErr error
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Health(context.Context) (models.Health, error) {
	return models.Health{Status: "online"}, f.HealthErr
}

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (models.User, error) {
	f.LastLogin = req
	return f.LoginUser, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (int64, error) {
	f.LastRegister = &req
	return f.RegisterID, f.RegisterErr
}

func (f *fakeClient) GetUser(_ context.Context, id int64) (models.User, error) {
	f.GetUserIDs = append(f.GetUserIDs, id)
	return f.GetUserRet, f.GetUserErr
}

func (f *fakeClient) ListMovies(context.Context) ([]models.Movie, error) {
	return f.Movies, f.MoviesErr
}

func (f *fakeClient) GetMovie(context.Context, int64) (models.Movie, error) {
	return f.Movie, f.MovieErr
}

func (f *fakeClient) ListRatings(context.Context, int64) ([]models.Rating, error) {
	f.RatingsCalls++
	return f.Ratings, f.RatingsErr
}

func (f *fakeClient) CountRatings(context.Context, int64) (int, error) {
	return f.Count, f.CountErr
}

func (f *fakeClient) RecentRatings(context.Context, int64) ([]models.Rating, int, error) {
	return f.Recent, f.RecentCount, f.RecentErr
}

func (f *fakeClient) Rate(_ context.Context, req models.RateRequest) (int64, error) {
	f.RateReqs = append(f.RateReqs, req)
	return f.RateID, f.RateErr
}

func (f *fakeClient) Recommendations(ctx context.Context, _ int64) (models.RecommendationList, error) {
	f.mu.Lock()
	f.RecsCalls++
	block := f.RecsBlock
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.Recs, f.RecsErr
}

func (f *fakeClient) SearchExternal(context.Context, string) (models.Movie, error) {
	return f.External, f.ExternalErr
}

func (f *fakeClient) AddMovie(_ context.Context, m models.Movie) (int64, error) {
	f.Added = append(f.Added, m)
	return f.AddedID, f.AddErr
}

func (f *fakeClient) Stats(context.Context) (models.StatsResponse, error) {
	return f.StatsRet, f.StatsErr
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

func insertMeta(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO metadata(key,value) VALUES(?,?)`, k, v)
	require.NoError(t, err)
}
