package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/common"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

type fakeCatalog struct {
	movies []models.Movie
	err    error
	calls  int
}

func (f *fakeCatalog) Load(context.Context) ([]models.Movie, error) {
	f.calls++
	return f.movies, f.err
}

func moviesN(n int) []models.Movie {
	out := make([]models.Movie, n)
	for i := range out {
		out[i] = models.Movie{ID: int64(i + 1), Title: fmt.Sprintf("Filme %d", i+1)}
	}
	return out
}

func TestRecommendations_Success(t *testing.T) {
	fc := &fakeClient{Recs: models.RecommendationList{Kind: models.RecommendationAI, Message: "Para você", Items: []models.Recommendation{{ID: 1, Title: "Alien"}}}}
	cat := &fakeCatalog{}
	svc := NewRecommendationService(fc, cat, time.Second, BreakerSettings{}, logging.Discard())

	list, err := svc.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.RecommendationAI, list.Kind)
	assert.False(t, list.Fallback)
	assert.Zero(t, cat.calls)
}

func TestRecommendations_EmptySuccessIsShownAsIs(t *testing.T) {
	fc := &fakeClient{Recs: models.RecommendationList{Kind: models.RecommendationAI}}
	cat := &fakeCatalog{movies: moviesN(3)}
	svc := NewRecommendationService(fc, cat, time.Second, BreakerSettings{}, logging.Discard())

	list, err := svc.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Zero(t, cat.calls)
}

func TestRecommendations_ErrorFallsBackToCatalogHead(t *testing.T) {
	fc := &fakeClient{RecsErr: common.ErrNetwork}
	cat := &fakeCatalog{movies: moviesN(14)}
	svc := NewRecommendationService(fc, cat, time.Second, BreakerSettings{}, logging.Discard())

	list, err := svc.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, list.Fallback)
	assert.Equal(t, models.RecommendationGeneral, list.Kind)
	assert.Equal(t, "Filmes em destaque", list.Message)
	require.Len(t, list.Items, 10)
	assert.Equal(t, "Filme 1", list.Items[0].Title)
	assert.Equal(t, "Filme 10", list.Items[9].Title)
}

func TestRecommendations_TimeoutFallsBack(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	fc := &fakeClient{RecsBlock: block, Recs: models.RecommendationList{Kind: models.RecommendationAI}}
	cat := &fakeCatalog{movies: moviesN(2)}
	svc := NewRecommendationService(fc, cat, 30*time.Millisecond, BreakerSettings{}, logging.Discard())

	start := time.Now()
	list, err := svc.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, list.Fallback)
	assert.Len(t, list.Items, 2)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRecommendations_FallbackEmptyCatalog(t *testing.T) {
	fc := &fakeClient{RecsErr: common.ErrNetwork}
	svc := NewRecommendationService(fc, &fakeCatalog{}, time.Second, BreakerSettings{}, logging.Discard())

	_, err := svc.Load(context.Background(), 1)
	require.ErrorIs(t, err, ErrNoRecommendations)
}

func TestRecommendations_FallbackCatalogError(t *testing.T) {
	fc := &fakeClient{RecsErr: common.ErrNetwork}
	cat := &fakeCatalog{err: fmt.Errorf("%w: %w", common.ErrFetch, common.ErrNetwork)}
	svc := NewRecommendationService(fc, cat, time.Second, BreakerSettings{}, logging.Discard())

	_, err := svc.Load(context.Background(), 1)
	require.ErrorIs(t, err, common.ErrFetch)
}

func TestRecommendations_BreakerOpensAfterFailures(t *testing.T) {
	fc := &fakeClient{RecsErr: errors.New("boom")}
	cat := &fakeCatalog{movies: moviesN(1)}
	svc := NewRecommendationService(fc, cat, time.Second, BreakerSettings{ConsecutiveFailures: 2, OpenTimeout: time.Hour}, logging.Discard())

	for i := 0; i < 4; i++ {
		list, err := svc.Load(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, list.Fallback)
	}
	assert.Equal(t, 2, fc.RecsCalls, "open breaker must skip the backend")
	assert.Equal(t, 4, cat.calls)
}

func TestRecommendations_CanceledContext(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	fc := &fakeClient{RecsBlock: block}
	cat := &fakeCatalog{movies: moviesN(1)}
	svc := NewRecommendationService(fc, cat, time.Hour, BreakerSettings{}, logging.Discard())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := svc.Load(ctx, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, cat.calls)
}
