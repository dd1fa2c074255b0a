package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/cineia/internal/client/client"
	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/client/state"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

// ratingsBackend keeps one rating per (user, movie) and answers the rate and
// list endpoints the way the API does.
type ratingsBackend struct {
	mu     sync.Mutex
	nextID int64
	rows   map[[2]int64]models.Rating
}

func newRatingsBackend(t *testing.T) *httptest.Server {
	t.Helper()
	b := &ratingsBackend{rows: map[[2]int64]models.Rating{}}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/rate", func(w http.ResponseWriter, r *http.Request) {
		var req models.RateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		key := [2]int64{req.UserID, req.MovieID}
		row, ok := b.rows[key]
		if !ok {
			b.nextID++
			row = models.Rating{RatingID: b.nextID, MovieID: req.MovieID}
		}
		row.UserRating = float64(req.Rating)
		b.rows[key] = row
		b.mu.Unlock()

		_ = json.NewEncoder(w).Encode(models.RateResponse{Envelope: models.Envelope{Success: true}, RatingID: row.RatingID})
	})

	mux.HandleFunc("GET /api/user/{id}/ratings", func(w http.ResponseWriter, r *http.Request) {
		uid, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)

		b.mu.Lock()
		resp := models.RatingsResponse{Envelope: models.Envelope{Success: true}}
		for k, row := range b.rows {
			if k[0] == uid {
				resp.Ratings = append(resp.Ratings, row)
			}
		}
		b.mu.Unlock()
		sort.Slice(resp.Ratings, func(i, j int) bool { return resp.Ratings[i].MovieID < resp.Ratings[j].MovieID })
		resp.Count = len(resp.Ratings)

		_ = json.NewEncoder(w).Encode(resp)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRatings_RerateSameMovieReplacesValue(t *testing.T) {
	srv := newRatingsBackend(t)
	api := client.NewHTTPClient(srv.URL, client.Options{Timeout: 2 * time.Second}, logging.Discard())
	svc := NewRatingService(api, state.New(), logging.Discard())
	ctx := context.Background()

	first, err := svc.Submit(ctx, 1, 9, 7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, svc.For(9))

	second, err := svc.Submit(ctx, 1, 9, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second, "the same rating row is updated")

	got := svc.Load(ctx, 1)
	require.Len(t, got, 1)
	assert.Equal(t, int64(9), got[0].MovieID)
	assert.Equal(t, 4.0, got[0].UserRating)
	assert.Equal(t, 4.0, svc.For(9))
	assert.Len(t, svc.All(), 1)

	assert.Empty(t, svc.Load(ctx, 2), "other users are unaffected")
}
