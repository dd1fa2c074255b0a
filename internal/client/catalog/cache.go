// Package catalog holds the in-memory movie catalog of the session and the
// title search built on top of it.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/common"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

// Fetcher is the slice of the API client the cache needs.
type Fetcher interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)
}

// Cache is loaded once per session. A failed load leaves the previous
// snapshot in place.
type Cache struct {
	mu     sync.RWMutex
	api    Fetcher
	log    logging.Logger
	movies []models.Movie
	byID   map[int64]int
	loaded bool

	sf singleflight.Group
}

func NewCache(api Fetcher, log logging.Logger) *Cache {
	return &Cache{api: api, log: log.With("component", "catalog"), byID: map[int64]int{}}
}

// Load fetches the full catalog. Concurrent callers share one request.
// Failures wrap common.ErrFetch.
func (c *Cache) Load(ctx context.Context) ([]models.Movie, error) {
	v, err, _ := c.sf.Do("movies", func() (any, error) {
		return c.api.ListMovies(ctx)
	})
	if err != nil {
		c.log.Warn(ctx, "catalog load failed", "err", err)
		return nil, fmt.Errorf("%w: %w", common.ErrFetch, err)
	}
	movies := v.([]models.Movie)

	byID := make(map[int64]int, len(movies))
	for i, m := range movies {
		byID[m.ID] = i
	}

	c.mu.Lock()
	c.movies = movies
	c.byID = byID
	c.loaded = true
	c.mu.Unlock()

	c.log.Info(ctx, "catalog loaded", "movies", len(movies))
	return c.Movies(), nil
}

func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Movies returns a copy of the catalog in backend order.
func (c *Cache) Movies() []models.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Movie(nil), c.movies...)
}

func (c *Cache) FindByID(id int64) (models.Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return models.Movie{}, false
	}
	return c.movies[i], true
}

// Get fetches a single movie (with its community average) and refreshes
// the cached entry when present.
func (c *Cache) Get(ctx context.Context, id int64) (models.Movie, error) {
	m, err := c.api.GetMovie(ctx, id)
	if err != nil {
		return models.Movie{}, fmt.Errorf("get movie %d: %w", id, err)
	}
	c.mu.Lock()
	if i, ok := c.byID[id]; ok {
		c.movies[i] = m
	}
	c.mu.Unlock()
	return m, nil
}

// Search runs Search over the cached catalog.
func (c *Cache) Search(query string) Result {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Search(c.movies, query)
}
