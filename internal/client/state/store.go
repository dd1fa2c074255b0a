// Package state holds the application state shared by the CLI views: the
// signed-in user, the catalog snapshot, the user's ratings and favorites.
//
// Views subscribe to changes instead of reading globals; every setter
// notifies subscribers synchronously, in subscription order, after the
// lock is released.
package state

import (
	"sync"

	"github.com/dmitrijs2005/cineia/internal/client/favorites"
	"github.com/dmitrijs2005/cineia/internal/client/models"
)

type EventKind int

const (
	UserChanged EventKind = iota + 1
	CatalogChanged
	RatingsChanged
	FavoritesChanged
	Reset
)

func (k EventKind) String() string {
	switch k {
	case UserChanged:
		return "user"
	case CatalogChanged:
		return "catalog"
	case RatingsChanged:
		return "ratings"
	case FavoritesChanged:
		return "favorites"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind     EventKind
	Snapshot Snapshot
}

// Snapshot is a copy of the state; callers may keep it.
type Snapshot struct {
	User      *models.User
	Movies    []models.Movie
	Ratings   []models.Rating
	Favorites []favorites.ID
}

// RatingIndex is a convenience view over Ratings.
func (s Snapshot) RatingIndex() models.RatingIndex {
	return models.IndexRatings(s.Ratings)
}

type subscriber struct {
	id uint64
	fn func(Event)
}

type Store struct {
	mu     sync.RWMutex
	cur    Snapshot
	subs   []subscriber
	nextID uint64
}

func New() *Store {
	return &Store{}
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.clone()
}

// User returns the signed-in user, if any.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur.User == nil {
		return models.User{}, false
	}
	return *s.cur.User, true
}

func (s *Store) SetUser(u models.User) {
	s.update(UserChanged, func(c *Snapshot) { c.User = &u })
}

func (s *Store) SetMovies(ms []models.Movie) {
	s.update(CatalogChanged, func(c *Snapshot) { c.Movies = append([]models.Movie(nil), ms...) })
}

func (s *Store) SetRatings(rs []models.Rating) {
	s.update(RatingsChanged, func(c *Snapshot) { c.Ratings = append([]models.Rating(nil), rs...) })
}

func (s *Store) SetFavorites(ids []favorites.ID) {
	s.update(FavoritesChanged, func(c *Snapshot) { c.Favorites = append([]favorites.ID(nil), ids...) })
}

// Reset drops everything, e.g. on logout or session expiry.
func (s *Store) Reset() {
	s.update(Reset, func(c *Snapshot) { *c = Snapshot{} })
}

func (s *Store) update(kind EventKind, mutate func(*Snapshot)) {
	s.mu.Lock()
	mutate(&s.cur)
	ev := Event{Kind: kind, Snapshot: s.cur.clone()}
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(ev)
	}
}

func (s Snapshot) clone() Snapshot {
	out := Snapshot{
		Movies:    append([]models.Movie(nil), s.Movies...),
		Ratings:   append([]models.Rating(nil), s.Ratings...),
		Favorites: append([]favorites.ID(nil), s.Favorites...),
	}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}
