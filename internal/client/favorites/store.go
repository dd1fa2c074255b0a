// Package favorites keeps the user's favorite movies in the persistent
// storage scope under the "cineia_favorites" key.
//
// The set is read once by Load, served from memory, and written back on
// every mutation. Concurrent writers (other processes) are not detected;
// the last write wins.
package favorites

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	"github.com/dmitrijs2005/cineia/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cineia/internal/common"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

type Store struct {
	mu       sync.RWMutex
	repo     metadata.Repository
	log      logging.Logger
	order    []ID
	index    map[ID]struct{}
	onChange func([]ID)
}

type Option func(*Store)

// WithOnChange registers fn to be called with a snapshot after each
// successful mutation.
func WithOnChange(fn func([]ID)) Option {
	return func(s *Store) { s.onChange = fn }
}

func NewStore(repo metadata.Repository, log logging.Logger, opts ...Option) *Store {
	s := &Store{
		repo:  repo,
		log:   log.With("component", "favorites"),
		index: make(map[ID]struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load reads the persisted set. Malformed data is logged and treated as an
// empty set.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, common.KeyFavorites)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}

	var ids []ID
	if len(raw) > 0 {
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			s.log.Warn(ctx, "ignoring malformed favorites", "err", err)
		}
		for _, e := range elems {
			var id ID
			if err := json.Unmarshal(e, &id); err != nil {
				s.log.Warn(ctx, "skipping favorite", "raw", string(e), "err", err)
				continue
			}
			ids = append(ids, id)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = s.order[:0]
	s.index = make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := s.index[id]; dup {
			continue
		}
		s.index[id] = struct{}{}
		s.order = append(s.order, id)
	}
	return nil
}

func (s *Store) IsFavorite(id ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[id]
	return ok
}

// Toggle flips membership of id and persists the result. It returns the
// new membership. A persistence error is returned but the in-memory flip
// is kept.
func (s *Store) Toggle(ctx context.Context, id ID) (bool, error) {
	s.mu.Lock()
	_, was := s.index[id]
	if was {
		delete(s.index, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	} else {
		s.index[id] = struct{}{}
		s.order = append(s.order, id)
	}
	snapshot := append([]ID(nil), s.order...)
	s.mu.Unlock()

	if err := s.persist(ctx, snapshot); err != nil {
		return !was, err
	}
	s.log.Debug(ctx, "favorite toggled", "id", id.String(), "favorite", !was)
	if s.onChange != nil {
		s.onChange(snapshot)
	}
	return !was, nil
}

// All returns the ids in insertion order.
func (s *Store) All() []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ID(nil), s.order...)
}

// Reset forgets the in-memory set without touching storage.
func (s *Store) Reset() {
	s.mu.Lock()
	s.order = nil
	s.index = make(map[ID]struct{})
	s.mu.Unlock()
	if s.onChange != nil {
		s.onChange(nil)
	}
}

func (s *Store) persist(ctx context.Context, ids []ID) error {
	if ids == nil {
		ids = []ID{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := s.repo.Set(ctx, common.KeyFavorites, b); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}
