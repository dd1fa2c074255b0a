package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/dmitrijs2005/cineia/internal/client/client"
	"github.com/dmitrijs2005/cineia/internal/client/favorites"
	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cineia/internal/client/state"
	"github.com/dmitrijs2005/cineia/internal/common"
	"github.com/dmitrijs2005/cineia/internal/dbx"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

// SessionService resolves and maintains the signed-in user.
//
// Contract:
//   - Resolve: read the stored user record (persistent scope first), confirm
//     it with the backend and publish it; clears everything when the backend
//     does not confirm it.
//   - Login: authenticate and store the record in the persistent scope when
//     remember is set, otherwise in the session scope.
//   - Register: create an account; does not sign in.
//   - Logout: clear the stored session.
//   - Ping: backend liveness.
type SessionService interface {
	Resolve(ctx context.Context) (models.User, error)
	Login(ctx context.Context, username, password string, remember bool) (models.User, error)
	Register(ctx context.Context, username, password, confirm string) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type scope int

const (
	scopePersistent scope = iota
	scopeSession
)

type sessionService struct {
	client    client.Client
	db        *sql.DB
	session   metadata.Repository
	favorites *favorites.Store
	state     *state.Store
	log       logging.Logger
}

// NewSessionService wires the session resolver. db backs the persistent
// scope; session is the process-lifetime scope.
func NewSessionService(c client.Client, db *sql.DB, session metadata.Repository, fav *favorites.Store, st *state.Store, log logging.Logger) SessionService {
	return &sessionService{
		client:    c,
		db:        db,
		session:   session,
		favorites: fav,
		state:     st,
		log:       log.With("component", "session"),
	}
}

func (s *sessionService) persistent() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

func (s *sessionService) repo(sc scope) metadata.Repository {
	if sc == scopePersistent {
		return s.persistent()
	}
	return s.session
}

// stored returns the user record and the scope it came from. The
// persistent scope wins when both hold one.
func (s *sessionService) stored(ctx context.Context) (models.User, scope, bool, error) {
	for _, sc := range []scope{scopePersistent, scopeSession} {
		raw, err := s.repo(sc).Get(ctx, common.KeyUser)
		if err != nil {
			return models.User{}, sc, false, fmt.Errorf("read session: %w", err)
		}
		if len(raw) == 0 {
			continue
		}
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil || u.ID <= 0 {
			s.log.Warn(ctx, "discarding malformed session record", "scope", sc)
			continue
		}
		return u, sc, true, nil
	}
	return models.User{}, scopeSession, false, nil
}

func (s *sessionService) Resolve(ctx context.Context) (models.User, error) {
	u, sc, ok, err := s.stored(ctx)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, common.ErrUnauthenticated
	}

	fresh, err := s.client.GetUser(ctx, u.ID)
	if err != nil {
		s.log.Warn(ctx, "session not confirmed by backend", "user_id", u.ID, "err", err)
		if cerr := s.clear(ctx); cerr != nil {
			s.log.Error(ctx, "failed to clear session", "err", cerr)
		}
		return models.User{}, fmt.Errorf("%w: %w", common.ErrSessionExpired, err)
	}
	if fresh.ID == 0 {
		fresh.ID = u.ID
	}

	if err := s.store(ctx, sc, fresh); err != nil {
		return models.User{}, err
	}
	s.log.Info(ctx, "session resolved", "user_id", fresh.ID, "admin", fresh.IsAdmin)
	return fresh, nil
}

func (s *sessionService) Login(ctx context.Context, username, password string, remember bool) (models.User, error) {
	req := models.LoginRequest{Username: username, Password: password}
	if err := models.Validate(req); err != nil {
		return models.User{}, err
	}

	u, err := s.client.Login(ctx, req)
	if err != nil {
		return models.User{}, fmt.Errorf("login error: %w", err)
	}

	sc := scopeSession
	if remember {
		sc = scopePersistent
	}
	// A stale record in the other scope would shadow or outlive this one.
	if err := s.repo(otherScope(sc)).Delete(ctx, common.KeyUser); err != nil {
		return models.User{}, fmt.Errorf("login error: %w", err)
	}
	if err := s.store(ctx, sc, u); err != nil {
		return models.User{}, fmt.Errorf("session saving error: %w", err)
	}
	s.log.Info(ctx, "logged in", "user_id", u.ID, "remember", remember)
	return u, nil
}

func (s *sessionService) Register(ctx context.Context, username, password, confirm string) error {
	req := models.RegisterRequest{Username: username, Password: password, Confirm: confirm}
	if err := models.Validate(req); err != nil {
		return err
	}
	id, err := s.client.Register(ctx, req)
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	s.log.Info(ctx, "account created", "user_id", id)
	return nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	return s.clear(ctx)
}

func (s *sessionService) Ping(ctx context.Context) error {
	_, err := s.client.Health(ctx)
	return err
}

// store writes the user record and the admin mirror in one transaction
// (persistent scope) and publishes the user.
func (s *sessionService) store(ctx context.Context, sc scope, u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	admin := []byte(strconv.FormatBool(u.IsAdmin))

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if sc == scopePersistent {
			if err := repo.Set(ctx, common.KeyUser, raw); err != nil {
				return err
			}
		}
		return repo.Set(ctx, common.KeyIsAdmin, admin)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if sc == scopeSession {
		if err := s.session.Set(ctx, common.KeyUser, raw); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}

	s.state.SetUser(u)
	return nil
}

// clear removes the user from both scopes together with favorites and the
// admin flag, then resets in-memory state.
func (s *sessionService) clear(ctx context.Context) error {
	err := s.persistent().Delete(ctx, common.KeyUser, common.KeyFavorites, common.KeyIsAdmin)
	serr := s.session.Delete(ctx, common.KeyUser)

	s.favorites.Reset()
	s.state.Reset()

	if err := errors.Join(err, serr); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func otherScope(sc scope) scope {
	if sc == scopePersistent {
		return scopeSession
	}
	return scopePersistent
}
