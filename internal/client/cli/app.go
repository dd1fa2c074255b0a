package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/cineia/internal/client/catalog"
	"github.com/dmitrijs2005/cineia/internal/client/client"
	"github.com/dmitrijs2005/cineia/internal/client/config"
	"github.com/dmitrijs2005/cineia/internal/client/favorites"
	"github.com/dmitrijs2005/cineia/internal/client/render"
	"github.com/dmitrijs2005/cineia/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cineia/internal/client/services"
	"github.com/dmitrijs2005/cineia/internal/client/state"
	"github.com/dmitrijs2005/cineia/internal/common"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	session   services.SessionService
	ratings   services.RatingService
	recs      services.RecommendationService
	profile   services.ProfileService
	admin     services.AdminService
	favorites *favorites.Store
	catalog   *catalog.Cache
	state     *state.Store

	mu       sync.Mutex
	Mode     Mode
	userName string
	retry    func(ctx context.Context) error

	reader *bufio.Reader
	in     io.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "err", err)
		return nil, err
	}

	api := client.NewHTTPClient(c.ServerURL, client.Options{
		Timeout:            c.RequestTimeout,
		RateLimit:          c.RateLimit,
		Burst:              c.RateBurst,
		InsecureSkipVerify: c.TLSInsecure,
	}, log)

	persistent := metadata.NewSQLiteRepository(db)
	st := state.New()
	fav := favorites.NewStore(persistent, log, favorites.WithOnChange(st.SetFavorites))
	cat := catalog.NewCache(api, log)

	a := &App{
		config:    c,
		log:       log.With("component", "cli"),
		db:        db,
		session:   services.NewSessionService(api, db, metadata.NewMemoryRepository(), fav, st, log),
		ratings:   services.NewRatingService(api, st, log),
		recs:      services.NewRecommendationService(api, cat, c.RecommendationTimeout, services.BreakerSettings{ConsecutiveFailures: c.BreakerFailures, OpenTimeout: c.BreakerOpenTimeout}, log),
		profile:   services.NewProfileService(api, persistent, log),
		admin:     services.NewAdminService(api, st, log),
		favorites: fav,
		catalog:   cat,
		state:     st,
		in:        os.Stdin,
		out:       os.Stdout,
	}
	a.reader = bufio.NewReader(a.in)
	a.watchState()
	return a, nil
}

// watchState keeps the prompt's user name in step with the state store.
func (a *App) watchState() func() {
	return a.state.Subscribe(func(e state.Event) {
		switch e.Kind {
		case state.UserChanged, state.Reset:
			name := ""
			if e.Snapshot.User != nil {
				name = e.Snapshot.User.Username
			}
			a.mu.Lock()
			a.userName = name
			a.mu.Unlock()
		case state.CatalogChanged, state.RatingsChanged, state.FavoritesChanged:
			a.log.Debug(context.Background(), "state changed", "kind", e.Kind.String())
		}
	})
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()
	if changed {
		a.log.Info(context.Background(), "switched mode", "mode", string(mode))
	}
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) isLoggedIn() bool {
	_, ok := a.state.User()
	return ok
}

// Run bootstraps the session and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintln(a.out, "Bem-vindo ao CineIA (digite 'help' para ver os comandos)")

	if err := a.favorites.Load(ctx); err != nil {
		a.log.Warn(ctx, "favorites unavailable", "err", err)
	}
	if err := a.bootstrap(ctx); err != nil {
		a.report(err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

// bootstrap resolves the stored session and, when there is one, loads the
// catalog and ratings.
func (a *App) bootstrap(ctx context.Context) error {
	u, err := a.session.Resolve(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthenticated) {
			fmt.Fprintln(a.out, "Faça login ('login') ou crie uma conta ('register').")
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "Olá, %s!\n", u.Username)
	return a.refresh(ctx)
}

// refresh loads the catalog and the user's ratings concurrently. Only a
// catalog failure is an error; ratings degrade to none.
func (a *App) refresh(ctx context.Context) error {
	u, ok := a.state.User()
	if !ok {
		return common.ErrUnauthenticated
	}
	_ = render.LoadingText(a.out, "Carregando filmes...")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		movies, err := a.catalog.Load(gctx)
		if err != nil {
			return err
		}
		a.state.SetMovies(movies)
		return nil
	})
	g.Go(func() error {
		a.ratings.Load(gctx, u.ID)
		return nil
	})
	if err := g.Wait(); err != nil {
		a.setRetry(a.refresh)
		return err
	}
	a.setRetry(nil)
	fmt.Fprintf(a.out, "%d filmes no catálogo.\n", len(a.catalog.Movies()))
	return nil
}

func (a *App) setRetry(fn func(ctx context.Context) error) {
	a.mu.Lock()
	a.retry = fn
	a.mu.Unlock()
}

// Retry re-runs the last operation that ended on an error panel.
func (a *App) Retry(ctx context.Context) error {
	a.mu.Lock()
	fn := a.retry
	a.mu.Unlock()
	if fn == nil {
		fmt.Fprintln(a.out, "Nada para tentar novamente.")
		return nil
	}
	return a.report(fn(ctx))
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.session.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
