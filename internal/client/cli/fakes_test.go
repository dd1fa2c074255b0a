package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/cineia/internal/client/catalog"
	"github.com/dmitrijs2005/cineia/internal/client/config"
	"github.com/dmitrijs2005/cineia/internal/client/favorites"
	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cineia/internal/client/services"
	"github.com/dmitrijs2005/cineia/internal/client/state"
	"github.com/dmitrijs2005/cineia/internal/common"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

type fakeSession struct {
	st *state.Store

	resolveUser models.User
	resolveErr  error

	loginUser     string
	loginPass     string
	loginRemember bool
	loginRet      models.User
	loginErr      error

	regUser, regPass, regConfirm string
	regErr                       error

	logoutCalled bool
	logoutErr    error

	pingErr error
}

func (f *fakeSession) Resolve(context.Context) (models.User, error) {
	if f.resolveErr == nil {
		f.st.SetUser(f.resolveUser)
	}
	return f.resolveUser, f.resolveErr
}

func (f *fakeSession) Login(_ context.Context, u, p string, remember bool) (models.User, error) {
	f.loginUser, f.loginPass, f.loginRemember = u, p, remember
	if f.loginErr == nil {
		f.st.SetUser(f.loginRet)
	}
	return f.loginRet, f.loginErr
}

func (f *fakeSession) Register(_ context.Context, u, p, c string) error {
	f.regUser, f.regPass, f.regConfirm = u, p, c
	return f.regErr
}

func (f *fakeSession) Logout(context.Context) error {
	f.logoutCalled = true
	f.st.Reset()
	return f.logoutErr
}

func (f *fakeSession) Ping(context.Context) error { return f.pingErr }

type fakeRatings struct {
	index     models.RatingIndex
	loads     int
	submitted [][3]int64
	submitErr error
}

func (f *fakeRatings) Load(context.Context, int64) []models.Rating { f.loads++; return nil }
func (f *fakeRatings) Submit(_ context.Context, userID, movieID int64, rating int) (int64, error) {
	if rating < 1 || rating > 10 {
		return 0, common.ErrInvalidRating
	}
	if f.submitErr != nil {
		return 0, f.submitErr
	}
	f.submitted = append(f.submitted, [3]int64{userID, movieID, int64(rating)})
	f.index[movieID] = float64(rating)
	return 1, nil
}
func (f *fakeRatings) For(movieID int64) float64 { return f.index.For(movieID) }
func (f *fakeRatings) All() []models.Rating      { return nil }

type fakeRecs struct {
	list models.RecommendationList
	err  error
}

func (f *fakeRecs) Load(context.Context, int64) (models.RecommendationList, error) {
	return f.list, f.err
}

type fakeProfile struct {
	count     int
	recent    []models.Rating
	overrides services.Overrides
	bannerArg string
	setErr    error
}

func (f *fakeProfile) RatedCount(context.Context, int64) int { return f.count }
func (f *fakeProfile) Recent(context.Context, int64) ([]models.Rating, error) {
	return f.recent, nil
}
func (f *fakeProfile) Overrides(context.Context) (services.Overrides, error) { return f.overrides, nil }
func (f *fakeProfile) SetBanner(_ context.Context, raw string) error {
	f.bannerArg = raw
	return f.setErr
}
func (f *fakeProfile) SetAvatar(context.Context, string) error { return f.setErr }

type fakeAdmin struct {
	external  models.Movie
	searchErr error
	added     []models.Movie
	addErr    error
	stats     models.StatsResponse
}

func (f *fakeAdmin) SearchExternal(context.Context, string) (models.Movie, error) {
	return f.external, f.searchErr
}
func (f *fakeAdmin) AddMovie(_ context.Context, m models.Movie) (int64, error) {
	f.added = append(f.added, m)
	return 99, f.addErr
}
func (f *fakeAdmin) Stats(context.Context) (models.StatsResponse, error) { return f.stats, nil }

type fakeFetcher struct {
	movies []models.Movie
	err    error
	calls  int
}

func (f *fakeFetcher) ListMovies(context.Context) ([]models.Movie, error) {
	f.calls++
	return f.movies, f.err
}
func (f *fakeFetcher) GetMovie(_ context.Context, id int64) (models.Movie, error) {
	for _, m := range f.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Movie{}, common.ErrNotFound
}

type testApp struct {
	*App
	buf     *bytes.Buffer
	session *fakeSession
	rs      *fakeRatings
	recsF   *fakeRecs
	prof    *fakeProfile
	adm     *fakeAdmin
	fetch   *fakeFetcher
}

var sampleMovies = []models.Movie{
	{ID: 1, Title: "Alien", Year: 1979, IMDbRating: 8.5},
	{ID: 2, Title: "Aliens", Year: 1986},
	{ID: 3, Title: "Blade Runner", Year: 1982},
}

func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	st := state.New()
	fetch := &fakeFetcher{movies: sampleMovies}
	ta := &testApp{
		buf:     &bytes.Buffer{},
		session: &fakeSession{st: st},
		rs:      &fakeRatings{index: models.RatingIndex{}},
		recsF:   &fakeRecs{},
		prof:    &fakeProfile{},
		adm:     &fakeAdmin{},
		fetch:   fetch,
	}
	in := strings.NewReader(input)
	ta.App = &App{
		config:    &config.Config{SearchDebounce: 10 * time.Millisecond},
		log:       logging.Discard(),
		session:   ta.session,
		ratings:   ta.rs,
		recs:      ta.recsF,
		profile:   ta.prof,
		admin:     ta.adm,
		favorites: favorites.NewStore(metadata.NewMemoryRepository(), logging.Discard(), favorites.WithOnChange(st.SetFavorites)),
		catalog:   catalog.NewCache(fetch, logging.Discard()),
		state:     st,
		in:        in,
		reader:    bufio.NewReader(in),
		out:       ta.buf,
	}
	t.Cleanup(ta.watchState())
	return ta
}

func (ta *testApp) signIn(u models.User) {
	ta.state.SetUser(u)
}
