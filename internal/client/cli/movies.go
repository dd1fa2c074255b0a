package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cineia/internal/client/favorites"
	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/client/render"
	"github.com/dmitrijs2005/cineia/internal/common"
)

func (a *App) requireUser() (models.User, error) {
	u, ok := a.state.User()
	if !ok {
		return models.User{}, a.report(common.ErrUnauthenticated)
	}
	return u, nil
}

// requireCatalog loads the catalog on first use.
func (a *App) requireCatalog(ctx context.Context) error {
	if a.catalog.Loaded() {
		return nil
	}
	return a.report(a.refresh(ctx))
}

func parseMovieID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: uso: %s", common.ErrInvalidInput, usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id de filme inválido %q", common.ErrInvalidInput, args[0])
	}
	return id, nil
}

// List prints the catalog grid with the user's ratings and favorites.
func (a *App) List(ctx context.Context) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	if err := a.requireCatalog(ctx); err != nil {
		return err
	}
	snap := a.state.Snapshot()
	return render.GridText(a.out, a.catalog.Movies(), snap.RatingIndex(), a.favorites)
}

// Show prints one movie. The entry is refreshed from the backend; the
// cached copy is used when that fails.
func (a *App) Show(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	id, err := parseMovieID(args, "show <id>")
	if err != nil {
		return a.report(err)
	}
	if err := a.requireCatalog(ctx); err != nil {
		return err
	}

	m, err := a.catalog.Get(ctx, id)
	if err != nil {
		cached, ok := a.catalog.FindByID(id)
		if !ok {
			return a.report(err)
		}
		m = cached
	}
	if err := render.DetailText(a.out, m, a.ratings.For(id), a.favorites.IsFavorite(favorites.Movie(id))); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Trailer: %s\n", m.Trailer(common.DefaultTrailerURL))
	return nil
}

// Rate submits a 1..10 rating and prints the refreshed detail.
func (a *App) Rate(ctx context.Context, args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	id, err := parseMovieID(args, "rate <id> <1-10>")
	if err != nil {
		return a.report(err)
	}
	if len(args) < 2 {
		return a.report(common.ErrInvalidRating)
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil {
		return a.report(common.ErrInvalidRating)
	}

	had := a.ratings.For(id) > 0
	if _, err := a.ratings.Submit(ctx, u.ID, id, rating); err != nil {
		return a.report(err)
	}

	title := strconv.FormatInt(id, 10)
	m, ok := a.catalog.FindByID(id)
	if ok {
		title = m.Title
	}
	if had {
		fmt.Fprintf(a.out, "Avaliação atualizada! Você deu %d estrelas para %q!\n", rating, title)
	} else {
		fmt.Fprintf(a.out, "Obrigado pela avaliação! Você deu %d estrelas para %q!\n", rating, title)
	}
	if ok {
		return render.DetailText(a.out, m, a.ratings.For(id), a.favorites.IsFavorite(favorites.Movie(id)))
	}
	return nil
}

// Fav toggles a favorite. "featured" maps to the spotlight movie's catalog
// id when the catalog has it, otherwise to the reserved marker.
func (a *App) Fav(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	if len(args) == 0 {
		return a.report(fmt.Errorf("%w: uso: fav <id|featured>", common.ErrInvalidInput))
	}
	id, err := favorites.ParseID(args[0])
	if err != nil {
		return a.report(err)
	}
	if id.IsFeatured() {
		id = render.FeaturedID(a.catalog.Movies())
	}

	title := common.FeaturedTitle
	if mid, ok := id.MovieID(); ok {
		title = id.String()
		if m, found := a.catalog.FindByID(mid); found {
			title = m.Title
		}
	}

	on, err := a.favorites.Toggle(ctx, id)
	if err != nil {
		a.log.Warn(ctx, "favorite not persisted", "id", id.String(), "err", err)
	}
	action := "removido dos"
	if on {
		action = "adicionado aos"
	}
	fmt.Fprintf(a.out, "%q %s favoritos!\n", title, action)
	return nil
}

// Favorites lists favorite movies in the order they were added.
func (a *App) Favorites(ctx context.Context) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	ids := a.favorites.All()
	if len(ids) == 0 {
		fmt.Fprintln(a.out, "Você ainda não tem favoritos.")
		return nil
	}
	if err := a.requireCatalog(ctx); err != nil {
		return err
	}

	movies := make([]models.Movie, 0, len(ids))
	featured := false
	for _, id := range ids {
		mid, ok := id.MovieID()
		if !ok {
			featured = true
			continue
		}
		if m, found := a.catalog.FindByID(mid); found {
			movies = append(movies, m)
		}
	}
	if featured {
		fmt.Fprintf(a.out, "Em destaque: %s\n", common.FeaturedTitle)
	}
	if len(movies) == 0 {
		return nil
	}
	snap := a.state.Snapshot()
	return render.GridText(a.out, movies, snap.RatingIndex(), a.favorites)
}

// Search runs a one-shot title search over the cached catalog.
func (a *App) Search(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	if err := a.requireCatalog(ctx); err != nil {
		return err
	}
	return render.SearchText(a.out, a.catalog.Search(strings.Join(args, " ")))
}
