package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cineia/internal/client/render"
)

// AdminSearch looks a title up in the external movie database.
func (a *App) AdminSearch(ctx context.Context, args []string) error {
	m, err := a.admin.SearchExternal(ctx, strings.Join(args, " "))
	if err != nil {
		return a.report(err)
	}
	return render.DetailText(a.out, m, 0, false)
}

// AdminAdd fetches a title from the external database and inserts it into
// the catalog, then reloads the catalog.
func (a *App) AdminAdd(ctx context.Context, args []string) error {
	m, err := a.admin.SearchExternal(ctx, strings.Join(args, " "))
	if err != nil {
		return a.report(err)
	}
	id, err := a.admin.AddMovie(ctx, m)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Filme %q adicionado com sucesso! ID: %d\n", m.Title, id)

	movies, err := a.catalog.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "catalog reload failed", "err", err)
		return nil
	}
	a.state.SetMovies(movies)
	return nil
}

// Stats prints catalog totals and per-genre averages.
func (a *App) Stats(ctx context.Context) error {
	st, err := a.admin.Stats(ctx)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Filmes no catálogo: %d\n", st.TotalMovies)
	for _, g := range st.GenreRatings {
		fmt.Fprintf(a.out, "  %s: %.1f\n", g.Genre, g.AverageRating)
	}
	return nil
}
