package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/cineia/internal/client/catalog"
	"github.com/dmitrijs2005/cineia/internal/client/favorites"
	"github.com/dmitrijs2005/cineia/internal/client/models"
)

const (
	starOn  = "★"
	starOff = "☆"
	heartOn = "♥"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// StarBar draws the ten-star widget, e.g. "★★★★★★★★☆☆".
func StarBar(rating float64) string {
	var b strings.Builder
	for _, on := range StarStates(rating) {
		if on {
			b.WriteString(starOn)
		} else {
			b.WriteString(starOff)
		}
	}
	return b.String()
}

// GridText lists the catalog as a table. The rating column is blank for
// unrated movies.
func GridText(w io.Writer, movies []models.Movie, ratings models.RatingIndex, favs Favorites) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tYEAR\tIMDB\tYOURS\tFAV")
	for _, m := range movies {
		mine := ""
		if r := ratings.For(m.ID); r > 0 {
			mine = FormatRating(r) + "/10"
		}
		fav := ""
		if favs != nil && favs.IsFavorite(favorites.Movie(m.ID)) {
			fav = heartOn
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", m.ID, m.Title, year(m.Year), m.IMDbLabel(), mine, fav)
	}
	return tw.Flush()
}

// DetailText prints a single movie with the rating widget and the action
// hint matching the rating state.
func DetailText(w io.Writer, m models.Movie, rating float64, isFavorite bool) error {
	title := m.Title
	if m.Year > 0 {
		title = fmt.Sprintf("%s (%d)", m.Title, m.Year)
	}
	fav := LabelFavAdd
	if isFavorite {
		fav = LabelFavRemove
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "%s\n\n", title)
	fmt.Fprintf(tw, "IMDb:\t%s/10\n", m.IMDbLabel())
	fmt.Fprintf(tw, "Rotten Tomatoes:\t%s\n", m.RottenTomatoesLabel())
	fmt.Fprintf(tw, "Sua Avaliação:\t%s\n", UserRatingLabel(rating))
	if m.Genre != "" {
		fmt.Fprintf(tw, "Gênero:\t%s\n", m.Genre)
	}
	if m.Actors != "" {
		fmt.Fprintf(tw, "Elenco Principal:\t%s\n", m.Actors)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if m.Description != "" {
		fmt.Fprintf(w, "\nSinopse:\n%s\n", m.Description)
	}
	_, err := fmt.Fprintf(w, "\n%s\n%s  [rate %d <1-10>]  %s  [fav %d]\n",
		sectionLabel(rating), StarBar(rating), m.ID, fav, m.ID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "→ %s\n", RateLabel(rating))
	return err
}

// SearchText prints the dropdown with the first match wrapped in brackets.
func SearchText(w io.Writer, res catalog.Result) error {
	if res.Hidden {
		return nil
	}
	if res.NotFound() {
		_, err := fmt.Fprintln(w, LabelNotFound)
		return err
	}
	tw := newTable(w)
	for _, m := range res.Movies {
		p, ok := catalog.Highlight(m.Title, res.Query)
		title := p.Before
		if ok {
			title = p.Before + "[" + p.Match + "]" + p.After
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", m.ID, title, year(m.Year))
	}
	return tw.Flush()
}

func RecommendationsText(w io.Writer, list models.RecommendationList) error {
	if _, err := fmt.Fprintf(w, "%s\n", list.Message); err != nil {
		return err
	}
	if len(list.Items) == 0 {
		_, err := fmt.Fprintln(w, "Nenhuma recomendação no momento.")
		return err
	}
	tw := newTable(w)
	for i, r := range list.Items {
		fmt.Fprintf(tw, "%d.\t%s\t%s\t%s\n", i+1, r.Title, year(r.Year), r.Reason)
	}
	return tw.Flush()
}

// ProfileText prints the profile header and the recent ratings.
func ProfileText(w io.Writer, u models.User, ratedCount int, recent []models.Rating, banner, avatar string) error {
	role := "usuário"
	if u.IsAdmin {
		role = "administrador"
	}
	tw := newTable(w)
	fmt.Fprintf(tw, "Usuário:\t%s (%s)\n", u.Username, role)
	fmt.Fprintf(tw, "Filmes avaliados:\t%d\n", ratedCount)
	if banner != "" {
		fmt.Fprintf(tw, "Banner:\t%s\n", banner)
	}
	if avatar != "" {
		fmt.Fprintf(tw, "Avatar:\t%s\n", avatar)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(recent) == 0 {
		return nil
	}

	fmt.Fprintln(w, "\nAvaliações recentes:")
	tw = newTable(w)
	for _, r := range recent {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Title, StarBar(r.UserRating), FormatRating(r.UserRating)+"/10")
	}
	return tw.Flush()
}

func LoadingText(w io.Writer, msg string) error {
	_, err := fmt.Fprintf(w, "… %s\n", msg)
	return err
}

// ErrorText prints msg with the retry hint.
func ErrorText(w io.Writer, msg string) error {
	_, err := fmt.Fprintf(w, "Erro ao carregar: %s\n%s: digite 'retry'\n", msg, LabelRetry)
	return err
}

func year(y int) string {
	if y <= 0 {
		return ""
	}
	return fmt.Sprint(y)
}
