package render

import (
	"bytes"
	"html/template"

	"github.com/dmitrijs2005/cineia/internal/client/catalog"
	"github.com/dmitrijs2005/cineia/internal/client/favorites"
	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/common"
)

const templates = `
{{define "card"}}<div class="movie-card" data-movie-id="{{.Movie.ID}}" data-action="open">
<img src="{{.Movie.Poster placeholder}}" alt="{{.Movie.Title}}" class="movie-poster">
<div class="movie-info">
<h4 class="movie-title">{{.Movie.Title}}</h4>
<span class="movie-year">{{if .Movie.Year}}{{.Movie.Year}}{{end}}</span>
{{- if gt .Rating 0.0}}
<div class="rating-badge">{{rating .Rating}}/10</div>
{{- end}}
<div class="movie-actions">
<button class="movie-watch" data-movie-id="{{.Movie.ID}}" data-action="watch">&#9654;</button>
<button class="movie-favorite{{if .Favorite}} active{{end}}" data-movie-id="{{.Movie.ID}}" data-action="favorite">{{if .Favorite}}&#9829;{{else}}&#9825;{{end}}</button>
</div>
</div>
</div>
{{end}}

{{define "grid"}}<div class="movie-grid">
{{range .}}{{template "card" .}}{{end}}</div>
{{end}}

{{define "detail"}}<div class="movie-detail" data-movie-id="{{.Movie.ID}}">
<div class="movie-detail-poster"><img src="{{.Movie.Poster placeholder}}" alt="{{.Movie.Title}}"></div>
<div class="movie-detail-info">
<h2>{{.Movie.Title}}{{if .Movie.Year}} ({{.Movie.Year}}){{end}}</h2>
<div class="movie-actions-modal">
<button class="watch-btn" data-movie-id="{{.Movie.ID}}" data-action="watch">Assistir</button>
<button class="favorite-btn{{if .Favorite}} active{{end}}" data-movie-id="{{.Movie.ID}}" data-action="favorite">{{if .Favorite}}Remover dos Favoritos{{else}}Adicionar aos Favoritos{{end}}</button>
</div>
<div class="ratings-container">
<div class="rating-item"><span class="rating-label">IMDb</span><span class="rating-value">{{.Movie.IMDbLabel}}/10</span></div>
<div class="rating-item"><span class="rating-label">Rotten Tomatoes</span><span class="rating-value">{{.Movie.RottenTomatoesLabel}}</span></div>
<div class="rating-item"><span class="rating-label">Sua Avaliação</span><span class="rating-value">{{userRating .Rating}}</span></div>
</div>
{{- with .Movie.Actors}}
<div class="actors-section"><h4>Elenco Principal</h4><p>{{.}}</p></div>
{{- end}}
{{- with .Movie.Description}}
<div class="synopsis-section"><h4>Sinopse</h4><p>{{.}}</p></div>
{{- end}}
{{- with .Movie.Genre}}
<div class="genre-section"><h4>Gênero</h4><p>{{.}}</p></div>
{{- end}}
<div class="user-rating-section">
<h4>{{section .Rating}}</h4>
<div class="star-rating">{{range $i, $on := stars .Rating}}<span class="star{{if $on}} active{{end}}" data-rating="{{inc $i}}">&#9733;</span>{{end}}</div>
<button class="submit-rating" data-movie-id="{{.Movie.ID}}" data-action="rate">{{rateLabel .Rating}}</button>
</div>
</div>
</div>
{{end}}

{{define "search"}}{{if .NotFound}}<div class="no-results">Filme não encontrado...</div>{{else}}{{$q := .Query}}{{range .Movies}}<div class="search-result-item" data-movie-id="{{.ID}}" data-action="open">
<img src="{{.Poster placeholder}}" alt="{{.Title}}" class="search-result-poster">
<div class="search-result-info">
{{- with highlight .Title $q}}
<div class="search-result-title">{{.Before}}{{if .Match}}<mark>{{.Match}}</mark>{{end}}{{.After}}</div>
{{- end}}
<div class="search-result-year">{{if .Year}}{{.Year}}{{end}}</div>
</div>
</div>
{{end}}{{end}}{{end}}

{{define "loading"}}<div class="loading-message"><h3>{{.}}</h3></div>{{end}}

{{define "error"}}<div class="error-message">
<h3>Erro ao carregar</h3>
<p>{{.}}</p>
<button class="retry-btn" data-action="retry">Tentar Novamente</button>
</div>{{end}}

{{define "recommendations"}}<div class="recommendations" data-kind="{{.Kind}}">
<h3>{{.Message}}</h3>
{{range .Items}}<div class="recommendation-card"{{if .ID}} data-movie-id="{{.ID}}" data-action="open"{{end}}>
<h4>{{.Title}}{{if .Year}} ({{.Year}}){{end}}</h4>
{{- with .Genre}}<span class="genre">{{.}}</span>{{end}}
{{- with .Reason}}<p class="reason">{{.}}</p>{{end}}
</div>
{{end}}</div>
{{end}}
`

var tmpl = template.Must(template.New("render").Funcs(funcMap).Parse(templates))

type cardData struct {
	Movie    models.Movie
	Rating   float64
	Favorite bool
}

func execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	// Templates are parsed at init and only receive typed data, so execution
	// cannot fail short of a programming error.
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		panic(err)
	}
	return template.HTML(buf.String())
}

// Grid renders one card per movie, in catalog order. A rating badge appears
// only for ratings above zero.
func Grid(movies []models.Movie, ratings models.RatingIndex, favs Favorites) template.HTML {
	cards := make([]cardData, len(movies))
	for i, m := range movies {
		cards[i] = cardData{
			Movie:    m,
			Rating:   ratings.For(m.ID),
			Favorite: favs != nil && favs.IsFavorite(favorites.Movie(m.ID)),
		}
	}
	return execute("grid", cards)
}

// Detail renders the movie panel with the ten-star widget.
func Detail(movie models.Movie, rating float64, isFavorite bool) template.HTML {
	return execute("detail", cardData{Movie: movie, Rating: rating, Favorite: isFavorite})
}

// SearchResults renders the dropdown. A hidden result renders nothing.
func SearchResults(res catalog.Result) template.HTML {
	if res.Hidden {
		return ""
	}
	return execute("search", res)
}

func Loading(msg string) template.HTML {
	return execute("loading", msg)
}

// ErrorPanel renders msg with a retry action.
func ErrorPanel(msg string) template.HTML {
	return execute("error", msg)
}

func Recommendations(list models.RecommendationList) template.HTML {
	return execute("recommendations", list)
}

// FeaturedID resolves the spotlight movie's favorite id against the
// catalog.
func FeaturedID(movies []models.Movie) favorites.ID {
	return favorites.ResolveFeatured(movies, common.FeaturedTitle)
}
