package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/cineia/internal/client/catalog"
	"github.com/dmitrijs2005/cineia/internal/client/favorites"
	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/common"
)

var sample = []models.Movie{
	{ID: 1, Title: "Alien", Year: 1979, IMDbRating: 8.5, RottenTomatoesRating: 93},
	{ID: 2, Title: "Aliens", Year: 1986},
	{ID: 3, Title: "Blade Runner", Year: 1982, PosterURL: "https://img.example/br.jpg"},
}

func TestGrid_OrderBadgesAndFavorites(t *testing.T) {
	ratings := models.IndexRatings([]models.Rating{{MovieID: 2, UserRating: 7}, {MovieID: 3, UserRating: 0}})
	favs := NewSet([]favorites.ID{favorites.Movie(3)})

	out := string(Grid(sample, ratings, favs))

	i1 := strings.Index(out, `data-movie-id="1"`)
	i2 := strings.Index(out, `data-movie-id="2"`)
	i3 := strings.Index(out, `data-movie-id="3"`)
	require.True(t, i1 >= 0 && i2 > i1 && i3 > i2, "cards must follow catalog order")

	assert.Equal(t, 1, strings.Count(out, `class="rating-badge"`), "zero and missing ratings have no badge")
	assert.Contains(t, out, `7/10`)
	assert.Equal(t, 1, strings.Count(out, `movie-favorite active`))
	assert.Contains(t, out, `src="https://images.unsplash.com/`, "missing posters use the placeholder")
	assert.Contains(t, out, "https://img.example/br.jpg")
	assert.NotContains(t, out, "onclick")
}

func TestGrid_Empty(t *testing.T) {
	out := string(Grid(nil, nil, nil))
	assert.NotContains(t, out, "movie-card")
}

func TestGrid_EscapesTitles(t *testing.T) {
	out := string(Grid([]models.Movie{{ID: 9, Title: `<script>x</script>`}}, nil, nil))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestDetail_LabelsFollowRating(t *testing.T) {
	unrated := string(Detail(sample[1], 0, false))
	assert.Contains(t, unrated, LabelRate)
	assert.NotContains(t, unrated, LabelUpdate)
	assert.Contains(t, unrated, LabelUnrated)
	assert.Contains(t, unrated, "N/A/10")
	assert.Contains(t, unrated, LabelFavAdd)
	assert.Equal(t, Stars, strings.Count(unrated, `data-rating=`))
	assert.Zero(t, strings.Count(unrated, `star active`))

	rated := string(Detail(sample[0], 8, true))
	assert.Contains(t, rated, LabelUpdate)
	assert.Contains(t, rated, "8/10")
	assert.Contains(t, rated, "8.5/10")
	assert.Contains(t, rated, "93%")
	assert.Contains(t, rated, LabelFavRemove)
	assert.Equal(t, 8, strings.Count(rated, `star active`))
	assert.Contains(t, rated, `data-rating="10"`)
	assert.Contains(t, rated, `data-action="rate"`)
}

func TestSearchResults(t *testing.T) {
	assert.Empty(t, string(SearchResults(catalog.Search(sample, "   "))))

	none := string(SearchResults(catalog.Search(sample, "zzz")))
	assert.Contains(t, none, LabelNotFound)

	hit := string(SearchResults(catalog.Search(sample, "LIEN")))
	assert.Equal(t, 2, strings.Count(hit, "search-result-item"))
	assert.Contains(t, hit, "A<mark>lien</mark>")
	assert.Contains(t, hit, "A<mark>lien</mark>s")
}

func TestLoadingAndErrorPanel(t *testing.T) {
	assert.Contains(t, string(Loading("Carregando filmes...")), "Carregando filmes...")

	panel := string(ErrorPanel("servidor fora do ar"))
	assert.Contains(t, panel, "servidor fora do ar")
	assert.Contains(t, panel, `data-action="retry"`)
	assert.Contains(t, panel, LabelRetry)
}

func TestRecommendationsHTML(t *testing.T) {
	out := string(Recommendations(models.RecommendationList{
		Kind:    models.RecommendationAI,
		Message: "Para você",
		Items:   []models.Recommendation{{ID: 4, Title: "Arrival", Reason: "ficção"}, {Title: "Sem id"}},
	}))
	assert.Contains(t, out, `data-kind="ai"`)
	assert.Contains(t, out, `data-movie-id="4"`)
	assert.Equal(t, 1, strings.Count(out, "data-movie-id"))
	assert.Contains(t, out, "ficção")
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "8", FormatRating(8))
	assert.Equal(t, "7.5", FormatRating(7.5))
	assert.Equal(t, LabelRate, RateLabel(0))
	assert.Equal(t, LabelUpdate, RateLabel(0.5))
	assert.Equal(t, "★★★☆☆☆☆☆☆☆", StarBar(3))
	assert.Equal(t, "☆☆☆☆☆☆☆☆☆☆", StarBar(0))
}

func TestFeaturedID(t *testing.T) {
	assert.Equal(t, favorites.Featured, FeaturedID(sample))

	withDune := append([]models.Movie{{ID: 42, Title: common.FeaturedTitle}}, sample...)
	assert.Equal(t, favorites.Movie(42), FeaturedID(withDune))
}

func TestGridText(t *testing.T) {
	var buf bytes.Buffer
	ratings := models.IndexRatings([]models.Rating{{MovieID: 1, UserRating: 9}})
	require.NoError(t, GridText(&buf, sample, ratings, NewSet([]favorites.ID{favorites.Movie(2)})))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "TITLE")
	assert.Contains(t, lines[1], "9/10")
	assert.NotContains(t, lines[2], "/10 ")
	assert.Contains(t, lines[2], "♥")
	assert.Contains(t, lines[3], "N/A")
}

func TestDetailText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DetailText(&buf, sample[0], 0, false))
	out := buf.String()
	assert.Contains(t, out, "Alien (1979)")
	assert.Contains(t, out, LabelUnrated)
	assert.Contains(t, out, "→ "+LabelRate)

	buf.Reset()
	require.NoError(t, DetailText(&buf, sample[0], 6, true))
	out = buf.String()
	assert.Contains(t, out, "★★★★★★☆☆☆☆")
	assert.Contains(t, out, "→ "+LabelUpdate)
	assert.Contains(t, out, LabelFavRemove)
}

func TestSearchText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SearchText(&buf, catalog.Search(sample, "")))
	assert.Empty(t, buf.String())

	require.NoError(t, SearchText(&buf, catalog.Search(sample, "runner")))
	assert.Contains(t, buf.String(), "Blade [Runner]")

	buf.Reset()
	require.NoError(t, SearchText(&buf, catalog.Search(sample, "xyz")))
	assert.Equal(t, LabelNotFound+"\n", buf.String())
}

func TestProfileAndRecommendationsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ProfileText(&buf, models.User{Username: "ana", IsAdmin: true}, 3,
		[]models.Rating{{Title: "Alien", UserRating: 9}}, "https://b", ""))
	out := buf.String()
	assert.Contains(t, out, "ana (administrador)")
	assert.Contains(t, out, "Banner:")
	assert.NotContains(t, out, "Avatar:")
	assert.Contains(t, out, "9/10")

	buf.Reset()
	require.NoError(t, RecommendationsText(&buf, models.RecommendationList{Message: "Filmes em destaque"}))
	assert.Contains(t, buf.String(), "Nenhuma recomendação")

	buf.Reset()
	require.NoError(t, ErrorText(&buf, "falhou"))
	assert.Contains(t, buf.String(), "retry")
}
