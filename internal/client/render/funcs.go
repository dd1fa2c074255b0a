package render

import (
	"html/template"
	"strconv"

	"github.com/dmitrijs2005/cineia/internal/client/catalog"
	"github.com/dmitrijs2005/cineia/internal/client/favorites"
	"github.com/dmitrijs2005/cineia/internal/common"
)

// Stars is the width of the rating widget.
const Stars = 10

const (
	LabelRate      = "Avaliar Filme"
	LabelUpdate    = "Atualizar Avaliação"
	LabelSectionRe = "Alterar Avaliação"
	LabelUnrated   = "Não avaliado"
	LabelNotFound  = "Filme não encontrado..."
	LabelRetry     = "Tentar Novamente"
	LabelFavAdd    = "Adicionar aos Favoritos"
	LabelFavRemove = "Remover dos Favoritos"
)

// Favorites answers membership for the grid. *favorites.Store satisfies it.
type Favorites interface {
	IsFavorite(id favorites.ID) bool
}

// Set is a Favorites built from a snapshot slice.
type Set map[favorites.ID]struct{}

func NewSet(ids []favorites.ID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) IsFavorite(id favorites.ID) bool {
	_, ok := s[id]
	return ok
}

// FormatRating prints 8 as "8" and 8.5 as "8.5".
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// RateLabel is the submit button caption. It depends only on whether a
// rating exists.
func RateLabel(rating float64) string {
	if rating > 0 {
		return LabelUpdate
	}
	return LabelRate
}

func sectionLabel(rating float64) string {
	if rating > 0 {
		return LabelSectionRe
	}
	return LabelRate
}

// UserRatingLabel is "8/10" or "Não avaliado".
func UserRatingLabel(rating float64) string {
	if rating > 0 {
		return FormatRating(rating) + "/10"
	}
	return LabelUnrated
}

// StarStates returns which of the ten stars are lit for rating.
func StarStates(rating float64) []bool {
	out := make([]bool, Stars)
	for i := range out {
		out[i] = float64(i) < rating
	}
	return out
}

var funcMap = template.FuncMap{
	"rating":      FormatRating,
	"rateLabel":   RateLabel,
	"section":     sectionLabel,
	"userRating":  UserRatingLabel,
	"stars":       StarStates,
	"inc":         func(i int) int { return i + 1 },
	"placeholder": func() string { return common.PlaceholderPoster },
	"highlight": func(title, query string) catalog.Parts {
		p, _ := catalog.Highlight(title, query)
		return p
	},
}
