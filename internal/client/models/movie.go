package models

import (
	"fmt"
	"strings"
)

// Movie is a catalog entry. Zero ratings mean the value is unknown.
type Movie struct {
	ID                   int64   `json:"id"`
	Title                string  `json:"title" validate:"required"`
	Year                 int     `json:"year,omitempty" validate:"omitempty,gte=1888,lte=2100"`
	Genre                string  `json:"genre,omitempty"`
	Actors               string  `json:"actors,omitempty"`
	Description          string  `json:"description,omitempty"`
	PosterURL            string  `json:"poster_url,omitempty" validate:"omitempty,url"`
	BackdropURL          string  `json:"backdrop_url,omitempty"`
	TrailerURL           string  `json:"trailer_url,omitempty"`
	IMDbRating           float64 `json:"imdb_rating,omitempty" validate:"gte=0,lte=10"`
	RottenTomatoesRating float64 `json:"rotten_tomatoes_rating,omitempty" validate:"gte=0,lte=100"`

	// AverageRating is the community average returned by GET /api/movies/{id}.
	AverageRating float64 `json:"user_rating,omitempty"`
}

// IMDbLabel renders the IMDb score or "N/A".
func (m Movie) IMDbLabel() string {
	if m.IMDbRating <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", m.IMDbRating)
}

// RottenTomatoesLabel renders the Tomatometer as a percentage or "N/A".
func (m Movie) RottenTomatoesLabel() string {
	if m.RottenTomatoesRating <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.0f%%", m.RottenTomatoesRating)
}

// Poster returns the poster URL or the shared placeholder.
func (m Movie) Poster(placeholder string) string {
	if strings.TrimSpace(m.PosterURL) == "" {
		return placeholder
	}
	return m.PosterURL
}

// Trailer returns the trailer URL or fallback.
func (m Movie) Trailer(fallback string) string {
	if strings.TrimSpace(m.TrailerURL) == "" {
		return fallback
	}
	return m.TrailerURL
}
