package models

// RecommendationKind tells AI-generated lists from the generic fallback.
type RecommendationKind string

const (
	RecommendationAI      RecommendationKind = "ai"
	RecommendationGeneral RecommendationKind = "general"
)

type Recommendation struct {
	ID         int64   `json:"id,omitempty"`
	Title      string  `json:"title"`
	Year       int     `json:"year,omitempty"`
	Genre      string  `json:"genre,omitempty"`
	PosterURL  string  `json:"poster_url,omitempty"`
	IMDbRating float64 `json:"imdb_rating,omitempty"`
	Reason     string  `json:"reason,omitempty"`
	Mood       string  `json:"mood,omitempty"`
}

type RecommendationList struct {
	Kind    RecommendationKind `json:"type"`
	Message string             `json:"message,omitempty"`
	Items   []Recommendation   `json:"recommendations"`

	// Fallback is set when the list was built locally from the catalog.
	Fallback bool `json:"-"`
}

// RecommendationFromMovie converts a catalog entry for the fallback list.
func RecommendationFromMovie(m Movie) Recommendation {
	return Recommendation{
		ID:         m.ID,
		Title:      m.Title,
		Year:       m.Year,
		Genre:      m.Genre,
		PosterURL:  m.PosterURL,
		IMDbRating: m.IMDbRating,
	}
}
