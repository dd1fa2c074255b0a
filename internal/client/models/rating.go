package models

// Rating is one of the user's ratings as listed by GET /api/user/{id}/ratings.
// The backend embeds a few movie fields for display.
type Rating struct {
	RatingID   int64   `json:"rating_id,omitempty"`
	MovieID    int64   `json:"movie_id"`
	UserRating float64 `json:"user_rating"`
	RatingDate string  `json:"rating_date,omitempty"`

	Title     string  `json:"title,omitempty"`
	Year      int     `json:"year,omitempty"`
	Genre     string  `json:"genre,omitempty"`
	PosterURL string  `json:"poster_url,omitempty"`
	IMDbScore float64 `json:"imdb_rating,omitempty"`
}

// RateRequest is the body of POST /api/rate.
type RateRequest struct {
	UserID  int64 `json:"user_id" validate:"required,gt=0"`
	MovieID int64 `json:"movie_id" validate:"required,gt=0"`
	Rating  int   `json:"rating" validate:"gte=1,lte=10"`
}

// RatingIndex maps movie id to the user's rating value.
type RatingIndex map[int64]float64

// IndexRatings builds a RatingIndex. Later entries win on duplicate ids.
func IndexRatings(rs []Rating) RatingIndex {
	idx := make(RatingIndex, len(rs))
	for _, r := range rs {
		idx[r.MovieID] = r.UserRating
	}
	return idx
}

// For returns the rating of movieID, or 0 when it is unrated.
func (i RatingIndex) For(movieID int64) float64 {
	return i[movieID]
}
