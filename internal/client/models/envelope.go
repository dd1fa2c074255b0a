package models

// Envelope is the common part of every backend response.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e Envelope) OK() bool { return e.Success }

// Enveloped is implemented by all response DTOs below.
type Enveloped interface {
	OK() bool
	Reason() string
}

func (e Envelope) Reason() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

type UserResponse struct {
	Envelope
	User User `json:"user"`
}

type MoviesResponse struct {
	Envelope
	Count  int     `json:"count"`
	Movies []Movie `json:"movies"`
}

type MovieResponse struct {
	Envelope
	Movie Movie `json:"movie"`
}

type RatingsResponse struct {
	Envelope
	Count   int      `json:"count"`
	Ratings []Rating `json:"ratings"`
}

type CountResponse struct {
	Envelope
	Count int `json:"count"`
}

type RecentRatingsResponse struct {
	Envelope
	Count  int      `json:"count"`
	Recent []Rating `json:"recent_ratings"`
}

type RateResponse struct {
	Envelope
	RatingID int64 `json:"rating_id"`
}

type RegisterResponse struct {
	Envelope
	UserID int64 `json:"user_id"`
}

type RecommendationsResponse struct {
	Envelope
	Kind  RecommendationKind `json:"type"`
	Items []Recommendation   `json:"recommendations"`
}

func (r RecommendationsResponse) List() RecommendationList {
	return RecommendationList{Kind: r.Kind, Message: r.Message, Items: r.Items}
}

type AddMovieResponse struct {
	Envelope
	MovieID int64 `json:"movie_id"`
}

// SearchMovieRequest is the body of POST /api/search-movie.
type SearchMovieRequest struct {
	Title string `json:"title" validate:"required"`
}

type GenreAverage struct {
	Genre         string  `json:"genre"`
	AverageRating float64 `json:"average_rating"`
}

type StatsResponse struct {
	Envelope
	TotalMovies  int            `json:"total_movies"`
	GenreRatings []GenreAverage `json:"genre_ratings"`
}

// Health is the body of GET /api/health, which carries no envelope.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
