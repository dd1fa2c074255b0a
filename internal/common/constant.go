package common

// Well-known storage keys shared by the browser front-end and this client.
const (
	KeyFavorites = "cineia_favorites"
	KeyUser      = "user"
	KeyIsAdmin   = "userIsAdmin"
	KeyBanner    = "userBanner"
	KeyAvatar    = "userAvatar"
)

// RequestIDHeaderName carries a per-call correlation id on outbound requests.
const RequestIDHeaderName = "X-Request-ID"

// Spotlight movie shown on the home page. When the catalog does not contain
// it, favorites store it under FeaturedFavoriteID.
const (
	FeaturedTitle      = "Duna: Parte Dois"
	FeaturedFavoriteID = "featured_movie"
	DefaultTrailerURL  = "https://www.youtube.com/embed/0q6yphdZhUA"
	PlaceholderPoster  = "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=300&h=450&fit=crop"
)
