package favorites

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/common"
)

// ID identifies a favorite: either a catalog movie id or the reserved
// featured marker. The two never collide.
type ID struct {
	movie    int64
	featured bool
}

// Featured is the reserved id used when the spotlight movie is not in the
// catalog.
var Featured = ID{featured: true}

func Movie(id int64) ID { return ID{movie: id} }

func (id ID) IsFeatured() bool { return id.featured }

// MovieID returns the catalog id and false for the featured marker.
func (id ID) MovieID() (int64, bool) {
	if id.featured {
		return 0, false
	}
	return id.movie, true
}

func (id ID) String() string {
	if id.featured {
		return common.FeaturedFavoriteID
	}
	return strconv.FormatInt(id.movie, 10)
}

// ParseID accepts a decimal movie id, "featured" or "featured_movie".
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "featured" || s == common.FeaturedFavoriteID {
		return Featured, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return ID{}, fmt.Errorf("%w: favorite id %q", common.ErrInvalidInput, s)
	}
	return Movie(n), nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.featured {
		return json.Marshal(common.FeaturedFavoriteID)
	}
	return json.Marshal(id.movie)
}

// UnmarshalJSON reads numbers, numeric strings and the featured marker.
func (id *ID) UnmarshalJSON(b []byte) error {
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		if n <= 0 {
			return fmt.Errorf("%w: favorite id %d", common.ErrInvalidInput, n)
		}
		*id = Movie(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("favorite id: %w", err)
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ResolveFeatured maps the spotlight title to its catalog id, or to
// Featured when the catalog does not carry it.
func ResolveFeatured(catalog []models.Movie, title string) ID {
	for _, m := range catalog {
		if m.Title == title {
			return Movie(m.ID)
		}
	}
	return Featured
}
