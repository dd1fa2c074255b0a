package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/cineia/internal/client/models"
)

// MaxResults caps the dropdown of the search box.
const MaxResults = 8

// Result of a title search. Hidden means the query was blank and nothing
// should be shown; a visible result with no movies is the "not found" case.
type Result struct {
	Hidden bool
	Query  string
	Movies []models.Movie
}

func (r Result) NotFound() bool {
	return !r.Hidden && len(r.Movies) == 0
}

// Search returns up to MaxResults movies whose title contains query,
// ignoring case, in catalog order.
func Search(movies []models.Movie, query string) Result {
	q := strings.TrimSpace(query)
	if q == "" {
		return Result{Hidden: true}
	}

	out := make([]models.Movie, 0, MaxResults)
	for _, m := range movies {
		if _, _, ok := indexFold(m.Title, q); ok {
			out = append(out, m)
			if len(out) == MaxResults {
				break
			}
		}
	}
	return Result{Query: q, Movies: out}
}

// Parts splits a title around the first case-insensitive match.
type Parts struct {
	Before, Match, After string
}

// Highlight locates the first occurrence of query in title. ok is false
// when there is no match or the query is blank; Before then holds the whole
// title.
func Highlight(title, query string) (p Parts, ok bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Parts{Before: title}, false
	}
	start, end, found := indexFold(title, q)
	if !found {
		return Parts{Before: title}, false
	}
	return Parts{Before: title[:start], Match: title[start:end], After: title[end:]}, true
}

// indexFold finds sub in s under Unicode case folding and returns byte
// offsets into s.
func indexFold(s, sub string) (start, end int, ok bool) {
	n := utf8.RuneCountInString(sub)
	for i := range s {
		j := i
		for k := 0; k < n && j < len(s); k++ {
			_, size := utf8.DecodeRuneInString(s[j:])
			j += size
		}
		if strings.EqualFold(s[i:j], sub) {
			return i, j, true
		}
	}
	return 0, 0, false
}
