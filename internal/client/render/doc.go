// Package render turns movies, ratings and favorite flags into display
// fragments. Every function here is pure: it reads its arguments and
// produces output, nothing else.
//
// Two families are provided. The HTML functions (Grid, Detail,
// SearchResults, Loading, ErrorPanel, Recommendations) return
// html/template-escaped fragments carrying data-movie-id and data-action
// attributes for the host page to bind. The *Text functions write the
// same views to a terminal.
package render
