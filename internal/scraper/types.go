package scraper

import "context"

type Source string

const (
	SourceFilmweb        Source = "Filmweb"
	SourceIMDb           Source = "IMDb"
	SourceRottenTomatoes Source = "Rotten Tomatoes"
)

// RatingSource is the outcome of one site lookup. A nil Rating means
// "not found or unparseable" and is an expected value, not an error;
// exactly one RatingSource per requested source is always produced.
type RatingSource struct {
	Source Source   `json:"source"`
	Rating *float64 `json:"rating"`
	// VoteCount stays a raw string because sites abbreviate it ("10k").
	VoteCount string `json:"vote_count,omitempty"`
	URL       string `json:"url,omitempty"`
}

// CombinedMovieData holds all three source outcomes for one query,
// always ordered [Filmweb, IMDb, Rotten Tomatoes].
type CombinedMovieData struct {
	QueryTitle string         `json:"query_title"`
	Year       string         `json:"year,omitempty"`
	Ratings    []RatingSource `json:"ratings"`
}

// UserRating is one interpreted entry from a profile's rating history.
// Ambiguous entries are dropped, never emitted with a zero rating.
type UserRating struct {
	Title      string `json:"title"`
	UserRating int    `json:"user_rating"`
	Timestamp  string `json:"timestamp,omitempty"`
}

// SourceScraper resolves a (title, year) query against one rating
// site. Scrape never fails outward: every internal failure collapses
// into a RatingSource with a nil Rating.
type SourceScraper interface {
	Source() Source
	Scrape(ctx context.Context, title, year string) RatingSource
}
