package scraper

import (
	"context"
	"net/url"

	"github.com/filmscores/backend/pkg/fetcher"
)

const rottenTomatoesBaseURL = "https://www.rottentomatoes.com"

// RottenTomatoes resolves the Tomatometer on rottentomatoes.com. The
// score is a percentage; no reliable vote-count selector exists, so
// VoteCount is never populated for this source.
type RottenTomatoes struct {
	fetcher *fetcher.Fetcher
	baseURL string
}

func NewRottenTomatoes(f *fetcher.Fetcher) *RottenTomatoes {
	return &RottenTomatoes{fetcher: f, baseURL: rottenTomatoesBaseURL}
}

func (s *RottenTomatoes) Source() Source { return SourceRottenTomatoes }

func (s *RottenTomatoes) Scrape(ctx context.Context, title, _ string) RatingSource {
	out := RatingSource{Source: SourceRottenTomatoes}

	// The search box ranks poorly with a trailing year, so only the
	// title is sent.
	searchURL := s.baseURL + "/search?search=" + url.QueryEscape(title)
	doc, ok := fetchDocument(ctx, s.fetcher, searchURL)
	if !ok {
		return out
	}

	link := selectFirst(doc,
		`search-page-result[type="movie"] a`,
		"#search-results movie-search-result-container a",
	)
	if link == nil {
		return out
	}
	href, _ := link.Attr("href")
	detailURL := resolveURL(s.baseURL, href)
	if detailURL == "" {
		return out
	}
	out.URL = detailURL

	detail, ok := fetchDocument(ctx, s.fetcher, detailURL)
	if !ok {
		return out
	}

	if tag := selectFirst(detail,
		`rt-button[slot="criticsScore"] rt-text`,
		"score-board-band rt-text",
	); tag != nil {
		out.Rating = parsePercentScore(tag.Text())
	}

	return out
}
