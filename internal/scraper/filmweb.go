package scraper

import (
	"context"
	"net/url"
	"strings"

	"github.com/filmscores/backend/pkg/fetcher"
)

const filmwebBaseURL = "https://www.filmweb.pl"

// Filmweb resolves ratings on filmweb.pl. Scores there use a comma as
// the decimal separator and expose a separate vote-count text node.
type Filmweb struct {
	fetcher *fetcher.Fetcher
	baseURL string
}

func NewFilmweb(f *fetcher.Fetcher) *Filmweb {
	return &Filmweb{fetcher: f, baseURL: filmwebBaseURL}
}

func (s *Filmweb) Source() Source { return SourceFilmweb }

func (s *Filmweb) Scrape(ctx context.Context, title, year string) RatingSource {
	out := RatingSource{Source: SourceFilmweb}

	searchURL := s.baseURL + "/search?q=" + url.QueryEscape(buildQuery(title, year))
	doc, ok := fetchDocument(ctx, s.fetcher, searchURL)
	if !ok {
		return out
	}

	link := selectFirst(doc, ".resultsList .preview__link", ".searchResult__link")
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

	if tag := selectFirst(detail, ".filmRating__rateValue"); tag != nil {
		out.Rating = parseDecimalScore(tag.Text())
	}
	if tag := selectFirst(detail, ".filmRating__count"); tag != nil {
		out.VoteCount = strings.TrimSpace(tag.Text())
	}

	return out
}
