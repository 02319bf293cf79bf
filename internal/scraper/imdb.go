package scraper

import (
	"context"
	"net/url"
	"strings"

	"github.com/filmscores/backend/pkg/fetcher"
)

const imdbBaseURL = "https://www.imdb.com"

// IMDb resolves ratings on imdb.com. The find endpoint is queried in
// title-only mode (s=tt); the aggregate score lives in a data-testid
// container, with the vote count as its adjacent sibling.
type IMDb struct {
	fetcher *fetcher.Fetcher
	baseURL string
}

func NewIMDb(f *fetcher.Fetcher) *IMDb {
	return &IMDb{fetcher: f, baseURL: imdbBaseURL}
}

func (s *IMDb) Source() Source { return SourceIMDb }

func (s *IMDb) Scrape(ctx context.Context, title, year string) RatingSource {
	out := RatingSource{Source: SourceIMDb}

	searchURL := s.baseURL + "/find?q=" + url.QueryEscape(buildQuery(title, year)) + "&s=tt"
	doc, ok := fetchDocument(ctx, s.fetcher, searchURL)
	if !ok {
		return out
	}

	link := selectFirst(doc, ".ipc-metadata-list-summary-item__t")
	if link == nil {
		return out
	}
	href, _ := link.Attr("href")
	detailURL := resolveURL(s.baseURL, href)
	if detailURL == "" {
		return out
	}
	// Result hrefs carry tracking params (?ref_=fn_...); drop them.
	if i := strings.Index(detailURL, "?"); i >= 0 {
		detailURL = detailURL[:i]
	}
	out.URL = detailURL

	detail, ok := fetchDocument(ctx, s.fetcher, detailURL)
	if !ok {
		return out
	}

	if tag := selectFirst(detail, `[data-testid="hero-rating-bar__aggregate-rating__score"] span`); tag != nil {
		out.Rating = parseDecimalScore(tag.Text())
	}
	if tag := selectFirst(detail, `div[data-testid="hero-rating-bar__aggregate-rating__score"] ~ div`); tag != nil {
		out.VoteCount = strings.TrimSpace(tag.Text())
	}

	return out
}
