package scraper

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/filmscores/backend/pkg/fetcher"
	"github.com/filmscores/backend/pkg/logger"
)

// selectFirst tries an ordered chain of CSS selectors and returns the
// first selector's first match. No scoring, strictly first match wins.
func selectFirst(doc *goquery.Document, selectors ...string) *goquery.Selection {
	for _, sel := range selectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	return nil
}

// fetchDocument fetches a page and parses it into a queryable tree.
// Any fetch or parse failure is logged and reported as !ok.
func fetchDocument(ctx context.Context, f *fetcher.Fetcher, url string) (*goquery.Document, bool) {
	result := f.Fetch(ctx, url)
	if !result.OK() {
		logger.Log.Debug().
			Str("url", url).
			Int("status", result.StatusCode).
			Err(result.Err).
			Msg("fetch failed")
		return nil, false
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(result.Body))
	if err != nil {
		logger.Log.Debug().Err(err).Str("url", url).Msg("html parse failed")
		return nil, false
	}
	return doc, true
}

// buildQuery concatenates title and year the way the sites' search
// boxes expect ("Matrix 1999").
func buildQuery(title, year string) string {
	if year != "" {
		return title + " " + year
	}
	return title
}

// resolveURL turns a search-result href into an absolute detail URL,
// prefixing the source origin when the link is relative.
func resolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return strings.TrimSuffix(base, "/") + href
}

// parseDecimalScore parses a score that may use a comma as the decimal
// separator ("8,6"). Returns nil when the text is not numeric.
func parseDecimalScore(raw string) *float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parsePercentScore parses a percentage score ("92%") into its numeric
// value. Returns nil when the text is not numeric.
func parsePercentScore(raw string) *float64 {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
