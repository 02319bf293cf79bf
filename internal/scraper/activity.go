package scraper

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ratedPhrase marks a rating statement in free-text entry bodies
// ("Jan ocenił na 7 ...").
const ratedPhrase = "ocenił na"

// RecentActivity parses a user's public profile into their rating
// history, in document order. Entries are interpreted structured-first
// (a dedicated rating element), falling back to scanning the entry
// text for the rating phrase. Entries yielding neither are dropped.
// Any fetch or top-level parse failure yields an empty list.
func (s *Filmweb) RecentActivity(ctx context.Context, username string) []UserRating {
	ratings := []UserRating{}

	profileURL := s.baseURL + "/user/" + url.PathEscape(username)
	doc, ok := fetchDocument(ctx, s.fetcher, profileURL)
	if !ok {
		return ratings
	}

	doc.Find(".voteCommentBox").Each(func(_ int, entry *goquery.Selection) {
		title := strings.TrimSpace(entry.Find(".filmTitle").First().Text())
		if title == "" {
			return
		}

		value, ok := entryRating(entry)
		if !ok {
			return
		}

		rating := UserRating{Title: title, UserRating: value}
		if ts, exists := entry.Find("time").First().Attr("datetime"); exists {
			rating.Timestamp = ts
		}
		ratings = append(ratings, rating)
	})

	return ratings
}

func entryRating(entry *goquery.Selection) (int, bool) {
	if tag := entry.Find(".userRate").First(); tag.Length() > 0 {
		if v, err := strconv.Atoi(strings.TrimSpace(tag.Text())); err == nil {
			return v, true
		}
	}

	// Free-text fallback: the leading integer token after the phrase.
	box := entry.Find(".span-10").First()
	if box.Length() == 0 {
		return 0, false
	}
	_, after, found := strings.Cut(box.Text(), ratedPhrase)
	if !found {
		return 0, false
	}
	fields := strings.Fields(after)
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return v, true
}
