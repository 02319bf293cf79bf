package scraper

import (
	"context"
	"sync"

	"github.com/filmscores/backend/pkg/fetcher"
)

// Aggregator fans one query out to every source concurrently and joins
// the results in fixed source order.
type Aggregator struct {
	scrapers []SourceScraper
}

// NewAggregator wires the three sources against one shared fetcher.
// The slice order is the output order: Filmweb, IMDb, Rotten Tomatoes.
func NewAggregator(f *fetcher.Fetcher) *Aggregator {
	return &Aggregator{
		scrapers: []SourceScraper{
			NewFilmweb(f),
			NewIMDb(f),
			NewRottenTomatoes(f),
		},
	}
}

// CombinedRatings runs every source scraper concurrently and waits for
// all of them to settle. Each result lands in a slot indexed by source
// identity, so the output order never depends on completion order.
// There is no short-circuit: failure is already absorbed into a valid
// RatingSource, so the join always yields exactly one entry per source.
func (a *Aggregator) CombinedRatings(ctx context.Context, title, year string) CombinedMovieData {
	ratings := make([]RatingSource, len(a.scrapers))

	var wg sync.WaitGroup
	for i, s := range a.scrapers {
		wg.Add(1)
		go func(i int, s SourceScraper) {
			defer wg.Done()
			ratings[i] = s.Scrape(ctx, title, year)
		}(i, s)
	}
	wg.Wait()

	return CombinedMovieData{
		QueryTitle: title,
		Year:       year,
		Ratings:    ratings,
	}
}
