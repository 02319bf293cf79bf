package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestSelectFirst_ChainOrder(t *testing.T) {
	doc := mustDoc(t, `<div class="secondary">B</div><div class="primary">A</div>`)

	tests := []struct {
		name      string
		selectors []string
		want      string
	}{
		{
			name:      "first selector wins even when both match",
			selectors: []string{".primary", ".secondary"},
			want:      "A",
		},
		{
			name:      "falls back when first selector misses",
			selectors: []string{".missing", ".secondary"},
			want:      "B",
		},
		{
			name:      "no selector matches",
			selectors: []string{".missing", ".also-missing"},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := selectFirst(doc, tt.selectors...)
			if tt.want == "" {
				if sel != nil {
					t.Fatalf("expected no match, got %q", sel.Text())
				}
				return
			}
			if sel == nil {
				t.Fatal("expected a match, got nil")
			}
			if got := sel.Text(); got != tt.want {
				t.Errorf("selectFirst() text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDecimalScore(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		none bool
	}{
		{raw: "8,6", want: 8.6},
		{raw: " 8,6 \n", want: 8.6},
		{raw: "7.5", want: 7.5},
		{raw: "10", want: 10},
		{raw: "", none: true},
		{raw: "brak ocen", none: true},
		{raw: "8,6/10", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := parseDecimalScore(tt.raw)
			if tt.none {
				if got != nil {
					t.Fatalf("parseDecimalScore(%q) = %v, want nil", tt.raw, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("parseDecimalScore(%q) = nil, want %v", tt.raw, tt.want)
			}
			if *got != tt.want {
				t.Errorf("parseDecimalScore(%q) = %v, want %v", tt.raw, *got, tt.want)
			}
		})
	}
}

func TestParsePercentScore(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		none bool
	}{
		{raw: "92%", want: 92},
		{raw: " 92% ", want: 92},
		{raw: "92 %", want: 92},
		{raw: "100%", want: 100},
		{raw: "--", none: true},
		{raw: "", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := parsePercentScore(tt.raw)
			if tt.none {
				if got != nil {
					t.Fatalf("parsePercentScore(%q) = %v, want nil", tt.raw, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("parsePercentScore(%q) = nil, want %v", tt.raw, tt.want)
			}
			if *got != tt.want {
				t.Errorf("parsePercentScore(%q) = %v, want %v", tt.raw, *got, tt.want)
			}
		})
	}
}

func TestParseScores_Idempotent(t *testing.T) {
	// Normalization is a pure function: repeated runs on the same raw
	// text must agree.
	for i := 0; i < 3; i++ {
		if got := parseDecimalScore("8,6"); got == nil || *got != 8.6 {
			t.Fatalf("run %d: parseDecimalScore changed its answer: %v", i, got)
		}
		if got := parsePercentScore("92%"); got == nil || *got != 92 {
			t.Fatalf("run %d: parsePercentScore changed its answer: %v", i, got)
		}
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		href string
		want string
	}{
		{
			name: "relative film link against the filmweb origin",
			base: "https://www.filmweb.pl",
			href: "/film/12345",
			want: "https://www.filmweb.pl/film/12345",
		},
		{
			name: "absolute link kept as-is",
			base: "https://www.rottentomatoes.com",
			href: "https://www.rottentomatoes.com/m/the_matrix",
			want: "https://www.rottentomatoes.com/m/the_matrix",
		},
		{
			name: "trailing slash on the base",
			base: "https://www.imdb.com/",
			href: "/title/tt0133093/",
			want: "https://www.imdb.com/title/tt0133093/",
		},
		{
			name: "empty href",
			base: "https://www.filmweb.pl",
			href: "",
			want: "",
		},
		{
			name: "whitespace href",
			base: "https://www.filmweb.pl",
			href: "  ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveURL(tt.base, tt.href); got != tt.want {
				t.Errorf("resolveURL(%q, %q) = %q, want %q", tt.base, tt.href, got, tt.want)
			}
		})
	}
}

func TestBuildQuery(t *testing.T) {
	if got := buildQuery("Matrix", "1999"); got != "Matrix 1999" {
		t.Errorf("buildQuery with year = %q", got)
	}
	if got := buildQuery("Matrix", ""); got != "Matrix" {
		t.Errorf("buildQuery without year = %q", got)
	}
}
