package fetcher

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout = 30 * time.Second

	// Browser-like defaults so the rating sites don't block us outright.
	defaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	defaultAcceptLanguage = "pl-PL,pl;q=0.9,en-US;q=0.8,en;q=0.7"

	maxBodySize = 5 * 1024 * 1024
)

// Fetcher issues GET requests with a fixed header set and converts
// every failure mode into a Result value. It never returns an error.
type Fetcher struct {
	client         *http.Client
	userAgent      string
	acceptLanguage string
}

type Option func(*Fetcher)

func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = timeout
	}
}

func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

func WithAcceptLanguage(lang string) Option {
	return func(f *Fetcher) {
		if lang != "" {
			f.acceptLanguage = lang
		}
	}
}

func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:      defaultUserAgent,
		acceptLanguage: defaultAcceptLanguage,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Result is the outcome of one fetch. Network errors, timeouts and
// non-2xx statuses all surface here instead of as returned errors.
type Result struct {
	URL        string
	FinalURL   string
	StatusCode int
	Body       []byte
	Err        error
}

// OK reports whether the fetch produced a usable 2xx body.
func (r *Result) OK() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

func (f *Fetcher) Fetch(ctx context.Context, url string) *Result {
	result := &Result{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Err = err
		return result
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", f.acceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.FinalURL = resp.Request.URL.String()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		result.Err = err
		return result
	}
	result.Body = body

	return result
}

// Close releases idle connections. Callers scope one Fetcher to one
// logical request and defer Close on every exit path.
func (f *Fetcher) Close() {
	f.client.CloseIdleConnections()
}
