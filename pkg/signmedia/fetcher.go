package signmedia

import (
	"context"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout   = 10 * time.Second
	maxRedirects     = 5
	defaultUserAgent = "Mozilla/5.0 (compatible; SignBridge/1.0)"
)

// Page is a fetched document.
type Page struct {
	URL    string
	Status int
	Body   []byte
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

type httpFetcher struct {
	client *fasthttp.Client
}

// NewFetcher returns a GET-only fetcher that follows redirects and bounds
// every read and write by timeout.
func NewFetcher(timeout time.Duration) Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &httpFetcher{
		client: &fasthttp.Client{
			Name:                defaultUserAgent,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxConnWaitTimeout:  timeout,
			MaxIdleConnDuration: 30 * time.Second,
		},
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	if err := f.client.DoRedirects(req, resp, maxRedirects); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())

	return &Page{
		URL:    url,
		Status: resp.StatusCode(),
		Body:   body,
	}, nil
}
