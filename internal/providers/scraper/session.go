package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/sandevgo/medicbot/internal/core"
)

const maxPageSize = 4 << 20

// Session is a scoped set of network resources for one fetch cycle. Pages
// are downloaded at most once per session.
type Session struct {
	client *http.Client
	pages  map[string]*html.Node
}

func NewSession(timeout time.Duration) *Session {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &Session{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		pages: make(map[string]*html.Node),
	}
}

// Page returns the parsed document at url.
func (s *Session) Page(ctx context.Context, url string) (*html.Node, error) {
	if doc, ok := s.pages[url]; ok {
		return doc, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", core.MedicUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("failed to fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, maxPageSize), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", url, err)
	}

	doc, err := html.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}

	s.pages[url] = doc
	return doc, nil
}

func (s *Session) Close() {
	s.client.CloseIdleConnections()
	clear(s.pages)
}
