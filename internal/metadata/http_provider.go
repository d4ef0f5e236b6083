package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

// httpProvider implements Provider against a JSON lookup endpoint.
type httpProvider struct {
	cfg  Config
	http *http.Client
}

// NewHTTPProvider creates a Provider that queries the configured endpoint.
func NewHTTPProvider(cfg Config) Provider {
	return &httpProvider{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// lookupResponse is the JSON body returned by GET /lookup.
type lookupResponse struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Genres   []string `json:"genres"`
	Rating   float64  `json:"rating"`
	Duration float64  `json:"duration"`
	CoverURL string   `json:"cover_url"`
}

func (p *httpProvider) Lookup(ctx context.Context, mediaType domain.MediaType, title string) (*ItemMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(p.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + p.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		meta, err := p.doLookup(ctx, mediaType, title)
		if err == nil {
			return meta, nil
		}
		lastErr = err

		// Don't retry on a definitive miss or on context cancellation.
		if errors.Is(err, ErrNoMatch) || ctx.Err() != nil {
			break
		}
	}

	if errors.Is(lastErr, ErrNoMatch) {
		return nil, ErrNoMatch
	}
	if ctx.Err() != nil || isConnectionError(lastErr) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	}
	return nil, lastErr
}

func (p *httpProvider) doLookup(ctx context.Context, mediaType domain.MediaType, title string) (*ItemMetadata, error) {
	u := fmt.Sprintf("%s/lookup?type=%s&title=%s",
		p.cfg.Endpoint, url.QueryEscape(string(mediaType)), url.QueryEscape(title))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if p.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNoMatch
	default:
		return nil, fmt.Errorf("metadata endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var lr lookupResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	meta := &ItemMetadata{
		Title:            lr.Title,
		Author:           lr.Author,
		ExternalRating:   lr.Rating,
		DurationEstimate: lr.Duration,
		CoverURL:         lr.CoverURL,
	}
	for i, g := range lr.Genres {
		if i > 0 {
			meta.Genres += ", "
		}
		meta.Genres += g
	}
	return meta, nil
}

func (p *httpProvider) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.Endpoint+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
