// Package placeholder fetches stand-in logo images from a seeded image
// service.
package placeholder

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/kenone20/domainogen/pkg/telemetry"
)

const (
	imageSize     = 400
	maxImageBytes = 5 << 20
)

// Fetcher downloads {base}/seed/{seed}/400.
type Fetcher struct {
	base   string
	client *http.Client
}

// New returns a Fetcher for baseURL.
func New(baseURL string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		base:   strings.TrimRight(baseURL, "/"),
		client: telemetry.NewHTTPClient(timeout),
	}
}

// Fetch returns the image bytes for seed. Non-2xx statuses and non-image
// bodies are errors.
func (f *Fetcher) Fetch(ctx context.Context, seed string) ([]byte, error) {
	u := fmt.Sprintf("%s/seed/%s/%d", f.base, url.PathEscape(seed), imageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("placeholder: build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("placeholder: get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("placeholder: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("placeholder: read body: %w", err)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("placeholder: body is %s, not an image", mt.String())
	}
	return data, nil
}
