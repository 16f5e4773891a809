// Package source provides the places a dataset can be read from.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// HTTP fetches the dataset with a single GET.
type HTTP struct {
	URL    string
	Client *http.Client
}

// NewHTTP returns an HTTP source whose client gives up after timeout.
func NewHTTP(url string, timeout time.Duration) *HTTP {
	return &HTTP{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTP) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", h.URL, err)
	}
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET %s: %w", h.URL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP GET %s: status %d", h.URL, resp.StatusCode)
	}
	return resp.Body, nil
}

// File reads a snapshot saved on disk.
type File struct {
	Path string
}

func (f File) Open(context.Context) (io.ReadCloser, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Path, err)
	}
	return fh, nil
}
