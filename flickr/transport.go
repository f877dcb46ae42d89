package flickr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

const userAgent = "flickr-client (Go)"

// Transport sends a GET for url and returns the raw response body.
type Transport interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Downloader is implemented by transports that can stream a body.
type Downloader interface {
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}

type HTTPTransport struct {
	http *http.Client
}

// NewHTTPTransport returns a Transport backed by httpClient, or by a fresh
// http.Client when httpClient is nil.
func NewHTTPTransport(httpClient *http.Client) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPTransport{http: httpClient}
}

type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: %d %s: %s", e.StatusCode, e.Status, e.Body)
}

func (t *HTTPTransport) Get(ctx context.Context, url string) ([]byte, error) {
	body, err := t.Download(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

func (t *HTTPTransport) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := t.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			body = nil
		}
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}
	return resp.Body, nil
}

// Download fetches url (typically an image source) through the client's
// transport.
func (c *Client) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	if d, ok := c.transport.(Downloader); ok {
		return d.Download(ctx, url)
	}
	body, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}
