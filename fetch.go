package wgslspec

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// FetchError reports a failed document download: a connection error, a
// timeout or a non-success response.
type FetchError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: %s", e.URL, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetch downloads url as text with a blocking GET. timeout bounds the whole
// exchange, including reading the body.
func Fetch(ctx context.Context, url string, timeout time.Duration) (string, error) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", &FetchError{URL: url, Err: errors.Wrap(err, "build request")}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: errors.Wrap(err, "request")}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: errors.Wrap(err, "read body")}
	}
	return string(body), nil
}
