// path: reports/checker.go
package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ExistenceChecker answers whether an id number is known to some authority.
type ExistenceChecker interface {
	CheckExists(ctx context.Context, idNumber string) (bool, error)
}

// HTTPExistenceChecker asks a remote lookup endpoint. One attempt per call,
// bounded by its own deadline; the id number is forwarded as given.
type HTTPExistenceChecker struct {
	URL     string
	Client  *http.Client
	Timeout time.Duration
}

func NewHTTPExistenceChecker(url string) *HTTPExistenceChecker {
	return &HTTPExistenceChecker{
		URL:     url,
		Client:  &http.Client{},
		Timeout: 5 * time.Second,
	}
}

func (c *HTTPExistenceChecker) CheckExists(ctx context.Context, idNumber string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{"idNumber": idNumber})
	if err != nil {
		return false, fmt.Errorf("encode lookup request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("lookup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("lookup returned status %d", resp.StatusCode)
	}

	var out struct {
		Exists bool `json:"exists"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decode lookup response: %w", err)
	}
	return out.Exists, nil
}
