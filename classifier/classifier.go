// Package classifier talks to the external category-prediction service.
// The service is opaque: it maps a transaction title to a spending
// category label.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable wraps every transport or upstream failure so callers can
// distinguish "classification unavailable" from their own errors and pick
// a policy: the add-transaction flow treats it as fatal, bulk reclassify
// treats it as a per-item miss.
var ErrUnavailable = errors.New("classifier unavailable")

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type predictRequest struct {
	Title string `json:"title"`
}

type predictResponse struct {
	Category string `json:"category"`
}

// PredictCategory asks the service to label title.
func (c *Client) PredictCategory(ctx context.Context, title string) (string, error) {
	body, err := json.Marshal(predictRequest{Title: title})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict-category", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: bad response: %v", ErrUnavailable, err)
	}
	if out.Category == "" {
		return "", fmt.Errorf("%w: empty category", ErrUnavailable)
	}
	return out.Category, nil
}
