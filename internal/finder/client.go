package finder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"carpark-finder/config"
	"carpark-finder/internal/model"
	"carpark-finder/internal/sanitize"
)

const (
	findCarparkPath = "/find-carpark"
	maxBodyBytes    = 1 << 20
	maxExcerptRunes = 200
)

// Client queries the nearest-carpark backend.
type Client struct {
	cfg    *config.BackendConfig
	client *http.Client
}

// NewClient creates a backend client from the backend configuration.
func NewClient(cfg *config.BackendConfig) *Client {
	var transport http.RoundTripper = http.DefaultTransport
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			log.Printf("Warning: Invalid proxy URL %q: %v. Backend client will not use a proxy.", cfg.HTTPProxy, err)
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	return &Client{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}
}

// FindCarpark asks the backend for the nearest carpark with available lots.
//
// A non-2xx answer with a JSON object body yields a *BackendError. Every other
// failure, including an undecodable body, wraps ErrUnavailable. Cancellation of
// ctx is returned as the context's error.
func (c *Client) FindCarpark(ctx context.Context, postcode string) (*model.CarparkResult, error) {
	reqURL := c.cfg.BaseURL + findCarparkPath + "?" + url.Values{"postcode": {postcode}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	for key, value := range c.cfg.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: http request failed: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeFailure(resp.StatusCode, body)
	}

	var result *model.CarparkResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal carpark response: %v", ErrUnavailable, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: empty carpark response", ErrUnavailable)
	}
	return result, nil
}

// decodeFailure turns a non-2xx body into the matching error bucket.
func decodeFailure(status int, body []byte) error {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("%w: status %d with undecodable body %q: %v", ErrUnavailable, status, excerpt(body), err)
	}
	if payload == nil {
		return fmt.Errorf("%w: status %d with null body", ErrUnavailable, status)
	}

	backendErr := &BackendError{StatusCode: status}
	if obj, ok := payload.(map[string]any); ok {
		if msg, ok := obj["error"].(string); ok {
			backendErr.Message = msg
		}
	}
	return backendErr
}

// excerpt reduces a non-JSON body, usually a proxy's HTML error page, to a
// short plain-text fragment for logs.
func excerpt(body []byte) string {
	text := []rune(sanitize.Text(string(body)))
	if len(text) > maxExcerptRunes {
		return string(text[:maxExcerptRunes]) + "..."
	}
	return string(text)
}
