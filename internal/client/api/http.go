package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/johntran041/jobly-client/internal/common"
	"github.com/johntran041/jobly-client/internal/logging"
)

// HTTPClient is the concrete REST transport. It implements AuthAPI, CartAPI,
// CatalogAPI and JobsAPI. Safe for concurrent use.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

// New constructs an HTTPClient for the given base URL, e.g.
// "http://localhost:5001/api". A trailing slash is trimmed.
func New(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

// SetToken installs the bearer token attached to subsequent requests.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the bearer token; subsequent requests go out anonymous.
func (c *HTTPClient) ClearToken() {
	c.SetToken("")
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues a request and decodes the envelope's data field into out (which
// may be nil when the caller only cares about success). body, if non-nil, is
// JSON-encoded.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if token := c.currentToken(); token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp.StatusCode, &env, decodeErr)
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// mapError turns a non-2xx response into a sentinel or *Error. The server
// message is carried along when the body was parsable.
func (c *HTTPClient) mapError(code int, env *envelope, decodeErr error) error {
	msg := ""
	if decodeErr == nil {
		msg = env.Message
	}
	switch code {
	case http.StatusUnauthorized:
		if msg != "" {
			return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
		}
		return common.ErrUnauthorized
	case http.StatusNotFound:
		if msg != "" {
			return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
		}
		return common.ErrNotFound
	}
	if msg == "" {
		msg = genericFailure
	}
	return &Error{StatusCode: code, Message: msg}
}
