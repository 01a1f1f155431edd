package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dvalero/finwallet/internal/logging"
)

// TokenStore is the slice of the credential store the client needs: the
// current bearer token for the request phase, and clearing it as the
// safety net when a 401 arrives with no handler registered.
type TokenStore interface {
	LoadToken(ctx context.Context) (string, bool, error)
	ClearToken(ctx context.Context) error
}

// UnauthorizedHandler is notified when a request fails with HTTP 401.
// The session manager registers itself here to tear the session down.
// Implementations must be idempotent: concurrent 401s may invoke the
// handler more than once.
type UnauthorizedHandler interface {
	HandleUnauthorized(ctx context.Context)
}

// Client is the single choke point for every outbound API call. It attaches
// the bearer token, decodes the response envelope, and escalates 401s to the
// registered UnauthorizedHandler.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	log     logging.Logger

	mu             sync.RWMutex
	onUnauthorized UnauthorizedHandler
}

// New builds a Client for the API at baseURL. A nil httpClient falls back
// to a default client without a timeout; requests then run until they
// complete, fail, or their context is cancelled.
func New(baseURL string, tokens TokenStore, httpClient *http.Client, log logging.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		log:     log,
	}
}

// SetUnauthorizedHandler installs h as the 401 handler. The last
// registration wins; passing nil resets the slot, after which a 401 falls
// back to clearing the stored token directly.
func (c *Client) SetUnauthorizedHandler(h UnauthorizedHandler) {
	c.mu.Lock()
	c.onUnauthorized = h
	c.mu.Unlock()
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.call(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.call(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.call(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil, nil)
}

// envelope is the JSON wrapper every API response uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	token, ok, err := c.tokens.LoadToken(ctx)
	if err != nil {
		// The request proceeds unauthenticated; the server decides.
		c.log.Warn(ctx, "token lookup failed", "error", err)
	} else if ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &DecodeError{Err: err}
	}

	c.log.Debug(ctx, "api call", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode == http.StatusUnauthorized {
		c.notifyUnauthorized(ctx)
		return &StatusError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out == nil && len(data) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return &DecodeError{Err: err}
	}
	if !env.Success {
		return &StatusError{Status: resp.StatusCode, Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// notifyUnauthorized hands the 401 to the registered handler. With no
// handler in place yet (a request can resolve before the session manager
// finishes starting up) the stored token is cleared directly so a stale
// credential does not survive.
func (c *Client) notifyUnauthorized(ctx context.Context) {
	c.mu.RLock()
	h := c.onUnauthorized
	c.mu.RUnlock()

	if h != nil {
		h.HandleUnauthorized(ctx)
		return
	}

	if err := c.tokens.ClearToken(ctx); err != nil {
		c.log.Warn(ctx, "failed to clear token after 401", "error", err)
	}
}

// serverMessage pulls the envelope message out of an error body, if there
// is one to pull.
func serverMessage(data []byte) string {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	if len(env.Errors) > 0 {
		return strings.Join(env.Errors, "; ")
	}
	return ""
}
