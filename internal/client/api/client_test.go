package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dvalero/finwallet/internal/logging"
)

// fakeTokens is an in-memory TokenStore recording ClearToken calls.
type fakeTokens struct {
	mu      sync.Mutex
	token   string
	has     bool
	loadErr error
	cleared int
}

func (f *fakeTokens) LoadToken(ctx context.Context) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, f.has, f.loadErr
}

func (f *fakeTokens) ClearToken(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared++
	f.has = false
	f.token = ""
	return nil
}

type handlerFunc func(ctx context.Context)

func (f handlerFunc) HandleUnauthorized(ctx context.Context) { f(ctx) }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"a1"}}`))
	}))
	defer ts.Close()

	c := New(ts.URL, &fakeTokens{token: "T1", has: true}, nil, testLogger())

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.Get(context.Background(), "/api/Accounts/a1", nil, &out))
	require.Equal(t, "Bearer T1", gotAuth)
	require.NotEmpty(t, gotRequestID)
	require.Equal(t, "a1", out.ID)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	var sawHeader bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	}))
	defer ts.Close()

	c := New(ts.URL, &fakeTokens{}, nil, testLogger())
	require.NoError(t, c.Get(context.Background(), "/api/Accounts", nil, nil))
	require.Empty(t, gotAuth)
	require.False(t, sawHeader)
}

func TestClient_TokenLookupErrorProceedsUnauthenticated(t *testing.T) {
	var sawHeader bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	}))
	defer ts.Close()

	c := New(ts.URL, &fakeTokens{loadErr: errors.New("store corrupt")}, nil, testLogger())
	require.NoError(t, c.Get(context.Background(), "/api/Accounts", nil, nil))
	require.False(t, sawHeader)
}

func TestClient_QueryParameters(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer ts.Close()

	c := New(ts.URL, &fakeTokens{}, nil, testLogger())

	var out []struct{}
	query := map[string][]string{"activeOnly": {"true"}}
	require.NoError(t, c.Get(context.Background(), "/api/Accounts", query, &out))
	require.Equal(t, "activeOnly=true", gotQuery)
}

func TestClient_UnauthorizedInvokesHandlerAndReturnsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"token expired"}`))
	}))
	defer ts.Close()

	tokens := &fakeTokens{token: "stale", has: true}
	c := New(ts.URL, tokens, nil, testLogger())

	var calls int
	c.SetUnauthorizedHandler(handlerFunc(func(ctx context.Context) { calls++ }))

	err := c.Get(context.Background(), "/api/Budgets", nil, nil)
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, 1, calls)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusUnauthorized, se.Status)
	require.Equal(t, "token expired", se.Message)

	// The handler owns the cleanup; no direct clear happened.
	require.Zero(t, tokens.cleared)
}

func TestClient_UnauthorizedSafetyNetClearsToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"unauthorized"}`))
	}))
	defer ts.Close()

	tokens := &fakeTokens{token: "stale", has: true}
	c := New(ts.URL, tokens, nil, testLogger())

	err := c.Get(context.Background(), "/api/Budgets", nil, nil)
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, 1, tokens.cleared)
}

func TestClient_HandlerResetRestoresSafetyNet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	tokens := &fakeTokens{token: "stale", has: true}
	c := New(ts.URL, tokens, nil, testLogger())

	c.SetUnauthorizedHandler(handlerFunc(func(ctx context.Context) {}))
	c.SetUnauthorizedHandler(nil)

	_ = c.Get(context.Background(), "/api/Budgets", nil, nil)
	require.Equal(t, 1, tokens.cleared)
}

func TestClient_OtherStatusesPropagateWithoutCallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"bad request","errors":["amount required"]}`))
	}))
	defer ts.Close()

	c := New(ts.URL, &fakeTokens{}, nil, testLogger())

	var calls int
	c.SetUnauthorizedHandler(handlerFunc(func(ctx context.Context) { calls++ }))

	err := c.Post(context.Background(), "/api/Expenses", map[string]string{}, nil)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusBadRequest, se.Status)
	require.Equal(t, "bad request", se.Message)
	require.NotErrorIs(t, err, ErrUnauthorized)
	require.Zero(t, calls)
}

func TestClient_EnvelopeFailureOn2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"Login failed"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, &fakeTokens{}, nil, testLogger())

	var out struct{}
	err := c.Post(context.Background(), "/api/Auth/login", map[string]string{}, &out)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "Login failed", se.Message)
}

func TestClient_NetworkErrorMatchesUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	c := New(ts.URL, &fakeTokens{}, nil, testLogger())
	err := c.Get(context.Background(), "/api/Accounts", nil, nil)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":`))
	}))
	defer ts.Close()

	c := New(ts.URL, &fakeTokens{}, nil, testLogger())

	var out struct{}
	err := c.Get(context.Background(), "/api/Accounts", nil, &out)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestClient_DeleteWithEmptyBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := New(ts.URL, &fakeTokens{}, nil, testLogger())
	require.NoError(t, c.Delete(context.Background(), "/api/Budgets/b1"))
}

func TestClient_ConcurrentUnauthorizedHandlerIdempotent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	tokens := &fakeTokens{token: "stale", has: true}
	c := New(ts.URL, tokens, nil, testLogger())

	var mu sync.Mutex
	var calls int
	c.SetUnauthorizedHandler(handlerFunc(func(ctx context.Context) {
		mu.Lock()
		calls++
		mu.Unlock()
		_ = tokens.ClearToken(ctx)
	}))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := c.Get(context.Background(), "/api/Budgets", nil, nil)
			require.ErrorIs(t, err, ErrUnauthorized)
		}()
	}
	wg.Wait()

	// Each 401 notifies; the handler must tolerate repeats.
	require.Equal(t, 4, calls)
	_, has, _ := tokens.LoadToken(context.Background())
	require.False(t, has)
}
