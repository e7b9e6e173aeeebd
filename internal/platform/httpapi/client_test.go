package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, overrides Overrides, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
		Tokens: func(ctx context.Context) (string, error) {
			return token, nil
		},
		Overrides: overrides,
	})
	require.NoError(t, err)
	return client
}

func TestClientAttachesStoredTokenVerbatim(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	client := newTestClient(t, handler, nil, "Bearer stored-token")
	require.NoError(t, client.Get(context.Background(), "/api/profile/user", nil, nil))

	// The stored value goes out unchanged; no prefix is added or stripped.
	assert.Equal(t, "Bearer stored-token", gotAuth)
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var hasAuth bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	})

	client := newTestClient(t, handler, nil, "")
	require.NoError(t, client.Get(context.Background(), "/api/auth/login", nil, nil))
	assert.False(t, hasAuth)
}

func TestClientDecodesSuccessBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"token":"abc","message":"ok"}`))
	})

	client := newTestClient(t, handler, nil, "")

	var out struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	err := client.Post(context.Background(), "/api/auth/login", nil, map[string]string{"email": "a@b.co"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "abc", out.Token)
}

func TestClientMapsUnauthorizedToSessionExpired(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	})

	client := newTestClient(t, handler, nil, "Bearer stale")
	err := client.Get(context.Background(), "/api/profile/user", nil, nil)
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeUnauthorized, apiErr.Code)
	assert.Equal(t, "token expired", apiErr.Detail)
	assert.True(t, errors.Is(err, ErrSessionExpired))
}

func TestClientAppliesResourceOverrides(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"session already booked"}`))
	})

	overrides := Overrides{409: {Code: "SESSION_EXISTS", Message: "لديك جلسة محجوزة بالفعل"}}
	client := newTestClient(t, handler, overrides, "Bearer t")

	err := client.Post(context.Background(), "/students/sessions/book", nil, nil, nil)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, Code("SESSION_EXISTS"), apiErr.Code)
	assert.Equal(t, "لديك جلسة محجوزة بالفعل", apiErr.Message)
	assert.Equal(t, "session already booked", apiErr.Detail)
}

func TestClientNonJSONErrorBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>Bad Gateway</html>"))
	})

	client := newTestClient(t, handler, nil, "")
	err := client.Get(context.Background(), "/api/tutors", nil, nil)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeServer, apiErr.Code)
	assert.Equal(t, "", apiErr.Detail)
}

func TestClientNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing listens anymore

	client, err := NewClient(Config{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)

	callErr := client.Get(context.Background(), "/api/tutors", nil, nil)
	apiErr, ok := AsError(callErr)
	require.True(t, ok)
	assert.Equal(t, CodeNetwork, apiErr.Code)
	assert.Equal(t, 0, apiErr.Status)
	assert.False(t, errors.Is(callErr, ErrSessionExpired))
}

func TestHeadProbe(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	// Any response counts as reachable, even a 503.
	assert.NoError(t, Head(context.Background(), srv.URL, time.Second))

	srv.Close()
	assert.Error(t, Head(context.Background(), srv.URL, time.Second))
}
