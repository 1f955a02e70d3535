package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookadmin/internal/client"
	"bookadmin/internal/session"
)

// newTestSession returns a session backed by a throwaway file store.
func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	return session.New(session.FileStore{Path: filepath.Join(t.TempDir(), "credentials.json")})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*client.Client, *session.Session) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	sess := newTestSession(t)
	return client.New(server.URL, sess), sess
}

func TestAuthPostureWithToken(t *testing.T) {
	var gotAuth, gotBypass string
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBypass = r.Header.Get("X-Dev-Bypass")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	require.NoError(t, sess.Login("token-abc"))

	_, err := c.ListBooks(context.Background())
	require.NoError(t, err)

	// credential present => bearer header, no bypass marker
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Empty(t, gotBypass)
}

func TestAuthPostureWithoutToken(t *testing.T) {
	var gotAuth, gotBypass string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBypass = r.Header.Get("X-Dev-Bypass")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := c.ListBooks(context.Background())
	require.NoError(t, err)

	// no credential => bypass marker only
	assert.Empty(t, gotAuth)
	assert.Equal(t, "1", gotBypass)
}

func TestAuthPostureAfterLogout(t *testing.T) {
	var gotAuth, gotBypass string
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBypass = r.Header.Get("X-Dev-Bypass")
		w.Write([]byte(`[]`))
	})
	require.NoError(t, sess.Login("token-abc"))
	require.NoError(t, sess.Logout())

	_, err := c.ListBooks(context.Background())
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
	assert.Equal(t, "1", gotBypass)
}

func TestRequestIDAttached(t *testing.T) {
	var requestID string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	})

	_, err := c.ListBooks(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, requestID)
}

// A 403 is classified as unauthorized regardless of body; a 500 is a server
// rejection carrying the body's message.
func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind client.Kind
	}{
		{"forbidden", http.StatusForbidden, `{"error":"nope"}`, client.KindUnauthorized},
		{"unauthenticated", http.StatusUnauthorized, ``, client.KindUnauthorized},
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, client.KindServerRejected},
		{"conflict", http.StatusConflict, `{"error":"taken"}`, client.KindServerRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.ListBooks(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, client.KindOf(err))
		})
	}
}

func TestServerRejectedCarriesMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"title already taken"}`))
	})

	_, err := c.CreateGenre(context.Background(), client.GenreRequest{Name: "Horror"})
	require.Error(t, err)

	var apiErr *client.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindServerRejected, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "title already taken", apiErr.Message)
}

func TestMalformedResponse(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	_, err := c.ListBooks(context.Background())
	require.Error(t, err)
	assert.Equal(t, client.KindMalformedResponse, client.KindOf(err))
}

// A configured timeout is honored: a response slower than it surfaces as a
// network failure.
func TestSetTimeout(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`[]`))
	})
	c.SetTimeout(20 * time.Millisecond)

	_, err := c.ListBooks(context.Background())
	require.Error(t, err)
	assert.Equal(t, client.KindNetwork, client.KindOf(err))
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	sess := newTestSession(t)
	c := client.New(server.URL, sess)
	server.Close() // nothing is listening anymore

	_, err := c.ListBooks(context.Background())
	require.Error(t, err)
	assert.Equal(t, client.KindNetwork, client.KindOf(err))
}

func TestUnauthorizedIsDistinguishable(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.GetStats(context.Background())
	require.Error(t, err)
	assert.True(t, client.IsUnauthorized(err))

	c2, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err = c2.GetStats(context.Background())
	require.Error(t, err)
	assert.False(t, client.IsUnauthorized(err))
}
