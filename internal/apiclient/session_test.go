package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itlaf/fotostudio/internal/models"
)

// fakeAPI is a minimal server speaking the auth endpoints the session uses.
func fakeAPI(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "senha123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Credenciais inválidas"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-valid"})
	})
	mux.HandleFunc("GET /api/users/me", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") != "Bearer tok-valid" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Token inválido"})
			return
		}
		json.NewEncoder(w).Encode(models.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: models.RoleUser})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSessionStartWithoutToken(t *testing.T) {
	var hits atomic.Int64
	srv := fakeAPI(t, &hits)

	sess := NewSession(New(srv.URL, &MemoryTokenStore{}))
	require.NoError(t, sess.Start(context.Background()))

	assert.Equal(t, StateUnauthenticated, sess.State())
	assert.Nil(t, sess.CurrentUser())
	// no stored token means no network call
	assert.Equal(t, int64(0), hits.Load())
}

func TestSessionLoginAndLogout(t *testing.T) {
	var hits atomic.Int64
	srv := fakeAPI(t, &hits)

	tokens := &MemoryTokenStore{}
	sess := NewSession(New(srv.URL, tokens))

	require.NoError(t, sess.Login(context.Background(), "ana@example.com", "senha123"))
	assert.Equal(t, StateAuthenticated, sess.State())
	require.NotNil(t, sess.CurrentUser())
	assert.Equal(t, "ana@example.com", sess.CurrentUser().Email)

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-valid", stored)

	require.NoError(t, sess.Logout())
	assert.Equal(t, StateUnauthenticated, sess.State())
	assert.Nil(t, sess.CurrentUser())
	stored, err = tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSessionLoginFailure(t *testing.T) {
	var hits atomic.Int64
	srv := fakeAPI(t, &hits)

	sess := NewSession(New(srv.URL, &MemoryTokenStore{}))
	err := sess.Login(context.Background(), "ana@example.com", "errada")

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, StateUnauthenticated, sess.State())
	assert.Nil(t, sess.CurrentUser())
}

func TestSessionStartRestoresStoredToken(t *testing.T) {
	var hits atomic.Int64
	srv := fakeAPI(t, &hits)

	tokens := &MemoryTokenStore{}
	require.NoError(t, tokens.Save("tok-valid"))

	sess := NewSession(New(srv.URL, tokens))
	require.NoError(t, sess.Start(context.Background()))

	assert.Equal(t, StateAuthenticated, sess.State())
	require.NotNil(t, sess.CurrentUser())
	assert.Equal(t, "u1", sess.CurrentUser().ID)
}

func TestSessionStartClearsStaleToken(t *testing.T) {
	var hits atomic.Int64
	srv := fakeAPI(t, &hits)

	tokens := &MemoryTokenStore{}
	require.NoError(t, tokens.Save("tok-stale"))

	sess := NewSession(New(srv.URL, tokens))
	// a rejected token is not an error, just an unauthenticated session
	require.NoError(t, sess.Start(context.Background()))

	assert.Equal(t, StateUnauthenticated, sess.State())
	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}
