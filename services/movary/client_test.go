package movary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateSendsCredentialsAndClientHeader(t *testing.T) {
	var gotBody map[string]any
	var gotClientHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/authentication/token", r.URL.Path)
		gotClientHeader = r.Header.Get("X-Movary-Client")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"abc123"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "living-room-display", server.Client())
	token, err := client.Authenticate(context.Background(), "family@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "abc123", token)
	assert.Equal(t, "living-room-display", gotClientHeader)
	assert.Equal(t, "family@example.com", gotBody["email"])
	assert.Equal(t, "hunter2", gotBody["password"])
	assert.Equal(t, true, gotBody["rememberMe"])
}

func TestAuthenticateAcceptsAuthTokenSpelling(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"authToken":"alt-spelling"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "display", server.Client())
	token, err := client.Authenticate(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alt-spelling", token)
}

func TestAuthenticateFailsOnBadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "display", server.Client())
	token, err := client.Authenticate(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "401")
}

func TestAuthenticateFailsWhenResponseCarriesNoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":"someone"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "display", server.Client())
	_, err := client.Authenticate(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
}

func TestAuthenticateFailsOnUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "display", nil)
	_, err := client.Authenticate(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
}

func TestNewestWatchlistMovieRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/users/42/watchlist/movies", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "1", q.Get("limit"))
		assert.Equal(t, "addedAt", q.Get("sortBy"))
		assert.Equal(t, "desc", q.Get("sortOrder"))
		assert.Equal(t, "abc123", r.Header.Get("X-Auth-Token"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Write([]byte(`{"data":[{"movie":{"title":"Heat","releaseDate":"1995-12-15","overview":"A heist unravels.","posterPath":"/images/heat.jpg"},"addedAt":"2025-08-20T18:04:00+00:00"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "display", server.Client())
	entry, err := client.NewestWatchlistMovie(context.Background(), "abc123", "42")
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.NotNil(t, entry.Movie)

	assert.Equal(t, "Heat", entry.Movie.Title)
	assert.Equal(t, "1995", entry.Movie.ReleaseYear())
	assert.Equal(t, "/images/heat.jpg", entry.Movie.PosterPath)
	assert.Equal(t, "2025-08-20T18:04:00+00:00", entry.AddedAt)
}

func TestNewestWatchlistMovieAcceptsWatchlistSpelling(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"watchlist":[{"movie":{"title":"Ran"},"addedAt":"2025-08-21"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "display", server.Client())
	entry, err := client.NewestWatchlistMovie(context.Background(), "tok", "1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Ran", entry.Movie.Title)
}

func TestNewestWatchlistMovieEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "display", server.Client())
	entry, err := client.NewestWatchlistMovie(context.Background(), "tok", "1")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestNewestWatchlistMovieUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "display", server.Client())
	entry, err := client.NewestWatchlistMovie(context.Background(), "tok", "1")
	require.Error(t, err)
	assert.Nil(t, entry)
}

func TestNewestWatchlistMovieMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "display", server.Client())
	_, err := client.NewestWatchlistMovie(context.Background(), "tok", "1")
	require.Error(t, err)
}
