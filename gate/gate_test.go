package gate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const browserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

func serve(t *testing.T, path, agent string) *httptest.ResponseRecorder {
	t.Helper()
	h := Deny(DefaultRules())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if agent != "" {
		req.Header.Set("User-Agent", agent)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestDenyBlocksSensitiveSuffixes(t *testing.T) {
	t.Parallel()

	for _, path := range []string{
		"/.env",
		"/config.env",
		"/data.sql",
		"/report.SQL", // case-insensitive
		"/backup/site.bak",
		"/wp/.git",
	} {
		rr := serve(t, path, browserAgent)
		assert.Equal(t, http.StatusForbidden, rr.Code, "path %s", path)
		assert.Equal(t, "Access Denied", rr.Body.String(), "path %s", path)
	}
}

func TestDenyBlocksBadAgents(t *testing.T) {
	t.Parallel()

	for _, agent := range []string{
		"Mozilla/5.0 (compatible; AhrefsBot/7.0; +http://ahrefs.com/robot/)",
		"mozilla/5.0 (compatible; ahrefsbot/7.0)",
		"SemrushBot/7~bl",
	} {
		rr := serve(t, "/about", agent)
		assert.Equal(t, http.StatusForbidden, rr.Code, "agent %s", agent)
	}
}

func TestDenyForwardsCleanRequests(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/", "/about", "/pricing", "/environment", "/sqlite-talk"} {
		rr := serve(t, path, browserAgent)
		assert.Equal(t, http.StatusNoContent, rr.Code, "path %s", path)
	}
}

func TestDenyForwardsEmptyAgent(t *testing.T) {
	t.Parallel()

	// Malformed requests are treated like any other for the two checks.
	rr := serve(t, "/about", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestChainAppliesInDeclarationOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called += tag
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
	}), mw("1"), mw("2"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "12h", called)
}

func TestChainNilHandler(t *testing.T) {
	t.Parallel()

	h := Chain(nil, Deny(DefaultRules()))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBlockedNilRequest(t *testing.T) {
	t.Parallel()

	require.False(t, DefaultRules().Blocked(nil))
}
