// Package gate is the edge request filter in front of the site: a
// stateless allow/deny predicate over each inbound request's path and
// user agent. Known-bad crawlers and probes for sensitive files get a
// flat 403; everything else passes through to the next handler untouched.
package gate

import (
	"net/http"
	"strings"
)

// denyBody is the fixed plain-text deny response.
const denyBody = "Access Denied"

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in declaration order.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	wrapped := handler
	for idx := len(middleware) - 1; idx >= 0; idx-- {
		if middleware[idx] == nil {
			continue
		}
		wrapped = middleware[idx](wrapped)
	}
	return wrapped
}

// Deny returns the filter middleware for the given rule set.
//
// A request is denied when its path ends with any blocked suffix or its
// User-Agent contains any blocked substring, both case-insensitively.
// Nothing else about the request is inspected and nothing is retained
// between requests.
func Deny(rules Rules) Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rules.Blocked(r) {
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(denyBody))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Blocked reports whether the request matches either deny list.
func (ru Rules) Blocked(r *http.Request) bool {
	if r == nil || r.URL == nil {
		return false
	}
	path := strings.ToLower(r.URL.Path)
	for _, suffix := range ru.PathSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	agent := strings.ToLower(r.UserAgent())
	for _, bot := range ru.AgentSubstrings {
		if strings.Contains(agent, bot) {
			return true
		}
	}
	return false
}
