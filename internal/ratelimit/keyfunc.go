package ratelimit

import (
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// KeyFunc derives the client part of the limiter key from a request.
type KeyFunc func(r *http.Request) string

// ClientAddrKeyFunc keys requests by the peer address. With trustXFF the
// first X-Forwarded-For hop wins, which is only safe behind a proxy that
// overwrites that header.
func ClientAddrKeyFunc(trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if trustXFF {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				first, _, _ := strings.Cut(xff, ",")
				if ip := strings.TrimSpace(first); ip != "" {
					return ip
				}
			}
		}

		host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
		if err == nil && host != "" {
			return host
		}
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
}

// endpointOf returns the method and the matched chi route pattern, or the
// raw path when the request has not been routed by chi.
func endpointOf(r *http.Request) string {
	route := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			route = pattern
		}
	}
	return r.Method + " " + route
}
