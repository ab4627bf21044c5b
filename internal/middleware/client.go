package middleware

import (
	"context"
	"net"
	"net/http"
)

type ctxClientKey struct{}

// ClientInfo carries request metadata captured by the boundary layer.
// Handlers attach it to stored entities; it is never taken from the payload.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// ClientMetadata returns middleware that captures the caller's network
// address and user-agent string into the request context. Run it after
// RealIP so the captured address reflects proxy headers.
func ClientMetadata() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := ClientInfo{
				IPAddress: clientIP(r),
				UserAgent: r.UserAgent(),
			}
			ctx := context.WithValue(r.Context(), ctxClientKey{}, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientFromContext returns the captured client metadata, or a zero value
// when the middleware did not run.
func ClientFromContext(ctx context.Context) ClientInfo {
	if ctx == nil {
		return ClientInfo{}
	}
	if info, ok := ctx.Value(ctxClientKey{}).(ClientInfo); ok {
		return info
	}
	return ClientInfo{}
}

func clientIP(r *http.Request) string {
	// RealIP middleware rewrites RemoteAddr to the bare client IP; direct
	// connections keep the host:port form.
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
