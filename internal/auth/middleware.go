package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey struct{}

// Middleware resolves the Authorization header into an Identity on the
// request context. Requests without a valid token proceed anonymously;
// handlers that need authentication check the context themselves.
func Middleware(p Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token != "" && p != nil {
				if identity, err := p.Verify(token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), contextKey{}, identity))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// FromContext returns the verified identity, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(Identity)
	return identity, ok
}

// IsAuthenticated reports whether the request carries a verified identity.
func IsAuthenticated(ctx context.Context) bool {
	_, ok := FromContext(ctx)
	return ok
}

// IsAdmin reports whether the verified identity is an administrator.
func IsAdmin(ctx context.Context) bool {
	identity, ok := FromContext(ctx)
	return ok && identity.Admin
}

// CurrentUserID returns the verified caller's user id, or "" when anonymous.
func CurrentUserID(ctx context.Context) string {
	identity, _ := FromContext(ctx)
	return identity.UserID
}

// CurrentUserEmail returns the verified caller's email, or "" when anonymous.
func CurrentUserEmail(ctx context.Context) string {
	identity, _ := FromContext(ctx)
	return identity.Email
}
