package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	p := NewHMACProvider("test-secret", []string{"admin-1"})

	token := p.Sign("user-1", "user@example.com")
	identity, err := p.Verify(token)
	if err != nil {
		t.Fatalf("Verify err: %v", err)
	}
	if identity.UserID != "user-1" || identity.Email != "user@example.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if identity.Admin {
		t.Fatal("user-1 should not be admin")
	}

	admin, err := p.Verify(p.Sign("admin-1", "admin@example.com"))
	if err != nil {
		t.Fatalf("Verify err: %v", err)
	}
	if !admin.Admin {
		t.Fatal("admin-1 should be admin")
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	p := NewHMACProvider("test-secret", nil)
	other := NewHMACProvider("other-secret", nil)

	cases := map[string]string{
		"wrong secret":  other.Sign("user-1", "user@example.com"),
		"garbage":       "not-a-token",
		"empty":         "",
		"missing parts": "YWJj.ZGVm",
	}
	for name, token := range cases {
		if _, err := p.Verify(token); err == nil {
			t.Fatalf("%s: expected rejection", name)
		}
	}
}

func TestVerifyDisabledWithoutSecret(t *testing.T) {
	p := NewHMACProvider("", nil)
	if _, err := p.Verify(p.Sign("user-1", "")); err != ErrAuthDisabled {
		t.Fatalf("expected ErrAuthDisabled, got %v", err)
	}
}

func TestMiddlewareAttachesIdentity(t *testing.T) {
	p := NewHMACProvider("test-secret", nil)

	var got Identity
	var authenticated bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, authenticated = FromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+p.Sign("user-9", "nine@example.com"))
	Middleware(p)(next).ServeHTTP(httptest.NewRecorder(), req)

	if !authenticated || got.UserID != "user-9" {
		t.Fatalf("identity not attached: %+v", got)
	}
}

func TestMiddlewareAnonymousOnBadToken(t *testing.T) {
	p := NewHMACProvider("test-secret", nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsAuthenticated(r.Context()) {
			t.Fatal("expected anonymous request")
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	Middleware(p)(next).ServeHTTP(httptest.NewRecorder(), req)
}
