package cors

import (
	"testing"

	"github.com/yourusername/httpwire/pkg/header"
)

func TestApplyAllowAllOrigin(t *testing.T) {
	h := New(DefaultConfig())

	req := header.NewHeaders()
	req.Add("Origin", "https://example.com")
	resp := header.NewHeaders()

	h.Apply(req, resp)

	if got, ok := resp.Get("Access-Control-Allow-Origin"); !ok || got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, %v, want *, true", got, ok)
	}
	if got := resp.GetAll("Vary"); len(got) != 1 || got[0] != "Origin" {
		t.Fatalf("Vary = %v, want [Origin]", got)
	}
}

func TestApplyRejectsUnlistedOrigin(t *testing.T) {
	h := New(Config{AllowOrigins: []string{"https://example.com"}})

	req := header.NewHeaders()
	req.Add("Origin", "https://evil.example")
	resp := header.NewHeaders()

	h.Apply(req, resp)

	if resp.Contains("Access-Control-Allow-Origin") {
		t.Fatalf("unlisted origin should not receive Allow-Origin")
	}
}

func TestIsPreflightRequiresBothHeaders(t *testing.T) {
	req := header.NewHeaders()
	if IsPreflight(req) {
		t.Fatalf("empty headers should not be a preflight")
	}
	req.Add("Origin", "https://example.com")
	if IsPreflight(req) {
		t.Fatalf("Origin alone should not be a preflight")
	}
	req.Add("Access-Control-Request-Method", "POST")
	if !IsPreflight(req) {
		t.Fatalf("Origin + Request-Method should be a preflight")
	}
}

func TestHandlePreflightWritesFullHeaderSet(t *testing.T) {
	h := New(Config{
		AllowOrigins:     []string{"https://example.com"},
		AllowMethods:     []string{"GET", "POST", "PUT"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           3600,
	})

	req := header.NewHeaders()
	req.Add("Origin", "https://example.com")
	req.Add("Access-Control-Request-Method", "POST")
	resp := header.NewHeaders()

	if ok := h.HandlePreflight(req, resp); !ok {
		t.Fatalf("HandlePreflight should succeed for an allowed origin")
	}

	cases := map[string]string{
		"Access-Control-Allow-Origin":      "https://example.com",
		"Access-Control-Allow-Methods":     "GET, POST, PUT",
		"Access-Control-Allow-Headers":     "Content-Type, Authorization",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           "3600",
	}
	for name, want := range cases {
		got, ok := resp.Get(name)
		if !ok || got != want {
			t.Fatalf("%s = %q, %v, want %q, true", name, got, ok, want)
		}
	}
}

func TestHandlePreflightRejectsDisallowedOrigin(t *testing.T) {
	h := New(Config{AllowOrigins: []string{"https://example.com"}})

	req := header.NewHeaders()
	req.Add("Origin", "https://evil.example")
	req.Add("Access-Control-Request-Method", "POST")
	resp := header.NewHeaders()

	if ok := h.HandlePreflight(req, resp); ok {
		t.Fatalf("HandlePreflight should fail for a disallowed origin")
	}
	if resp.Size() != 0 {
		t.Fatalf("rejected preflight should write no headers, got size %d", resp.Size())
	}
}
