// Package cors implements a CORS preflight handler built only against
// pkg/header's public contract (Get, Contains, Set, Add) — the header
// contract a CORS middleware consumes, per the boundary named alongside
// HeaderMap.
package cors

import (
	"strconv"
	"strings"

	"github.com/yourusername/httpwire/pkg/header"
)

const (
	headerOrigin            = "Origin"
	headerRequestMethod     = "Access-Control-Request-Method"
	headerAllowOrigin       = "Access-Control-Allow-Origin"
	headerAllowMethods      = "Access-Control-Allow-Methods"
	headerAllowHeaders      = "Access-Control-Allow-Headers"
	headerAllowCredentials  = "Access-Control-Allow-Credentials"
	headerExposeHeaders     = "Access-Control-Expose-Headers"
	headerMaxAge            = "Access-Control-Max-Age"
	headerVary              = "Vary"
)

// Config controls which origins, methods, and headers a Handler allows.
// An empty AllowOrigins is treated as "allow all" ("*"); an empty
// AllowMethods defaults to the common verbs, an empty AllowHeaders to "*",
// and a zero MaxAge to 86400.
type Config struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           int
}

// DefaultConfig mirrors the common defaults: allow any origin, the usual
// verbs, any request header, no credentials, a one-day preflight cache.
func DefaultConfig() Config {
	return Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{"*"},
		MaxAge:       86400,
	}
}

// Handler answers CORS requests against a fixed Config: it decides whether
// an Origin is allowed and writes the Access-Control-* response headers.
type Handler struct {
	allowAllOrigins  bool
	originSet        map[string]struct{}
	allowMethods     string
	allowHeaders     string
	exposeHeaders    string
	maxAge           string
	allowCredentials bool
}

// New builds a Handler from cfg, applying DefaultConfig's fallbacks for any
// zero-valued field.
func New(cfg Config) *Handler {
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
	}
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{"*"}
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = 86400
	}

	h := &Handler{
		allowMethods:     strings.Join(cfg.AllowMethods, ", "),
		allowHeaders:     strings.Join(cfg.AllowHeaders, ", "),
		exposeHeaders:    strings.Join(cfg.ExposeHeaders, ", "),
		maxAge:           strconv.Itoa(cfg.MaxAge),
		allowCredentials: cfg.AllowCredentials,
	}

	h.originSet = make(map[string]struct{}, len(cfg.AllowOrigins))
	for _, o := range cfg.AllowOrigins {
		if o == "*" {
			h.allowAllOrigins = true
			break
		}
		h.originSet[o] = struct{}{}
	}
	return h
}

func (h *Handler) allowedOrigin(origin string) (string, bool) {
	if origin == "" {
		return "", false
	}
	if h.allowAllOrigins {
		return "*", true
	}
	if _, ok := h.originSet[origin]; ok {
		return origin, true
	}
	return "", false
}

// Apply writes the simple-request CORS headers (Allow-Origin,
// Allow-Credentials, Expose-Headers) onto resp when req's Origin is
// allowed, and then also adds "Origin" to Vary, since the response varies
// by the requesting origin even on non-preflight requests. When the Origin
// is missing or not allowed it writes nothing, Vary included.
func (h *Handler) Apply(req, resp *header.Headers) {
	origin, _ := req.Get(headerOrigin)
	allowed, ok := h.allowedOrigin(origin)
	if !ok {
		return
	}
	resp.Set(headerAllowOrigin, allowed)
	resp.Add(headerVary, headerOrigin)
	if h.allowCredentials {
		resp.Set(headerAllowCredentials, "true")
	}
	if h.exposeHeaders != "" {
		resp.Set(headerExposeHeaders, h.exposeHeaders)
	}
}

// IsPreflight reports whether req carries the two headers RFC defines a
// CORS preflight on: an Origin and an Access-Control-Request-Method.
func IsPreflight(req *header.Headers) bool {
	return req.Contains(headerOrigin) && req.Contains(headerRequestMethod)
}

// HandlePreflight writes the full preflight response (Allow-Origin,
// Allow-Methods, Allow-Headers, Allow-Credentials, Max-Age, Vary) onto
// resp. It reports false, writing nothing, when req's Origin is not
// allowed.
func (h *Handler) HandlePreflight(req, resp *header.Headers) bool {
	origin, _ := req.Get(headerOrigin)
	allowed, ok := h.allowedOrigin(origin)
	if !ok {
		return false
	}
	resp.Set(headerAllowOrigin, allowed)
	resp.Add(headerVary, headerOrigin)
	resp.Set(headerAllowMethods, h.allowMethods)
	resp.Set(headerAllowHeaders, h.allowHeaders)
	resp.Set(headerMaxAge, h.maxAge)
	if h.allowCredentials {
		resp.Set(headerAllowCredentials, "true")
	}
	return true
}
