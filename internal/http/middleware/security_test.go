package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newSecuredRouter(opt SecurityOptions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders(opt))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestSecurityHeaders_Baseline(t *testing.T) {
	r := newSecuredRouter(SecurityOptions{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	h := w.Header()
	if h.Get("X-Content-Type-Options") != "nosniff" ||
		h.Get("X-Frame-Options") != "DENY" ||
		h.Get("Referrer-Policy") != "no-referrer" {
		t.Fatalf("baseline headers missing: %+v", h)
	}
	if h.Get("Strict-Transport-Security") != "" {
		t.Fatalf("HSTS must not be emitted when disabled")
	}
}

func TestSecurityHeaders_NoStore(t *testing.T) {
	r := newSecuredRouter(SecurityOptions{NoStore: true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("no-store missing")
	}
}

func TestSecurityHeaders_HSTSOnlyOverHTTPS(t *testing.T) {
	r := newSecuredRouter(SecurityOptions{EnableHSTS: true, HSTSMaxAge: 24 * time.Hour})

	// Plain HTTP: no HSTS.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Fatalf("HSTS emitted for plain HTTP")
	}

	// Behind a TLS-terminating proxy.
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	hsts := w.Header().Get("Strict-Transport-Security")
	if !strings.Contains(hsts, "max-age=86400") {
		t.Fatalf("unexpected HSTS value: %q", hsts)
	}
}
