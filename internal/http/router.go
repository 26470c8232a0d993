// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, and rate limiting, and serves the
// booking frontend from the public assets directory.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - API routes take precedence; everything else falls through to static files
package httpapi

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/dkozyrev/barber-booking-backend/internal/config"
	"github.com/dkozyrev/barber-booking-backend/internal/http/handlers"
	"github.com/dkozyrev/barber-booking-backend/internal/http/middleware"
	"github.com/dkozyrev/barber-booking-backend/internal/repo"
	"github.com/dkozyrev/barber-booking-backend/internal/services"
)

// availabilityRepoShim adapts the repository free functions to the
// services.AvailabilityRepo interface expected by the AvailabilityService.
// This keeps services decoupled from the concrete repo package while reusing
// existing functions.
type availabilityRepoShim struct{}

// BookedTimes proxies repo.BookedTimes.
func (availabilityRepoShim) BookedTimes(ctx context.Context, db *gorm.DB, date string) ([]string, error) {
	return repo.BookedTimes(ctx, db, date)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// compression, CORS and security headers, health and metrics endpoints, the
// booking API, and the static frontend fallback.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Token-bucket rate limiter per client IP
//  8. Response compression
//  9. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction (client names/phones never hit logs)
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB); booking payloads are tiny
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst)
	r.Use(rl.Handler())

	// 8) Response compression (slot lists and the static frontend)
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
		NoStore:    false,
	}))

	// Fallbacks: unmatched GET/HEAD paths fall through to the static
	// frontend; everything else gets the JSON envelope.
	r.NoRoute(staticFallback(cfg.PublicDir))
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db
	availSvc := services.NewAvailabilityService(db, availabilityRepoShim{})
	availSvc.OpenTime = cfg.Booking.OpenTime
	availSvc.CloseTime = cfg.Booking.CloseTime
	availSvc.Interval = cfg.Booking.Interval

	bookingSvc := &services.BookingService{DB: db}
	authSvc := &services.AuthService{DB: db}
	h := handlers.New(availSvc, bookingSvc)

	// Booking API (mounted at root; the original frontend calls these paths)
	r.GET("/available-slots", h.GetAvailableSlots)
	r.POST("/appointment", h.CreateAppointment)
	r.GET("/appointments", middleware.BasicAuth(authSvc.Verify), h.ListAppointments)
}

// staticFallback serves the frontend assets from publicDir for unmatched
// GET/HEAD requests. "/" maps to index.html. Paths are cleaned and confined
// to publicDir, so ".." segments cannot escape it. Anything not found (or a
// non-read method) answers 404 with the standard envelope.
func staticFallback(publicDir string) gin.HandlerFunc {
	root, err := filepath.Abs(publicDir)
	if err != nil {
		root = publicDir
	}
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
			return
		}

		rel := strings.TrimPrefix(c.Request.URL.Path, "/")
		if rel == "" {
			rel = "index.html"
		}
		full := filepath.Join(root, filepath.FromSlash(path.Clean("/"+rel)))
		if !strings.HasPrefix(full, root+string(os.PathSeparator)) && full != root {
			handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
			return
		}

		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
			return
		}
		c.File(full)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
