// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements RedactingLogger, the structured access logger.
// Booking requests and availability queries carry personal data (client
// names, phone numbers) which must never land in logs verbatim, so query
// strings and header values are scrubbed before being emitted. Request and
// response bodies are never logged at all.
package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// maxQueryLogLength caps the number of bytes of the raw query string logged.
const maxQueryLogLength = 1024

var (
	// Phone numbers with optional country code, separators, parentheses.
	// Examples matched: "+7 000 000-00-00", "(212) 555-1212".
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{2,4}[ .-]?\d{2,4}[ .-]?\d{2,4}\b`)
	emailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
)

// headers always fully masked, in addition to RedactOptions.MaskHeaders.
var builtinMaskedHeaders = []string{"Authorization", "Cookie", "Set-Cookie"}

// RedactOptions configures additional scrub behavior for RedactingLogger.
// MaskHeaders lists extra header names (case-insensitive) whose values are
// replaced with "[REDACTED]" wholesale.
type RedactOptions struct {
	MaskHeaders []string
}

// RedactingLogger returns a Gin middleware that logs each request with
// sensitive values scrubbed: masked headers, redacted emails and phone
// numbers in the query string. It attaches a request-scoped zerolog.Logger
// under the "logger" context key and picks the log level by outcome
// (info < 400, warn 4xx, error 5xx or collected Gin errors).
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	masked := make(map[string]struct{}, len(builtinMaskedHeaders)+len(opts.MaskHeaders))
	for _, h := range builtinMaskedHeaders {
		masked[strings.ToLower(h)] = struct{}{}
	}
	for _, h := range opts.MaskHeaders {
		masked[strings.ToLower(h)] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			// Fallback when route not matched (static files, 404).
			path = c.Request.URL.Path
		}

		l := log.With().
			Str("request_id", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", redact(c.Request.UserAgent())).
			Str("query", truncate(redact(c.Request.URL.RawQuery), maxQueryLogLength)).
			Int64("bytes_in", c.Request.ContentLength).
			Logger()
		c.Set(loggerKey, &l)

		c.Next()

		status := c.Writer.Status()
		ev := l.With().
			Int("status", status).
			Dur("latency", time.Since(start)).
			Int("bytes_out", c.Writer.Size()).
			Logger()

		switch {
		case len(c.Errors) > 0:
			ev.Error().Str("errors", redact(c.Errors.String())).Msg("request")
		case status >= 500:
			ev.Error().Msg("request")
		case status >= 400:
			ev.Warn().Msg("request")
		default:
			ev.Info().Msg("request")
		}
	}
}

// MaskHeaderValue returns the header value with masking/redaction applied,
// for the rare places that log individual headers.
func MaskHeaderValue(name, value string, opts RedactOptions) string {
	lower := strings.ToLower(name)
	for _, h := range builtinMaskedHeaders {
		if lower == strings.ToLower(h) {
			return "[REDACTED]"
		}
	}
	for _, h := range opts.MaskHeaders {
		if lower == strings.ToLower(h) {
			return "[REDACTED]"
		}
	}
	return redact(value)
}

// redact substitutes obvious PII patterns. Emails before phones: the phone
// pattern is the loosest and must not eat parts of an address.
func redact(s string) string {
	if s == "" {
		return s
	}
	out := emailRE.ReplaceAllString(s, "[REDACTED:email]")
	out = phoneRE.ReplaceAllString(out, "[REDACTED:phone]")
	return out
}

// truncate caps s at max bytes, appending an ellipsis when cut. Byte-based
// truncation is acceptable for log output.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
