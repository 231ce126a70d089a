// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements idempotent retries for POST requests. A client that
// sends an Idempotency-Key header gets its first successful (2xx) response
// stored; a retry with the same key, method and path within the TTL is
// answered from the store without running the handler again, and is marked
// with Idempotency-Replayed: true. The stored response is bound to a
// SHA-256 of the request body, so reusing a key with a different payload is
// rejected with 422 instead of replaying an unrelated result.
//
// Persistence is abstracted behind IdempotencyStore so the middleware stays
// free of database concerns.
package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey is the request header carrying the client's key.
const HeaderIdempotencyKey = "Idempotency-Key"

// HeaderIdempotencyReplayed is set to "true" on responses served from the
// idempotency store.
const HeaderIdempotencyReplayed = "Idempotency-Replayed"

// Context keys used internally to stash idempotency state.
const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay"
)

// ErrNoStoredResponse is returned by IdempotencyStore.Lookup when nothing
// replayable exists for the key.
var ErrNoStoredResponse = errors.New("no stored response")

// StoredResponse is a previously produced response together with the hash
// of the request body that produced it.
type StoredResponse struct {
	Status      int
	Body        []byte
	RequestHash string
}

// IdempotencyStore persists responses per (key, method, path). Lookup must
// ignore expired entries and return ErrNoStoredResponse when none exists.
// Save may report a duplicate when a concurrent request stored first; the
// middleware ignores Save errors beyond logging them.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key, method, path string) (*StoredResponse, error)
	Save(ctx context.Context, key, method, path string, resp StoredResponse) error
}

// GetIdempotencyKey returns the validated idempotency key stored in the Gin
// context by Idempotency. The second return value indicates presence.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyIdemKey)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// IsReplay reports whether the response was served from the idempotency
// store.
func IsReplay(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyIdemReplay)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IdempotencyOptions configures header validation.
type IdempotencyOptions struct {
	// MaxLen caps the accepted key length. Values <= 0 default to 200.
	MaxLen int
	// Pattern restricts allowed characters. If nil, a token pattern is
	// used: ^[A-Za-z0-9._~\-:]+$
	Pattern *regexp.Regexp
}

// Idempotency returns the middleware. Only POST requests are considered;
// requests without the header pass through untouched. An invalid key is
// answered with 400 and the error envelope, and a key already used with a
// different body on the same route with 422.
//
// Store lookup failures do not block the request: it runs normally and its
// result is not stored.
func Idempotency(opts IdempotencyOptions, store IdempotencyStore) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 200
	}
	pat := opts.Pattern
	if pat == nil {
		pat = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			abortWithError(c, http.StatusBadRequest, "invalid Idempotency-Key")
			return
		}
		c.Set(ctxKeyIdemKey, key)

		if store == nil {
			c.Next()
			return
		}

		hash, ok := hashRequestBody(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		method, path := c.Request.Method, c.Request.URL.Path
		lg := LoggerFrom(c)

		prev, err := store.Lookup(ctx, key, method, path)
		switch {
		case err == nil && prev != nil && prev.RequestHash != hash:
			lg.Warn().Str("idempotency_key", key).Msg("idempotency key reused with a different body")
			abortWithError(c, http.StatusUnprocessableEntity, "Idempotency-Key reused with a different request body")
			return
		case err == nil && prev != nil:
			c.Set(ctxKeyIdemReplay, true)
			idemReplays.WithLabelValues(routeLabel(c)).Inc()
			c.Header(HeaderIdempotencyReplayed, "true")
			c.Data(prev.Status, "application/json; charset=utf-8", prev.Body)
			c.Abort()
			return
		case err != nil && !errors.Is(err, ErrNoStoredResponse):
			lg.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed")
			c.Next()
			return
		}

		rec := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()
		c.Writer = rec.ResponseWriter

		status := rec.Status()
		if status < 200 || status >= 300 {
			return
		}
		if err := store.Save(ctx, key, method, path, StoredResponse{Status: status, Body: rec.buf.Bytes(), RequestHash: hash}); err != nil {
			lg.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency save failed")
		}
	}
}

// hashRequestBody buffers the request body, puts it back for the handler and
// returns its hex SHA-256. On a read failure the request is aborted with 413
// when the body limit was hit and 400 otherwise.
func hashRequestBody(c *gin.Context) (string, bool) {
	var payload []byte
	if c.Request.Body != nil {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				abortWithError(c, http.StatusRequestEntityTooLarge, http.StatusText(http.StatusRequestEntityTooLarge))
			} else {
				abortWithError(c, http.StatusBadRequest, "invalid request body")
			}
			return "", false
		}
		payload = b
		c.Request.Body = io.NopCloser(bytes.NewReader(payload))
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), true
}

// recordingWriter tees the response body into a buffer.
type recordingWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
