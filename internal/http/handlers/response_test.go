package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tbourn/go-biztime-backend/internal/domain"
)

func decodeEnvelope(t *testing.T, body []byte) ErrorResponse {
	t.Helper()
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		t.Fatalf("json: %v (%s)", err, body)
	}
	return er
}

func TestErrorHandler_DomainAndStoreErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r.Use(func(c *gin.Context) {
		c.Set("logger", &logger)
		c.Next()
	})
	r.Use(ErrorHandler())

	r.GET("/missing", func(c *gin.Context) {
		abort(c, domain.NotFoundf("Can't find company %s", "acme"))
	})
	r.GET("/wrapped", func(c *gin.Context) {
		abort(c, fmt.Errorf("ctx: %w", domain.BadRequestf("name is required")))
	})
	r.GET("/deep", func(c *gin.Context) {
		err := fmt.Errorf("update company: %w", fmt.Errorf("tx: %w", domain.NotFoundf("Can't find company %s", "ibm")))
		abort(c, err)
	})
	r.GET("/boom", func(c *gin.Context) {
		abort(c, errors.New("UNIQUE constraint failed: companies.name"))
	})
	r.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"x": 1})
		_ = c.Error(errors.New("late"))
	})

	cases := []struct {
		path   string
		status int
		msg    string
	}{
		{"/missing", 404, "Can't find company acme"},
		{"/wrapped", 400, "name is required"},
		{"/deep", 404, "Can't find company ibm"},
		{"/boom", 500, "UNIQUE constraint failed: companies.name"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.status {
			t.Fatalf("%s: status=%d want %d", tc.path, w.Code, tc.status)
		}
		er := decodeEnvelope(t, w.Body.Bytes())
		if er.Message != tc.msg || er.Error.Message != tc.msg || er.Error.Status != tc.status {
			t.Fatalf("%s: unexpected envelope %+v", tc.path, er)
		}
	}

	// only the 500 is logged
	if strings.Count(buf.String(), `"level":"error"`) != 1 {
		t.Fatalf("expected exactly one error log, got: %s", buf.String())
	}

	// an already written response is left alone
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	if w.Code != http.StatusTeapot || strings.Contains(w.Body.String(), "late") {
		t.Fatalf("written response altered: %d %s", w.Code, w.Body.String())
	}
}

func TestErrorEnvelope_ExactShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.NoRoute(NotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
	want := `{"error":{"message":"Not Found","status":404},"message":"Not Found"}`
	if got := strings.TrimSpace(w.Body.String()); got != want {
		t.Fatalf("body=%s want %s", got, want)
	}
}

func TestFail_And_OkHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/fail", func(c *gin.Context) {
		Fail(c, domain.NewError(http.StatusServiceUnavailable, MsgServiceUnready))
	})
	r.GET("/ok", func(c *gin.Context) {
		ok(c, http.StatusCreated, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
	if er := decodeEnvelope(t, w.Body.Bytes()); er.Message != MsgServiceUnready || er.Error.Status != 503 {
		t.Fatalf("unexpected body: %+v", er)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected ok response: %d %s", w.Code, w.Body.String())
	}
}

func TestRenderError_EmptyMessageFallsBackToStatusText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { renderError(c, domain.NewError(http.StatusConflict, "")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if er := decodeEnvelope(t, w.Body.Bytes()); er.Message != "Conflict" || w.Code != 409 {
		t.Fatalf("unexpected: %d %+v", w.Code, er)
	}
}
