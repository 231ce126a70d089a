package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountersInflightAndUnmatchedLabel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/invoices/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"invoice": []gin.H{{"id": c.Param("id")}}})
	})
	r.DELETE("/invoices/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	baseOK := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/invoices/:id", "200"))
	base404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", unmatchedPath, "404"))
	base204 := testutil.ToFloat64(httpReqs.WithLabelValues("DELETE", "/invoices/:id", "204"))

	for _, tc := range []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/invoices/1", http.StatusOK},
		{http.MethodGet, "/invoices/2", http.StatusOK},
		{http.MethodGet, "/nope/abc", http.StatusNotFound},
		{http.MethodDelete, "/invoices/3", http.StatusNoContent},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != tc.want {
			t.Fatalf("%s %s -> %d; want %d", tc.method, tc.path, w.Code, tc.want)
		}
	}

	// both ids collapse into the route template
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/invoices/:id", "200")); got != baseOK+2 {
		t.Fatalf("route counter = %v; want %v", got, baseOK+2)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", unmatchedPath, "404")); got != base404+1 {
		t.Fatalf("unmatched counter = %v; want %v", got, base404+1)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("DELETE", "/invoices/:id", "204")); got != base204+1 {
		t.Fatalf("204 counter = %v; want %v", got, base204+1)
	}
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0", inFlight)
	}
}
