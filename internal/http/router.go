// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, idempotency, and rate limiting.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/go-biztime-backend/docs"
	"github.com/tbourn/go-biztime-backend/internal/config"
	"github.com/tbourn/go-biztime-backend/internal/domain"
	"github.com/tbourn/go-biztime-backend/internal/http/handlers"
	"github.com/tbourn/go-biztime-backend/internal/http/middleware"
	"github.com/tbourn/go-biztime-backend/internal/repo"
	"github.com/tbourn/go-biztime-backend/internal/services"
)

// companyRepoShim adapts the repository free functions to the
// services.CompanyRepo interface expected by the CompanyService.
type companyRepoShim struct{}

// ListCompanies proxies repo.ListCompanies.
func (companyRepoShim) ListCompanies(ctx context.Context, db *gorm.DB) ([]domain.Company, error) {
	return repo.ListCompanies(ctx, db)
}

// CompanyInvoiceRows proxies repo.CompanyInvoiceRows.
func (companyRepoShim) CompanyInvoiceRows(ctx context.Context, db *gorm.DB, code string) ([]repo.CompanyInvoiceRow, error) {
	return repo.CompanyInvoiceRows(ctx, db, code)
}

// IndustryLabels proxies repo.IndustryLabels.
func (companyRepoShim) IndustryLabels(ctx context.Context, db *gorm.DB, code string) ([]string, error) {
	return repo.IndustryLabels(ctx, db, code)
}

// CreateCompany proxies repo.CreateCompany.
func (companyRepoShim) CreateCompany(ctx context.Context, db *gorm.DB, code, name, description string) (*domain.Company, error) {
	return repo.CreateCompany(ctx, db, code, name, description)
}

// UpdateCompany proxies repo.UpdateCompany.
func (companyRepoShim) UpdateCompany(ctx context.Context, db *gorm.DB, code, name, description string) (*domain.Company, error) {
	return repo.UpdateCompany(ctx, db, code, name, description)
}

// DeleteCompany proxies repo.DeleteCompany.
func (companyRepoShim) DeleteCompany(ctx context.Context, db *gorm.DB, code string) error {
	return repo.DeleteCompany(ctx, db, code)
}

// idempotencyStore backs the idempotency middleware with the
// idempotency_keys table.
type idempotencyStore struct {
	db  *gorm.DB
	ttl time.Duration
}

// Lookup returns the unexpired stored response for the tuple.
func (s idempotencyStore) Lookup(ctx context.Context, key, method, path string) (*middleware.StoredResponse, error) {
	rec, err := repo.GetIdempotency(ctx, s.db, key, method, path, time.Now().UTC())
	if errors.Is(err, repo.ErrNotFound) {
		return nil, middleware.ErrNoStoredResponse
	}
	if err != nil {
		return nil, err
	}
	return &middleware.StoredResponse{Status: rec.Status, Body: rec.Body, RequestHash: rec.RequestHash}, nil
}

// Save stores resp for ttl. A concurrent request that stored first wins.
func (s idempotencyStore) Save(ctx context.Context, key, method, path string, resp middleware.StoredResponse) error {
	_, err := repo.CreateIdempotency(ctx, s.db, key, method, path, resp.RequestHash, resp.Status, resp.Body, s.ttl)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil
	}
	return err
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the company, invoice and industry resources under
// cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access log
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. gzip (outside idempotency so stored bodies are uncompressed)
//  7. Metrics
//  8. Idempotency (POST replays skip the handler)
//  9. Rate limiter per client IP
//  10. CORS and Security headers
//  11. ErrorHandler: renders errors attached by handlers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	// Unknown methods on known paths are answered like unknown paths.
	r.HandleMethodNotAllowed = false

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to the JSON 500 envelope
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Response compression
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Idempotent POST retries
	r.Use(middleware.Idempotency(
		middleware.IdempotencyOptions{MaxLen: 200},
		idempotencyStore{db: db, ttl: cfg.IdempotencyTTL},
	))

	// 9) Token-bucket rate limiter per IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP()).
		Skip("/health", "/metrics")
	r.Use(rl.Handler())

	// 10) CORS posture (safe defaults: allow all if none configured)
	allowHeaders := []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey}
	exposeHeaders := []string{"X-Request-ID", "Content-Length", middleware.HeaderIdempotencyReplayed}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header.
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist.
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
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// 11) Render handler errors as the JSON envelope
	r.Use(handlers.ErrorHandler())

	// Fallback for unmatched paths and methods
	r.NoRoute(handlers.NotFound)

	// Liveness/health
	r.GET("/health", func(c *gin.Context) {
		if err := repo.Ping(c.Request.Context(), db); err != nil {
			middleware.LoggerFrom(c).Error().Err(err).Msg("health check failed")
			handlers.Fail(c, domain.NewError(http.StatusServiceUnavailable, handlers.MsgServiceUnready))
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API docs
	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db
	companySvc := services.NewCompanyService(db, companyRepoShim{})
	invoiceSvc := &services.InvoiceService{DB: db}
	industrySvc := &services.IndustryService{DB: db}
	h := handlers.New(companySvc, invoiceSvc, industrySvc)

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Companies
		api.GET("/companies", h.ListCompanies)
		api.GET("/companies/:code", h.GetCompany)
		api.POST("/companies", h.CreateCompany)
		api.PUT("/companies/:code", h.UpdateCompany)
		api.DELETE("/companies/:code", h.DeleteCompany)

		// Invoices
		api.GET("/invoices", h.ListInvoices)
		api.GET("/invoices/:id", h.GetInvoice)
		api.POST("/invoices", h.CreateInvoice)
		api.PUT("/invoices/:id", h.UpdateInvoice)
		api.DELETE("/invoices/:id", h.DeleteInvoice)

		// Industries
		api.GET("/industries", h.ListIndustries)
		api.POST("/industries", h.CreateIndustry)
		api.PATCH("/industries/:code", h.AssociateIndustry)
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

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
