// Package handlers provides the HTTP handlers of the BizTime API.
//
// Handlers are transport-thin: they bind and validate input, call the
// application services, and shape results into the JSON envelopes clients
// depend on. Failures are never written here; they are attached to the gin
// context with abort() and rendered once by ErrorHandler.
package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tbourn/go-biztime-backend/internal/domain"
)

//
// Service contracts (context-aware)
//

// CompanyService defines company operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type CompanyService interface {
	List(ctx context.Context) ([]domain.Company, error)
	// Get returns the company with its invoices and industry labels.
	Get(ctx context.Context, code string) (*domain.CompanyDetail, error)
	// Create derives the code from name and inserts the company.
	Create(ctx context.Context, name, description string) (*domain.Company, error)
	Update(ctx context.Context, code, name, description string) (*domain.Company, error)
	Delete(ctx context.Context, code string) error
}

// InvoiceService defines invoice operations, including the paid-state
// transition applied on update.
type InvoiceService interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	Get(ctx context.Context, id int64) (*domain.InvoiceDetail, error)
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (*domain.Invoice, error)
	Update(ctx context.Context, id int64, amt decimal.Decimal, paid bool) (*domain.Invoice, error)
	Delete(ctx context.Context, id int64) error
}

// IndustryService defines industry operations.
type IndustryService interface {
	List(ctx context.Context) ([]domain.Industry, error)
	Create(ctx context.Context, code, label string) (*domain.Industry, error)
	// Associate links the industry to a company.
	Associate(ctx context.Context, code, company string) (*domain.Industry, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for companies, invoices, and industries.
type Handlers struct {
	companySvc  CompanyService
	invoiceSvc  InvoiceService
	industrySvc IndustryService
}

// New constructs a Handlers instance bound to the given services. It also
// registers the custom binding rules used by the request DTOs.
func New(companySvc CompanyService, invoiceSvc InvoiceService, industrySvc IndustryService) *Handlers {
	RegisterValidators()
	return &Handlers{companySvc: companySvc, invoiceSvc: invoiceSvc, industrySvc: industrySvc}
}
