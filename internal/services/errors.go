// Package services defines the business operations for companies, invoices
// and industries. This file centralizes the domain errors returned by service
// methods so that their wording and status stay consistent across endpoints.
//
// Each helper returns a *domain.Error carrying the HTTP status; handlers pass
// it through unchanged to the central error renderer. Store failures are
// returned as-is and render as 500.
package services

import (
	"github.com/tbourn/go-biztime-backend/internal/domain"
)

// Company-related errors.

// ErrCompanyNotFound is returned by Get and Update for an unknown code.
func ErrCompanyNotFound(code string) error {
	return domain.NotFoundf("Can't find company %s", code)
}

// ErrCompanyDeleteNotFound is returned by Delete for an unknown code.
func ErrCompanyDeleteNotFound(code string) error {
	return domain.NotFoundf("company %s does not exist.", code)
}

// ErrEmptyCode is returned when a company name has no letters or digits to
// derive a code from.
var ErrEmptyCode error = domain.BadRequestf("name must contain at least one letter or digit")

// Invoice-related errors.

// ErrInvoiceNotFound is returned by Get for an unknown id.
func ErrInvoiceNotFound(id any) error {
	return domain.NotFoundf("%v does not exist.", id)
}

// ErrInvoiceUpdateNotFound is returned by Update for an unknown id.
func ErrInvoiceUpdateNotFound(id any) error {
	return domain.NotFoundf("Can't find invoice %v", id)
}

// ErrInvoiceDeleteNotFound is returned by Delete for an unknown id.
func ErrInvoiceDeleteNotFound(id any) error {
	return domain.NotFoundf("Invoice %v does not exist.", id)
}

// Industry-related errors.

// ErrIndustryNotFound is returned by Associate for an unknown code.
func ErrIndustryNotFound(code string) error {
	return domain.NotFoundf("%s not found", code)
}
