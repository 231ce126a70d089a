// Package services – CompanyService
//
// This file implements CompanyService, which manages companies and builds
// the company detail view (company + invoices + industry labels). Codes are
// derived from names once, at creation, and never rewritten.
package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-biztime-backend/internal/domain"
	"github.com/tbourn/go-biztime-backend/internal/repo"
)

// CompanyRepo defines the repository contract required by CompanyService.
type CompanyRepo interface {
	// ListCompanies returns every company.
	ListCompanies(ctx context.Context, db *gorm.DB) ([]domain.Company, error)

	// CompanyInvoiceRows returns the company LEFT JOIN invoices rows for code.
	CompanyInvoiceRows(ctx context.Context, db *gorm.DB, code string) ([]repo.CompanyInvoiceRow, error)

	// IndustryLabels returns the labels of industries associated to code.
	IndustryLabels(ctx context.Context, db *gorm.DB, code string) ([]string, error)

	// CreateCompany inserts a company.
	CreateCompany(ctx context.Context, db *gorm.DB, code, name, description string) (*domain.Company, error)

	// UpdateCompany rewrites name and description.
	UpdateCompany(ctx context.Context, db *gorm.DB, code, name, description string) (*domain.Company, error)

	// DeleteCompany removes a company.
	DeleteCompany(ctx context.Context, db *gorm.DB, code string) error
}

// CompanyService provides company-level operations.
type CompanyService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the company repository used by this service.
	Repo CompanyRepo
}

// NewCompanyService constructs a CompanyService.
func NewCompanyService(db *gorm.DB, r CompanyRepo) *CompanyService {
	return &CompanyService{DB: db, Repo: r}
}

// List returns all companies.
func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.Repo.ListCompanies(ctx, s.DB)
}

// Get returns the company detail view for code, folding the LEFT JOIN rows
// into one company with its invoices.
func (s *CompanyService) Get(ctx context.Context, code string) (*domain.CompanyDetail, error) {
	ctx, span := otel.Tracer("services/CompanyService").Start(ctx, "Get",
		trace.WithAttributes(attribute.String("company.code", code)),
	)
	defer span.End()

	rows, err := s.Repo.CompanyInvoiceRows(ctx, s.DB, code)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrCompanyNotFound(code)
	}

	out := &domain.CompanyDetail{
		Code:        rows[0].Code,
		Name:        rows[0].Name,
		Description: rows[0].Description,
		Invoices:    make([]domain.InvoiceSummary, 0, len(rows)),
	}
	for _, r := range rows {
		if r.InvoiceID == nil {
			continue
		}
		inv := domain.InvoiceSummary{
			ID:       *r.InvoiceID,
			Amt:      r.Amt.Decimal,
			PaidDate: r.PaidDate,
		}
		if r.Paid != nil {
			inv.Paid = *r.Paid
		}
		if r.AddDate != nil {
			inv.AddDate = *r.AddDate
		}
		out.Invoices = append(out.Invoices, inv)
	}

	out.Industries, err = s.Repo.IndustryLabels(ctx, s.DB, code)
	if err != nil {
		return nil, err
	}
	if out.Industries == nil {
		out.Industries = []string{}
	}
	return out, nil
}

// Create derives the company code from name and inserts the company.
// A duplicate name or code is returned as the store's error.
func (s *CompanyService) Create(ctx context.Context, name, description string) (*domain.Company, error) {
	name = NormalizeName(name)
	code := Slugify(name)
	if code == "" {
		return nil, ErrEmptyCode
	}
	return s.Repo.CreateCompany(ctx, s.DB, code, name, description)
}

// Update rewrites name and description; the code never changes.
func (s *CompanyService) Update(ctx context.Context, code, name, description string) (*domain.Company, error) {
	c, err := s.Repo.UpdateCompany(ctx, s.DB, code, NormalizeName(name), description)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrCompanyNotFound(code)
	}
	return c, err
}

// Delete removes a company. Companies still referenced by invoices or
// industries are refused by the store.
func (s *CompanyService) Delete(ctx context.Context, code string) error {
	err := s.Repo.DeleteCompany(ctx, s.DB, code)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrCompanyDeleteNotFound(code)
	}
	return err
}
