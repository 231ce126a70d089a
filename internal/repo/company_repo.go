// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Company
// model and the company detail view (company + invoices + industry labels).
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// usable on the pool or inside a transaction. They follow the "thin
// repository" approach: no business logic, only persistence and query
// composition.
//
// Error semantics:
//   - When a company is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound).
//   - Constraint violations and connectivity failures are propagated as the
//     raw driver error.
package repo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tbourn/go-biztime-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CompanyInvoiceRow is one row of the company/invoice LEFT JOIN. The invoice
// columns are NULL when the company has no invoices.
type CompanyInvoiceRow struct {
	Code        string
	Name        string
	Description string

	InvoiceID *int64
	Amt       decimal.NullDecimal
	Paid      *bool
	AddDate   *time.Time
	PaidDate  *time.Time
}

// ListCompanies returns every company ordered by code.
func ListCompanies(ctx context.Context, db *gorm.DB) ([]domain.Company, error) {
	out := []domain.Company{}
	err := db.WithContext(ctx).
		Select("code", "name", "description").
		Order("code").
		Find(&out).Error
	return out, err
}

// CompanyInvoiceRows runs the company detail query: the company row LEFT
// JOINed with its invoices, ordered by invoice id. An unknown code yields
// zero rows; a company without invoices yields one row with NULL invoice
// columns.
func CompanyInvoiceRows(ctx context.Context, db *gorm.DB, code string) ([]CompanyInvoiceRow, error) {
	var rows []CompanyInvoiceRow
	err := db.WithContext(ctx).
		Table("companies AS c").
		Select(`c.code, c.name, c.description,
			i.id AS invoice_id, i.amt, i.paid, i.add_date, i.paid_date`).
		Joins("LEFT JOIN invoices AS i ON i.comp_code = c.code").
		Where("c.code = ?", code).
		Order("i.id").
		Scan(&rows).Error
	return rows, err
}

// IndustryLabels returns the labels of the industries associated to a
// company, ordered by industry code.
func IndustryLabels(ctx context.Context, db *gorm.DB, compCode string) ([]string, error) {
	labels := []string{}
	err := db.WithContext(ctx).
		Model(&domain.Industry{}).
		Where("comp_code = ?", compCode).
		Order("code").
		Pluck("industry", &labels).Error
	return labels, err
}

// GetCompany fetches a company by code, or ErrNotFound.
func GetCompany(ctx context.Context, db *gorm.DB, code string) (*domain.Company, error) {
	var c domain.Company
	if err := db.WithContext(ctx).Where("code = ?", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCompany inserts a company row. A duplicate code or name surfaces as
// the driver's constraint error.
func CreateCompany(ctx context.Context, db *gorm.DB, code, name, description string) (*domain.Company, error) {
	c := &domain.Company{Code: code, Name: name, Description: description}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCompany rewrites name and description of the company identified by
// code and returns the stored row. The code itself never changes.
func UpdateCompany(ctx context.Context, db *gorm.DB, code, name, description string) (*domain.Company, error) {
	res := db.WithContext(ctx).
		Model(&domain.Company{}).
		Where("code = ?", code).
		Updates(map[string]any{"name": name, "description": description})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetCompany(ctx, db, code)
}

// DeleteCompany removes a company. Referencing invoices or industries make
// the store refuse the delete with a foreign key error.
func DeleteCompany(ctx context.Context, db *gorm.DB, code string) error {
	res := db.WithContext(ctx).Where("code = ?", code).Delete(&domain.Company{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
