package repo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tbourn/go-biztime-backend/internal/domain"
)

// ListInvoices returns every invoice ordered by id.
func ListInvoices(ctx context.Context, db *gorm.DB) ([]domain.Invoice, error) {
	out := []domain.Invoice{}
	err := db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// GetInvoice fetches an invoice by id, or ErrNotFound.
func GetInvoice(ctx context.Context, db *gorm.DB, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	if err := db.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetInvoiceWithCompany fetches an invoice joined with its company in a
// single query. Company is always populated on success.
func GetInvoiceWithCompany(ctx context.Context, db *gorm.DB, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := db.WithContext(ctx).
		InnerJoins("Company").
		Where("invoices.id = ?", id).
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// CreateInvoice inserts an unpaid invoice dated addDate. An unknown compCode
// surfaces as the driver's foreign key error.
func CreateInvoice(ctx context.Context, db *gorm.DB, compCode string, amt decimal.Decimal, addDate time.Time) (*domain.Invoice, error) {
	inv := &domain.Invoice{
		CompCode: compCode,
		Amt:      amt,
		Paid:     false,
		AddDate:  addDate,
	}
	if err := db.WithContext(ctx).Create(inv).Error; err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateInvoicePayment writes amt, paid and paid_date in one statement.
// A nil paidDate stores NULL. Returns ErrNotFound if the row is gone.
func UpdateInvoicePayment(ctx context.Context, db *gorm.DB, id int64, amt decimal.Decimal, paid bool, paidDate *time.Time) error {
	res := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"amt":       amt,
			"paid":      paid,
			"paid_date": paidDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteInvoice removes an invoice, or returns ErrNotFound.
func DeleteInvoice(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Invoice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
