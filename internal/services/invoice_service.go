// Package services – InvoiceService
//
// This file implements InvoiceService. Invoices are created unpaid and dated
// today; the paid flag moves them between Unpaid and Paid, with paid_date
// maintained by domain.NextPaidDate inside a single transaction.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-biztime-backend/internal/domain"
	"github.com/tbourn/go-biztime-backend/internal/repo"
)

// amtScale matches the numeric(10,2) column.
const amtScale = 2

// InvoiceService coordinates invoice persistence and the paid-state
// transition.
type InvoiceService struct {
	DB *gorm.DB

	// Now is the clock used for add_date and paid_date. Defaults to time.Now.
	Now func() time.Time
}

func (s *InvoiceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns all invoices.
func (s *InvoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	return repo.ListInvoices(ctx, s.DB)
}

// Get returns the invoice with its company embedded.
func (s *InvoiceService) Get(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	inv, err := repo.GetInvoiceWithCompany(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvoiceNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	out := &domain.InvoiceDetail{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
	if inv.Company != nil {
		out.Company = *inv.Company
	}
	return out, nil
}

// Create inserts an unpaid invoice for compCode dated today. An unknown
// company is refused by the store's foreign key.
func (s *InvoiceService) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*domain.Invoice, error) {
	return repo.CreateInvoice(ctx, s.DB, compCode, amt.Round(amtScale), domain.Today(s.now()))
}

// Update sets amt and paid and moves paid_date according to the transition
// rules. The read of the current paid_date and the write happen in one
// transaction so concurrent updates cannot interleave between them.
func (s *InvoiceService) Update(ctx context.Context, id int64, amt decimal.Decimal, paid bool) (*domain.Invoice, error) {
	ctx, span := otel.Tracer("services/InvoiceService").Start(ctx, "Update",
		trace.WithAttributes(
			attribute.Int64("invoice.id", id),
			attribute.Bool("invoice.paid", paid),
		),
	)
	defer span.End()

	var out *domain.Invoice
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := repo.GetInvoice(ctx, tx, id)
		if err != nil {
			return err
		}
		paidDate := domain.NextPaidDate(cur.PaidDate, paid, s.now())
		if err := repo.UpdateInvoicePayment(ctx, tx, id, amt.Round(amtScale), paid, paidDate); err != nil {
			return err
		}
		out, err = repo.GetInvoice(ctx, tx, id)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvoiceUpdateNotFound(id)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}

// Delete removes an invoice.
func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	err := repo.DeleteInvoice(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrInvoiceDeleteNotFound(id)
	}
	return err
}
