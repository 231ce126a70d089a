package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestInvoices_CreateListGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedCompany(t, db, "acme", "Acme")

	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	inv, err := CreateInvoice(ctx, db, "acme", decimal.RequireFromString("250.25"), day)
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if inv.ID == 0 || inv.Paid || inv.PaidDate != nil || inv.CompCode != "acme" {
		t.Fatalf("unexpected new invoice: %+v", inv)
	}

	list, err := ListInvoices(ctx, db)
	if err != nil || len(list) != 1 || list[0].ID != inv.ID {
		t.Fatalf("list: %+v err=%v", list, err)
	}

	got, err := GetInvoiceWithCompany(ctx, db, inv.ID)
	if err != nil {
		t.Fatalf("GetInvoiceWithCompany: %v", err)
	}
	if got.Company == nil || got.Company.Code != "acme" || got.Company.Name != "Acme" {
		t.Fatalf("company not joined: %+v", got.Company)
	}
	if !got.Amt.Equal(decimal.RequireFromString("250.25")) || !got.AddDate.Equal(day) {
		t.Fatalf("unexpected fields: %+v", got)
	}

	if _, err := GetInvoiceWithCompany(ctx, db, inv.ID+100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing: want ErrNotFound, got %v", err)
	}
}

func TestCreateInvoice_UnknownCompany_FKError(t *testing.T) {
	db := newTestDB(t)
	_, err := CreateInvoice(context.Background(), db, "ghost", decimal.NewFromInt(1), time.Now().UTC())
	if err == nil {
		t.Fatalf("expected foreign key violation")
	}
}

func TestUpdateInvoicePayment_SetAndClear(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedCompany(t, db, "acme", "Acme")
	inv, _ := CreateInvoice(ctx, db, "acme", decimal.NewFromInt(10), time.Now().UTC())

	paidOn := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := UpdateInvoicePayment(ctx, db, inv.ID, decimal.NewFromInt(20), true, &paidOn); err != nil {
		t.Fatalf("pay: %v", err)
	}
	got, _ := GetInvoice(ctx, db, inv.ID)
	if !got.Paid || got.PaidDate == nil || !got.PaidDate.Equal(paidOn) || !got.Amt.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("after pay: %+v", got)
	}

	if err := UpdateInvoicePayment(ctx, db, inv.ID, decimal.NewFromInt(20), false, nil); err != nil {
		t.Fatalf("unpay: %v", err)
	}
	got, _ = GetInvoice(ctx, db, inv.ID)
	if got.Paid || got.PaidDate != nil {
		t.Fatalf("after unpay: %+v", got)
	}

	if err := UpdateInvoicePayment(ctx, db, 9999, decimal.Zero, false, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing: want ErrNotFound, got %v", err)
	}
}

func TestDeleteInvoice(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedCompany(t, db, "acme", "Acme")
	inv, _ := CreateInvoice(ctx, db, "acme", decimal.NewFromInt(10), time.Now().UTC())

	if err := DeleteInvoice(ctx, db, inv.ID); err != nil {
		t.Fatalf("DeleteInvoice: %v", err)
	}
	if err := DeleteInvoice(ctx, db, inv.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}

	// ids are never reused
	next, _ := CreateInvoice(ctx, db, "acme", decimal.NewFromInt(1), time.Now().UTC())
	if next.ID <= inv.ID {
		t.Fatalf("id reused: %d <= %d", next.ID, inv.ID)
	}
}
