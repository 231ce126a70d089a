package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tbourn/go-biztime-backend/internal/domain"
	"github.com/tbourn/go-biztime-backend/internal/repo"
)

func newInvoiceService(t *testing.T, now time.Time) *InvoiceService {
	t.Helper()
	db := newServiceDB(t)
	if _, err := repo.CreateCompany(context.Background(), db, "acme", "Acme", "Widgets"); err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return &InvoiceService{DB: db, Now: func() time.Time { return now }}
}

func TestInvoiceService_Create_UnpaidDatedToday(t *testing.T) {
	now := time.Date(2024, 2, 5, 15, 30, 0, 0, time.UTC)
	svc := newInvoiceService(t, now)

	inv, err := svc.Create(context.Background(), "acme", decimal.RequireFromString("100.555"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if inv.Paid || inv.PaidDate != nil {
		t.Fatalf("new invoice must be unpaid: %+v", inv)
	}
	if !inv.AddDate.Equal(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("add_date = %v", inv.AddDate)
	}
	if !inv.Amt.Equal(decimal.RequireFromString("100.56")) {
		t.Fatalf("amt = %v; want 100.56", inv.Amt)
	}
}

func TestInvoiceService_Create_UnknownCompany_500(t *testing.T) {
	svc := newInvoiceService(t, time.Now())

	_, err := svc.Create(context.Background(), "ghost", decimal.NewFromInt(1))
	if err == nil || domain.StatusOf(err) != http.StatusInternalServerError {
		t.Fatalf("want store error rendered as 500, got %v", err)
	}
}

func TestInvoiceService_Update_PaidTransitions(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newInvoiceService(t, day1)
	ctx := context.Background()

	inv, err := svc.Create(ctx, "acme", decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Unpaid -> Paid: paid_date = today
	got, err := svc.Update(ctx, inv.ID, decimal.NewFromInt(100), true)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	wantDay := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Paid || got.PaidDate == nil || !got.PaidDate.Equal(wantDay) {
		t.Fatalf("after pay: %+v", got)
	}

	// Paid -> Paid on a later day: paid_date unchanged
	svc.Now = func() time.Time { return day1.Add(72 * time.Hour) }
	got, err = svc.Update(ctx, inv.ID, decimal.NewFromInt(150), true)
	if err != nil {
		t.Fatalf("re-pay: %v", err)
	}
	if got.PaidDate == nil || !got.PaidDate.Equal(wantDay) || !got.Amt.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("after re-pay: %+v", got)
	}

	// Paid -> Unpaid: paid_date cleared
	got, err = svc.Update(ctx, inv.ID, decimal.NewFromInt(150), false)
	if err != nil {
		t.Fatalf("unpay: %v", err)
	}
	if got.Paid || got.PaidDate != nil {
		t.Fatalf("after unpay: %+v", got)
	}

	// Unpaid -> Unpaid: stays null
	got, err = svc.Update(ctx, inv.ID, decimal.NewFromInt(1), false)
	if err != nil || got.PaidDate != nil {
		t.Fatalf("unpaid stays unpaid: %+v err=%v", got, err)
	}
}

func TestInvoiceService_NotFoundMessages(t *testing.T) {
	svc := newInvoiceService(t, time.Now())
	ctx := context.Background()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"get", func() error { _, err := svc.Get(ctx, 404); return err }(), "404 does not exist."},
		{"update", func() error { _, err := svc.Update(ctx, 404, decimal.Zero, true); return err }(), "Can't find invoice 404"},
		{"delete", svc.Delete(ctx, 404), "Invoice 404 does not exist."},
	}
	for _, tc := range cases {
		if tc.err == nil || tc.err.Error() != tc.want || domain.StatusOf(tc.err) != http.StatusNotFound {
			t.Fatalf("%s: got %v; want 404 %q", tc.name, tc.err, tc.want)
		}
	}
}

func TestInvoiceService_Get_EmbedsCompany(t *testing.T) {
	svc := newInvoiceService(t, time.Now())
	ctx := context.Background()
	inv, _ := svc.Create(ctx, "acme", decimal.NewFromInt(9))

	got, err := svc.Get(ctx, inv.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != inv.ID || got.Company.Code != "acme" || got.Company.Description != "Widgets" {
		t.Fatalf("unexpected detail: %+v", got)
	}

	list, err := svc.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %+v err=%v", list, err)
	}
	if err := svc.Delete(ctx, inv.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
