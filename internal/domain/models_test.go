package domain

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// One connection so the PRAGMA below applies to every statement.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db.Exec("PRAGMA foreign_keys=ON;")
	return db
}

func TestTableNames(t *testing.T) {
	cases := map[string]string{
		(Company{}).TableName():     "companies",
		(Invoice{}).TableName():     "invoices",
		(Industry{}).TableName():    "industries",
		(Idempotency{}).TableName(): "idempotency_keys",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("TableName() = %q; want %q", got, want)
		}
	}
}

func TestMigrations_IndexesAndForeignKeys(t *testing.T) {
	db := newDomainDB(t)

	if err := db.AutoMigrate(&Company{}, &Invoice{}, &Industry{}, &Idempotency{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()

	for _, tbl := range []any{&Company{}, &Invoice{}, &Industry{}, &Idempotency{}} {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}
	if !m.HasIndex(&Company{}, "ux_companies_name") {
		t.Fatalf("expected unique index ux_companies_name")
	}
	if !m.HasIndex(&Idempotency{}, "ux_idem_key_method_path") {
		t.Fatalf("expected unique index ux_idem_key_method_path")
	}

	// Duplicate company name is rejected by the store.
	if err := db.Create(&Company{Code: "acme", Name: "Acme"}).Error; err != nil {
		t.Fatalf("create company: %v", err)
	}
	if err := db.Create(&Company{Code: "acme-2", Name: "Acme"}).Error; err == nil {
		t.Fatalf("expected unique violation on duplicate name")
	}

	// Invoice for an unknown company violates the FK.
	bad := &Invoice{CompCode: "ghost", Amt: decimal.NewFromInt(1), AddDate: Today(time.Now())}
	if err := db.Create(bad).Error; err == nil {
		t.Fatalf("expected FK violation for unknown comp_code")
	}

	// Deleting a company that still has invoices is refused (no cascade).
	inv := &Invoice{CompCode: "acme", Amt: decimal.NewFromInt(10), AddDate: Today(time.Now())}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if inv.ID == 0 {
		t.Fatalf("expected store-assigned invoice id")
	}
	if err := db.Where("code = ?", "acme").Delete(&Company{}).Error; err == nil {
		t.Fatalf("expected FK violation deleting referenced company")
	}
}

func TestInvoiceJSON_Shape(t *testing.T) {
	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	inv := Invoice{ID: 7, CompCode: "acme", Amt: decimal.RequireFromString("100.50"), AddDate: day}

	b, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["amt"] != 100.5 {
		t.Fatalf("amt should be a JSON number, got %#v", got["amt"])
	}
	if got["paid_date"] != nil {
		t.Fatalf("paid_date should be null, got %#v", got["paid_date"])
	}
	if got["add_date"] != "2024-02-05T00:00:00Z" {
		t.Fatalf("add_date = %#v", got["add_date"])
	}
	if _, ok := got["Company"]; ok {
		t.Fatalf("association must not be serialized")
	}
}

func TestToday_TruncatesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2025, 3, 10, 2, 30, 0, 0, loc) // 2025-03-09 21:30 UTC
	got := Today(in)
	want := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Fatalf("Today(%v) = %v; want %v", in, got, want)
	}
}
