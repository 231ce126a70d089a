// Package domain defines the persistence models for companies, invoices, and
// industries. These types are mapped with GORM and form the core data layer
// of the invoicing application.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are rendered as JSON numbers (100.5), not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Company is a business that can be invoiced. Its code is derived from the
// name at creation time and never changes afterwards.
//
// Fields:
//   - Code: slug primary key, used as the join key by invoices and industries.
//   - Name: display name, unique across companies.
//   - Description: free text.
type Company struct {
	Code        string `json:"code"        gorm:"type:varchar(255);primaryKey"`
	Name        string `json:"name"        gorm:"type:varchar(255);not null;uniqueIndex:ux_companies_name"`
	Description string `json:"description" gorm:"type:text;not null;default:''"`
}

// TableName returns the database table name for Company.
func (Company) TableName() string { return "companies" }

// Invoice is a bill issued to a company. Invoices start unpaid; PaidDate is
// set and cleared by the paid-state transition (see NextPaidDate).
//
// Fields:
//   - ID: store-assigned integer primary key, never reused.
//   - CompCode: foreign key to companies.code; required and immutable.
//   - Amt: invoiced amount (decimal, two fraction digits).
//   - Paid: settlement flag, false on creation.
//   - AddDate: calendar day of creation (UTC midnight).
//   - PaidDate: calendar day of settlement, nil while unpaid.
//   - Company: FK association. No ON DELETE action, so deleting a company
//     that still has invoices fails in the store.
type Invoice struct {
	ID       int64           `json:"id"        gorm:"primaryKey;autoIncrement"`
	CompCode string          `json:"comp_code" gorm:"type:varchar(255);not null;index"`
	Amt      decimal.Decimal `json:"amt"       gorm:"type:numeric(10,2);not null"`
	Paid     bool            `json:"paid"      gorm:"not null;default:false"`
	AddDate  time.Time       `json:"add_date"  gorm:"not null"`
	PaidDate *time.Time      `json:"paid_date"`

	Company *Company `json:"-" gorm:"foreignKey:CompCode;references:Code"`
}

// TableName returns the database table name for Invoice.
func (Invoice) TableName() string { return "invoices" }

// Industry is a labelled sector that may be associated to one company.
//
// Fields:
//   - Code: primary key chosen by the client (a slug).
//   - Industry: human-readable label.
//   - CompCode: optional foreign key to companies.code, set via association.
type Industry struct {
	Code     string  `json:"code"      gorm:"type:varchar(255);primaryKey"`
	Industry string  `json:"industry"  gorm:"type:varchar(255);not null"`
	CompCode *string `json:"comp_code" gorm:"type:varchar(255);index"`

	Company *Company `json:"-" gorm:"foreignKey:CompCode;references:Code"`
}

// TableName returns the database table name for Industry.
func (Industry) TableName() string { return "industries" }

// Today returns the calendar day of t in UTC, as midnight.
func Today(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
