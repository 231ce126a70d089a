package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceSummary is an invoice as listed inside a company detail view.
// comp_code is implied by the enclosing company and omitted.
type InvoiceSummary struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// CompanyDetail is a company with every invoice issued to it and the labels
// of its associated industries. Both lists are empty, never null, when there
// is nothing to show.
type CompanyDetail struct {
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Invoices    []InvoiceSummary `json:"invoices"`
	Industries  []string         `json:"industries"`
}

// InvoiceDetail is an invoice with its company embedded in place of
// comp_code.
type InvoiceDetail struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  Company         `json:"company"`
}
