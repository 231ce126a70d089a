// Invoice HTTP handlers.
//
// This file exposes REST endpoints for invoice resources:
//   - GET    /invoices        (list)
//   - GET    /invoices/{id}   (detail with company)
//   - POST   /invoices        (create, unpaid)
//   - PUT    /invoices/{id}   (amount and paid state)
//   - DELETE /invoices/{id}   (delete)
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/tbourn/go-biztime-backend/internal/domain"
	"github.com/tbourn/go-biztime-backend/internal/services"
)

//
// DTOs
//

// CreateInvoiceRequest is the JSON payload for creating an invoice. amt
// accepts a JSON number or a numeric string.
type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code" binding:"required" example:"acme-corp"`
	Amt      *decimal.Decimal `json:"amt" binding:"required" swaggertype:"number" example:"100"`
}

// UpdateInvoiceRequest is the JSON payload for updating an invoice. A
// missing paid is false and marks the invoice unpaid.
type UpdateInvoiceRequest struct {
	Amt  *decimal.Decimal `json:"amt" binding:"required" swaggertype:"number" example:"100"`
	Paid bool             `json:"paid" example:"true"`
}

// InvoicesResponse wraps the invoice list.
type InvoicesResponse struct {
	Invoices []domain.Invoice `json:"invoices"`
}

// InvoiceDetailResponse wraps the invoice detail view in a one-element
// array.
type InvoiceDetailResponse struct {
	Invoice []domain.InvoiceDetail `json:"invoice"`
}

// InvoiceResponse wraps a single invoice.
type InvoiceResponse struct {
	Invoice *domain.Invoice `json:"invoice"`
}

// DeletedStatusResponse confirms an invoice deletion.
type DeletedStatusResponse struct {
	Status string `json:"status" example:"deleted"`
}

//
// Helpers
//

// invoiceID parses the id path parameter. A non-integer id cannot exist, so
// it is reported with the caller's not-found error.
func invoiceID(c *gin.Context, notFound func(any) error) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, notFound(raw)
	}
	return id, nil
}

//
// Handlers
//

// ListInvoices godoc
// @ID          listInvoices
// @Summary     List invoices
// @Tags        Invoices
// @Produce     json
// @Success     200  {object}  handlers.InvoicesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /invoices [get]
func (h *Handlers) ListInvoices(c *gin.Context) {
	invs, err := h.invoiceSvc.List(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, InvoicesResponse{Invoices: invs})
}

// GetInvoice godoc
// @ID          getInvoice
// @Summary     Get an invoice
// @Description Returns the invoice with its company embedded.
// @Tags        Invoices
// @Produce     json
// @Param       id  path  int  true  "Invoice id"
// @Success     200  {object}  handlers.InvoiceDetailResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /invoices/{id} [get]
func (h *Handlers) GetInvoice(c *gin.Context) {
	id, err := invoiceID(c, services.ErrInvoiceNotFound)
	if err != nil {
		abort(c, err)
		return
	}
	d, err := h.invoiceSvc.Get(c.Request.Context(), id)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, InvoiceDetailResponse{Invoice: []domain.InvoiceDetail{*d}})
}

// CreateInvoice godoc
// @ID          createInvoice
// @Summary     Create an invoice
// @Description New invoices are unpaid and dated today. Send Idempotency-Key to make retries safe.
// @Tags        Invoices
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Idempotency key"
// @Param       body  body  handlers.CreateInvoiceRequest  true  "Invoice payload"
// @Success     201  {object}  handlers.InvoiceResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error (e.g. unknown company)"
// @Router      /invoices [post]
func (h *Handlers) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := bindJSON(c, &req); err != nil {
		abort(c, err)
		return
	}
	inv, err := h.invoiceSvc.Create(c.Request.Context(), req.CompCode, *req.Amt)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusCreated, InvoiceResponse{Invoice: inv})
}

// UpdateInvoice godoc
// @ID          updateInvoice
// @Summary     Update an invoice
// @Description Sets the amount and paid flag. Paying an unpaid invoice dates it today, unpaying clears the date, and paying a paid invoice keeps its date.
// @Tags        Invoices
// @Accept      json
// @Produce     json
// @Param       id    path  int  true  "Invoice id"
// @Param       body  body  handlers.UpdateInvoiceRequest  true  "Update payload"
// @Success     200  {object}  handlers.InvoiceResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /invoices/{id} [put]
func (h *Handlers) UpdateInvoice(c *gin.Context) {
	id, err := invoiceID(c, services.ErrInvoiceUpdateNotFound)
	if err != nil {
		abort(c, err)
		return
	}
	var req UpdateInvoiceRequest
	if err := bindJSON(c, &req); err != nil {
		abort(c, err)
		return
	}
	inv, err := h.invoiceSvc.Update(c.Request.Context(), id, *req.Amt, req.Paid)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, InvoiceResponse{Invoice: inv})
}

// DeleteInvoice godoc
// @ID          deleteInvoice
// @Summary     Delete an invoice
// @Tags        Invoices
// @Produce     json
// @Param       id  path  int  true  "Invoice id"
// @Success     200  {object}  handlers.DeletedStatusResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /invoices/{id} [delete]
func (h *Handlers) DeleteInvoice(c *gin.Context) {
	id, err := invoiceID(c, services.ErrInvoiceDeleteNotFound)
	if err != nil {
		abort(c, err)
		return
	}
	if err := h.invoiceSvc.Delete(c.Request.Context(), id); err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, DeletedStatusResponse{Status: "deleted"})
}
