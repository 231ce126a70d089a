// Company HTTP handlers.
//
// This file exposes REST endpoints for company resources:
//   - GET    /companies          (list)
//   - GET    /companies/{code}   (detail with invoices and industries)
//   - POST   /companies          (create; code derived from name)
//   - PUT    /companies/{code}   (update name and description)
//   - DELETE /companies/{code}   (delete)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-biztime-backend/internal/domain"
)

//
// DTOs
//

// CompanyRequest is the JSON payload for creating or updating a company.
type CompanyRequest struct {
	// Name is the display name; on create the company code is derived from it.
	Name        string `json:"name" binding:"required" example:"Acme Corp"`
	Description string `json:"description" example:"Maker of anvils"`
}

// CompaniesResponse wraps the company list.
type CompaniesResponse struct {
	Companies []domain.Company `json:"companies"`
}

// CompanyDetailResponse wraps the company detail view. The single element
// is kept in an array for client compatibility.
type CompanyDetailResponse struct {
	Company []domain.CompanyDetail `json:"company"`
}

// CompanyResponse wraps a single company.
type CompanyResponse struct {
	Company *domain.Company `json:"company"`
}

// DeletedMsgResponse confirms a company deletion.
type DeletedMsgResponse struct {
	Msg string `json:"msg" example:"deleted"`
}

//
// Handlers
//

// ListCompanies godoc
// @ID          listCompanies
// @Summary     List companies
// @Tags        Companies
// @Produce     json
// @Success     200  {object}  handlers.CompaniesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /companies [get]
func (h *Handlers) ListCompanies(c *gin.Context) {
	cs, err := h.companySvc.List(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, CompaniesResponse{Companies: cs})
}

// GetCompany godoc
// @ID          getCompany
// @Summary     Get a company
// @Description Returns the company with all of its invoices and the labels of its industries.
// @Tags        Companies
// @Produce     json
// @Param       code  path  string  true  "Company code"  example(acme-corp)
// @Success     200  {object}  handlers.CompanyDetailResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /companies/{code} [get]
func (h *Handlers) GetCompany(c *gin.Context) {
	code := c.Param("code")
	d, err := h.companySvc.Get(c.Request.Context(), code)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, CompanyDetailResponse{Company: []domain.CompanyDetail{*d}})
}

// CreateCompany godoc
// @ID          createCompany
// @Summary     Create a company
// @Description The company code is the slug of its name. Send Idempotency-Key to make retries safe.
// @Tags        Companies
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Idempotency key"
// @Param       body  body  handlers.CompanyRequest  true  "Company payload"
// @Success     201  {object}  handlers.CompanyResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error (e.g. duplicate name)"
// @Router      /companies [post]
func (h *Handlers) CreateCompany(c *gin.Context) {
	var req CompanyRequest
	if err := bindJSON(c, &req); err != nil {
		abort(c, err)
		return
	}
	co, err := h.companySvc.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusCreated, CompanyResponse{Company: co})
}

// UpdateCompany godoc
// @ID          updateCompany
// @Summary     Update a company
// @Description Rewrites name and description. The code is never changed.
// @Tags        Companies
// @Accept      json
// @Produce     json
// @Param       code  path  string  true  "Company code"
// @Param       body  body  handlers.CompanyRequest  true  "Company payload"
// @Success     200  {object}  handlers.CompanyResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /companies/{code} [put]
func (h *Handlers) UpdateCompany(c *gin.Context) {
	var req CompanyRequest
	if err := bindJSON(c, &req); err != nil {
		abort(c, err)
		return
	}
	co, err := h.companySvc.Update(c.Request.Context(), c.Param("code"), req.Name, req.Description)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, CompanyResponse{Company: co})
}

// DeleteCompany godoc
// @ID          deleteCompany
// @Summary     Delete a company
// @Tags        Companies
// @Produce     json
// @Param       code  path  string  true  "Company code"
// @Success     200  {object}  handlers.DeletedMsgResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error (e.g. company still has invoices)"
// @Router      /companies/{code} [delete]
func (h *Handlers) DeleteCompany(c *gin.Context) {
	if err := h.companySvc.Delete(c.Request.Context(), c.Param("code")); err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, DeletedMsgResponse{Msg: "deleted"})
}
