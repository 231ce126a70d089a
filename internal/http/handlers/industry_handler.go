// Industry HTTP handlers.
//
//   - GET   /industries          (list)
//   - POST  /industries          (create)
//   - PATCH /industries/{code}   (associate to a company)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-biztime-backend/internal/domain"
)

// CreateIndustryRequest is the JSON payload for creating an industry.
type CreateIndustryRequest struct {
	Code     string `json:"code" binding:"required,slug" example:"acct"`
	Industry string `json:"industry" binding:"required" example:"Accounting"`
}

// AssociateIndustryRequest names the company to associate.
type AssociateIndustryRequest struct {
	Company string `json:"company" binding:"required" example:"acme-corp"`
}

// IndustriesResponse wraps the industry list.
type IndustriesResponse struct {
	Industries []domain.Industry `json:"industries"`
}

// IndustryResponse wraps a single industry.
type IndustryResponse struct {
	Industry *domain.Industry `json:"industry"`
}

// ListIndustries godoc
// @ID          listIndustries
// @Summary     List industries
// @Tags        Industries
// @Produce     json
// @Success     200  {object}  handlers.IndustriesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /industries [get]
func (h *Handlers) ListIndustries(c *gin.Context) {
	is, err := h.industrySvc.List(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, IndustriesResponse{Industries: is})
}

// CreateIndustry godoc
// @ID          createIndustry
// @Summary     Create an industry
// @Tags        Industries
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Idempotency key"
// @Param       body  body  handlers.CreateIndustryRequest  true  "Industry payload"
// @Success     201  {object}  handlers.IndustryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error (e.g. duplicate code)"
// @Router      /industries [post]
func (h *Handlers) CreateIndustry(c *gin.Context) {
	var req CreateIndustryRequest
	if err := bindJSON(c, &req); err != nil {
		abort(c, err)
		return
	}
	ind, err := h.industrySvc.Create(c.Request.Context(), req.Code, req.Industry)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusCreated, IndustryResponse{Industry: ind})
}

// AssociateIndustry godoc
// @ID          associateIndustry
// @Summary     Associate an industry to a company
// @Description Returns the bare industry row, without an envelope.
// @Tags        Industries
// @Accept      json
// @Produce     json
// @Param       code  path  string  true  "Industry code"
// @Param       body  body  handlers.AssociateIndustryRequest  true  "Association payload"
// @Success     200  {object}  domain.Industry
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error (e.g. unknown company)"
// @Router      /industries/{code} [patch]
func (h *Handlers) AssociateIndustry(c *gin.Context) {
	var req AssociateIndustryRequest
	if err := bindJSON(c, &req); err != nil {
		abort(c, err)
		return
	}
	ind, err := h.industrySvc.Associate(c.Request.Context(), c.Param("code"), req.Company)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, ind)
}
