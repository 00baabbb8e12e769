package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/stockbook/backend/internal/application/partner"
)

// CustomerHandler handles customer API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// Create godoc
// @Summary      Create a new customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body partner.CreateCustomerRequest true "Customer creation request"
// @Success      201 {object} dto.Response{data=partner.CustomerResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /partner/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req partnerapp.CreateCustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} dto.Response{data=partner.CustomerResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /partner/customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        search query string false "Name, phone or email search"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]partner.CustomerResponse}
// @Security     BearerAuth
// @Router       /partner/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var filter partnerapp.PartyListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	page, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID"
// @Param        request body partner.UpdateCustomerRequest true "Customer update request"
// @Success      200 {object} dto.Response{data=partner.CustomerResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /partner/customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req partnerapp.UpdateCustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a customer
// @Description  Deletes a customer. Fails when the customer's ledger carries an outstanding balance.
// @Tags         customers
// @Param        id path string true "Customer ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /partner/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
