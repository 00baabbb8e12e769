package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/stockbook/backend/internal/application/partner"
)

// SupplierHandler handles supplier API endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *partnerapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *partnerapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
	}
}

// Create godoc
// @Summary      Create a new supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        request body partner.CreateSupplierRequest true "Supplier creation request"
// @Success      201 {object} dto.Response{data=partner.SupplierResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /partner/suppliers [post]
func (h *SupplierHandler) Create(c *gin.Context) {
	var req partnerapp.CreateSupplierRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.supplierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get godoc
// @Summary      Get a supplier
// @Tags         suppliers
// @Produce      json
// @Param        id path string true "Supplier ID"
// @Success      200 {object} dto.Response{data=partner.SupplierResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /partner/suppliers/{id} [get]
func (h *SupplierHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.supplierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Param        search query string false "Name, phone or email search"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]partner.SupplierResponse}
// @Security     BearerAuth
// @Router       /partner/suppliers [get]
func (h *SupplierHandler) List(c *gin.Context) {
	var filter partnerapp.PartyListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	page, err := h.supplierService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id path string true "Supplier ID"
// @Param        request body partner.UpdateSupplierRequest true "Supplier update request"
// @Success      200 {object} dto.Response{data=partner.SupplierResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /partner/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req partnerapp.UpdateSupplierRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.supplierService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a supplier
// @Description  Deletes a supplier. Fails when the supplier's ledger carries an outstanding balance.
// @Tags         suppliers
// @Param        id path string true "Supplier ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /partner/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
