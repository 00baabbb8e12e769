package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/stockbook/backend/internal/application/catalog"
)

// ProductHandler handles product API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// Create godoc
// @Summary      Create a new product
// @Description  Creates a product. When a supplier and opening stock are given, a purchase invoice is booked for the opening quantity.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body catalog.CreateProductRequest true "Product creation request"
// @Success      201 {object} dto.Response{data=catalog.CreateProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.Response{data=catalog.ProductResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        search query string false "Name search"
// @Param        status query string false "Stock status filter" Enums(in_stock, low_stock, out_of_stock)
// @Param        supplier_id query string false "Owning supplier filter"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]catalog.ProductResponse}
// @Security     BearerAuth
// @Router       /catalog/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	page, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListLowStock godoc
// @Summary      List low stock products
// @Description  Returns products at or below their low stock threshold, including out of stock products.
// @Tags         products
// @Produce      json
// @Success      200 {object} dto.Response{data=[]catalog.ProductResponse}
// @Security     BearerAuth
// @Router       /catalog/products/low-stock [get]
func (h *ProductHandler) ListLowStock(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	products, err := h.productService.ListLowStock(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// Update godoc
// @Summary      Update a product
// @Description  Updates product details. A quantity in the request is applied as a manual stock correction.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body catalog.UpdateProductRequest true "Product update request"
// @Success      200 {object} dto.Response{data=catalog.ProductResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req catalogapp.UpdateProductRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a product
// @Tags         products
// @Param        id path string true "Product ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
