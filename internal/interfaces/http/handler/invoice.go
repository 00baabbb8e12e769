package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/stockbook/backend/internal/application/billing"
	"github.com/stockbook/backend/internal/domain/billing"
)

// InvoiceHandler handles sales and purchase invoice API endpoints. The
// invoice kind is fixed per route group, so sales and purchase invoices
// share one handler with the kind bound at registration time.
type InvoiceHandler struct {
	BaseHandler
	postingService *billingapp.PostingService
	paymentService *billingapp.PaymentService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(postingService *billingapp.PostingService, paymentService *billingapp.PaymentService) *InvoiceHandler {
	return &InvoiceHandler{
		postingService: postingService,
		paymentService: paymentService,
	}
}

// PostSales godoc
// @Summary      Post a sales invoice
// @Description  Posts a sales invoice. Stock is decremented per line and the customer ledger is updated, all in one transaction.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body billing.PostInvoiceRequest true "Invoice posting request"
// @Success      201 {object} dto.Response{data=billing.InvoiceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /billing/sales-invoices [post]
func (h *InvoiceHandler) PostSales(c *gin.Context) {
	h.post(c, billing.InvoiceKindSales)
}

// PostPurchase godoc
// @Summary      Post a purchase invoice
// @Description  Posts a purchase invoice. Stock is incremented per line and the supplier ledger is updated, all in one transaction.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body billing.PostInvoiceRequest true "Invoice posting request"
// @Success      201 {object} dto.Response{data=billing.InvoiceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /billing/purchase-invoices [post]
func (h *InvoiceHandler) PostPurchase(c *gin.Context) {
	h.post(c, billing.InvoiceKindPurchase)
}

func (h *InvoiceHandler) post(c *gin.Context, kind billing.InvoiceKind) {
	var req billingapp.PostInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.postingService.PostInvoice(c.Request.Context(), kind, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListSales godoc
// @Summary      List sales invoices
// @Tags         invoices
// @Produce      json
// @Param        counterparty_id query string false "Customer ID filter"
// @Param        date query string false "Invoice date filter (YYYY-MM-DD)"
// @Param        search query string false "Display ID or counterparty search"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]billing.InvoiceResponse}
// @Security     BearerAuth
// @Router       /billing/sales-invoices [get]
func (h *InvoiceHandler) ListSales(c *gin.Context) {
	h.list(c, billing.InvoiceKindSales)
}

// ListPurchases godoc
// @Summary      List purchase invoices
// @Tags         invoices
// @Produce      json
// @Param        counterparty_id query string false "Supplier ID filter"
// @Param        date query string false "Invoice date filter (YYYY-MM-DD)"
// @Param        search query string false "Display ID or counterparty search"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]billing.InvoiceResponse}
// @Security     BearerAuth
// @Router       /billing/purchase-invoices [get]
func (h *InvoiceHandler) ListPurchases(c *gin.Context) {
	h.list(c, billing.InvoiceKindPurchase)
}

func (h *InvoiceHandler) list(c *gin.Context, kind billing.InvoiceKind) {
	var filter billingapp.InvoiceListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	page, err := h.postingService.ListInvoices(c.Request.Context(), kind, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Success      200 {object} dto.Response{data=billing.InvoiceResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /billing/invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.postingService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete an invoice
// @Description  Deletes an invoice and reverses its stock effects. Ledger entries recorded at posting time are kept.
// @Tags         invoices
// @Param        id path string true "Invoice ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /billing/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.postingService.DeleteInvoice(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddPayment godoc
// @Summary      Record a loan payment
// @Description  Records a repayment against a loan invoice. Fails when the invoice is not a loan or the amount exceeds the remaining balance.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Param        request body billing.AddPaymentRequest true "Payment request"
// @Success      201 {object} dto.Response{data=billing.InvoiceResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /billing/invoices/{id}/payments [post]
func (h *InvoiceHandler) AddPayment(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req billingapp.AddPaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.AddPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListPayments godoc
// @Summary      List loan payments
// @Description  Returns the payments recorded against an invoice, newest first.
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Success      200 {object} dto.Response{data=[]billing.LoanPaymentResponse}
// @Security     BearerAuth
// @Router       /billing/invoices/{id}/payments [get]
func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}
