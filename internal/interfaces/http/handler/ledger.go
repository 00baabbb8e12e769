package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/stockbook/backend/internal/application/ledger"
	"github.com/stockbook/backend/internal/domain/ledger"
)

// LedgerHandler handles counterparty ledger API endpoints
type LedgerHandler struct {
	BaseHandler
	ledgerService *ledgerapp.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *ledgerapp.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// List godoc
// @Summary      List ledgers
// @Tags         ledgers
// @Produce      json
// @Param        party_type query string false "Party type filter" Enums(customer, supplier)
// @Param        search query string false "Party name search"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]ledger.LedgerResponse}
// @Security     BearerAuth
// @Router       /ledgers [get]
func (h *LedgerHandler) List(c *gin.Context) {
	var filter ledgerapp.LedgerListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	page, err := h.ledgerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get godoc
// @Summary      Get a ledger
// @Tags         ledgers
// @Produce      json
// @Param        id path string true "Ledger ID"
// @Success      200 {object} dto.Response{data=ledger.LedgerResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /ledgers/{id} [get]
func (h *LedgerHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.ledgerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetByParty godoc
// @Summary      Get a ledger by counterparty
// @Tags         ledgers
// @Produce      json
// @Param        party_type path string true "Party type" Enums(customer, supplier)
// @Param        party_id path string true "Party ID"
// @Success      200 {object} dto.Response{data=ledger.LedgerResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /ledgers/party/{party_type}/{party_id} [get]
func (h *LedgerHandler) GetByParty(c *gin.Context) {
	partyType := ledger.PartyType(c.Param("party_type"))
	if partyType != ledger.PartyTypeCustomer && partyType != ledger.PartyTypeSupplier {
		h.BadRequest(c, "Party type must be customer or supplier")
		return
	}

	partyID, ok := h.parseUUIDParam(c, "party_id")
	if !ok {
		return
	}

	resp, err := h.ledgerService.GetByParty(c.Request.Context(), partyType, partyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListTransactions godoc
// @Summary      List ledger transactions
// @Description  Returns a ledger's transaction history, newest first.
// @Tags         ledgers
// @Produce      json
// @Param        id path string true "Ledger ID"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]ledger.TransactionResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /ledgers/{id}/transactions [get]
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var filter ledgerapp.TransactionListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	page, err := h.ledgerService.ListTransactions(c.Request.Context(), id, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
