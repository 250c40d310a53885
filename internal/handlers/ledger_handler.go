package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sipslabs/sips-api/internal/httperr"
	"github.com/sipslabs/sips-api/internal/httpresp"
	"github.com/sipslabs/sips-api/internal/timezone"
	ucledger "github.com/sipslabs/sips-api/internal/usecase/ledger"
)

// ======================================================
// HANDLER
// ======================================================

type LedgerHandler struct {
	createUC    *ucledger.CreateEntry
	listUC      *ucledger.ListEntries
	deleteUC    *ucledger.DeleteEntry
	summarizeUC *ucledger.SummarizeEntries
	exportUC    *ucledger.ExportEntries
}

func NewLedgerHandler(
	createUC *ucledger.CreateEntry,
	listUC *ucledger.ListEntries,
	deleteUC *ucledger.DeleteEntry,
	summarizeUC *ucledger.SummarizeEntries,
	exportUC *ucledger.ExportEntries,
) *LedgerHandler {
	return &LedgerHandler{
		createUC:    createUC,
		listUC:      listUC,
		deleteUC:    deleteUC,
		summarizeUC: summarizeUC,
		exportUC:    exportUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateLedgerEntryRequest struct {
	Date          string          `json:"date" binding:"required"`
	Description   string          `json:"description"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	Note          string          `json:"note"`
}

// ======================================================
// CREATE
// ======================================================

func (h *LedgerHandler) Create(c *gin.Context) {
	var req CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	entry, err := h.createUC.Execute(c.Request.Context(), ucledger.CreateEntryInput{
		Date:          date,
		Description:   req.Description,
		Kind:          req.Kind,
		Amount:        req.Amount,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_create_entry", "Erro ao salvar lançamento.")
		return
	}

	httpresp.Created(c, entry)
}

// ======================================================
// LIST
// ======================================================

func (h *LedgerHandler) List(c *gin.Context) {
	filter, ok := parseLedgerFilter(c)
	if !ok {
		return
	}

	entries, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_entries", "Erro ao listar lançamentos.")
		return
	}

	httpresp.List(c, entries)
}

// ======================================================
// DELETE
// ======================================================

func (h *LedgerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		respondBusiness(c, err, "failed_to_delete_entry", "Erro ao excluir lançamento.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// SUMMARY
// ======================================================

func (h *LedgerHandler) Summary(c *gin.Context) {
	filter, ok := parseLedgerFilter(c)
	if !ok {
		return
	}

	summary, err := h.summarizeUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_summarize", "Erro ao calcular resumo.")
		return
	}

	httpresp.OK(c, summary)
}

// ======================================================
// EXPORT (CSV)
// ======================================================

func (h *LedgerHandler) Export(c *gin.Context) {
	filter, ok := parseLedgerFilter(c)
	if !ok {
		return
	}

	csvBytes, err := h.exportUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_export", "Erro ao exportar lançamentos.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="lancamentos_financeiros.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csvBytes)
}
