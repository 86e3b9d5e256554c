package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	ucLedger "github.com/BruksfildServices01/barberpro/internal/usecase/ledger"
)

type LedgerHandler struct {
	create  *ucLedger.CreateEntry
	list    *ucLedger.ListEntries
	summary *ucLedger.MonthlySummary
}

func NewLedgerHandler(
	create *ucLedger.CreateEntry,
	list *ucLedger.ListEntries,
	summary *ucLedger.MonthlySummary,
) *LedgerHandler {
	return &LedgerHandler{create: create, list: list, summary: summary}
}

type CreateEntryRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
}

func (h *LedgerHandler) List(c *gin.Context) {
	entries, err := h.list.Execute(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, entries)
}

func (h *LedgerHandler) Create(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	entry, err := h.create.Execute(c.Request.Context(), middleware.CurrentSession(c), ucLedger.CreateEntryInput{
		Date:        req.Date,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, entry)
}

// Summary usa ?month=YYYY-MM; sem mês, resume o corrente.
func (h *LedgerHandler) Summary(c *gin.Context) {
	out, err := h.summary.Execute(c.Request.Context(), middleware.CurrentSession(c), c.Query("month"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}
