package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	ucBilling "github.com/BruksfildServices01/barberpro/internal/usecase/billing"
)

type BillingHandler struct {
	checkout *ucBilling.CreateCheckout
}

func NewBillingHandler(checkout *ucBilling.CreateCheckout) *BillingHandler {
	return &BillingHandler{checkout: checkout}
}

type CheckoutRequest struct {
	Plan string `json:"plan" binding:"required,nonblank"`
}

func (h *BillingHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	out, err := h.checkout.Execute(c.Request.Context(), middleware.CurrentSession(c), req.Plan)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, out)
}
