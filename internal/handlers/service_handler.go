package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/barberpro/internal/usecase/catalog"
)

type ServiceHandler struct {
	create *ucCatalog.CreateService
	list   *ucCatalog.ListServices
}

func NewServiceHandler(create *ucCatalog.CreateService, list *ucCatalog.ListServices) *ServiceHandler {
	return &ServiceHandler{create: create, list: list}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	DurationMin int             `json:"duration_min"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), middleware.CurrentSession(c), ucCatalog.CreateServiceInput{
		Name:        req.Name,
		Price:       req.Price,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, svc)
}
