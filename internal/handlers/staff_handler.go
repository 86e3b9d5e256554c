package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	ucStaff "github.com/BruksfildServices01/barberpro/internal/usecase/staff"
)

type StaffHandler struct {
	create *ucStaff.CreateStaff
	list   *ucStaff.ListStaff
}

func NewStaffHandler(create *ucStaff.CreateStaff, list *ucStaff.ListStaff) *StaffHandler {
	return &StaffHandler{create: create, list: list}
}

type CreateStaffRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Specialty  string `json:"specialty"`
	Commission int    `json:"commission"`
	Active     *bool  `json:"active,omitempty"`
}

func (h *StaffHandler) List(c *gin.Context) {
	onlyActive := c.Query("active") == "true"

	staff, err := h.list.Execute(c.Request.Context(), middleware.CurrentSession(c), onlyActive)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	member, err := h.create.Execute(c.Request.Context(), middleware.CurrentSession(c), ucStaff.CreateStaffInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Specialty:  req.Specialty,
		Commission: req.Commission,
		Active:     req.Active,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, member)
}
