package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	updateStatus *ucAppointment.UpdateAppointmentStatus
	listByDate   *ucAppointment.ListAppointmentsByDate
	listByMonth  *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	updateStatus *ucAppointment.UpdateAppointmentStatus,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		updateStatus: updateStatus,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name"`
	StaffName   string `json:"staff_name"`
	ServiceName string `json:"service_name"`
	Date        string `json:"date"`
	Time        string `json:"time" binding:"omitempty,hhmm"`
	Note        string `json:"note"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,nonblank"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if invalidField(err, "Time") {
			writeError(c, httperr.ErrBusiness("invalid_time"))
			return
		}
		invalidRequest(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), middleware.CurrentSession(c), ucAppointment.CreateAppointmentInput{
		ClientName:  req.ClientName,
		StaffName:   req.StaffName,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		Time:        req.Time,
		Note:        req.Note,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, httperr.ErrBusiness("invalid_status"))
		return
	}

	out, err := h.updateStatus.Execute(
		c.Request.Context(),
		middleware.CurrentSession(c),
		c.Param("id"),
		req.Status,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// LIST
// ======================================================

// ListByDate usa ?date=YYYY-MM-DD; sem data, lista hoje.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	list, err := h.listByDate.Execute(c.Request.Context(), middleware.CurrentSession(c), c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		writeError(c, httperr.ErrBusiness("invalid_month"))
		return
	}

	list, err := h.listByMonth.Execute(c.Request.Context(), middleware.CurrentSession(c), year, month)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, list)
}

func invalidField(err error, field string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Field() == field {
			return true
		}
	}
	return false
}
