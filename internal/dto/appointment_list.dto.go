package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

type AppointmentListDTO struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Status      string          `json:"status"`
	ClientName  string          `json:"client_name"`
	StaffName   string          `json:"staff_name"`
	ServiceName string          `json:"service_name"`
	Price       decimal.Decimal `json:"price"`
	Note        string          `json:"note,omitempty"`
}

func NewAppointmentListDTO(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:          ap.ID,
		Date:        ap.Date,
		Time:        ap.Time,
		Status:      ap.Status,
		ClientName:  ap.ClientName,
		StaffName:   ap.StaffName,
		ServiceName: ap.ServiceName,
		Price:       ap.Price,
		Note:        ap.Note,
	}
}
