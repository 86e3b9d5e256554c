package dto

import (
	"github.com/BruksfildServices01/barberpro/internal/domain/ledger"
)

type DashboardDTO struct {
	Date              string               `json:"date"`
	TodayCount        int                  `json:"today_count"`
	TodayAppointments []AppointmentListDTO `json:"today_appointments"`
	ClientCount       int                  `json:"client_count"`
	ActiveStaffCount  int                  `json:"active_staff_count"`
	Month             ledger.Summary       `json:"month"`
}
