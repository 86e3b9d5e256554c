package models

import "github.com/shopspring/decimal"

// Nomes de cliente, barbeiro e serviço são cópias, não referências.
type Appointment struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	ClientName  string          `json:"client_name"`
	StaffName   string          `json:"staff_name"`
	ServiceName string          `json:"service_name"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   string          `json:"created_at"`
}
