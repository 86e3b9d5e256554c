package models

import "github.com/shopspring/decimal"

type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	DurationMin int             `json:"duration_min"`
}
