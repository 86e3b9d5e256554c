package models

import "github.com/shopspring/decimal"

const (
	PlanBasic   = "basic"
	PlanPro     = "pro"
	PlanPremium = "premium"
	PlanAdmin   = "admin"
)

type Plan struct {
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Mensalidade de cada plano.
var Plans = map[string]Plan{
	PlanBasic:   {Code: PlanBasic, Name: "Básico", Price: decimal.RequireFromString("49.90")},
	PlanPro:     {Code: PlanPro, Name: "Pro", Price: decimal.RequireFromString("99.90")},
	PlanPremium: {Code: PlanPremium, Name: "Premium", Price: decimal.RequireFromString("179.90")},
	PlanAdmin:   {Code: PlanAdmin, Name: "Admin", Price: decimal.Zero},
}

func IsValidPlan(code string) bool {
	_, ok := Plans[code]
	return ok
}
