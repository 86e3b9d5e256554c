package models

type Staff struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Specialty  string `json:"specialty"`
	Commission int    `json:"commission"`
	Active     bool   `json:"active"`
	CreatedAt  string `json:"created_at"`
}
