package models

// Conta de barbearia. Unidade de isolamento dos dados.
type Tenant struct {
	ID           string `json:"id" gorm:"primaryKey;size:64"`
	Name         string `json:"name" gorm:"size:100;not null"`
	Email        string `json:"email" gorm:"size:100;not null"`
	PasswordHash string `json:"password_hash" gorm:"size:255;not null"`
	Plan         string `json:"plan" gorm:"size:20;not null"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"created_at" gorm:"size:10"`
	LogoKey      string `json:"logo_key,omitempty" gorm:"size:255"`
}

func (t Tenant) IsAdmin() bool {
	return t.Plan == PlanAdmin
}
