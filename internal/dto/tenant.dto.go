package dto

import "github.com/BruksfildServices01/barberpro/internal/models"

// TenantDTO nunca expõe o hash da senha.
type TenantDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Plan      string `json:"plan"`
	Active    bool   `json:"active"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
	HasLogo   bool   `json:"has_logo"`
}

func NewTenantDTO(t models.Tenant) TenantDTO {
	return TenantDTO{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Plan:      t.Plan,
		Active:    t.Active,
		IsAdmin:   t.IsAdmin(),
		CreatedAt: t.CreatedAt,
		HasLogo:   t.LogoKey != "",
	}
}
