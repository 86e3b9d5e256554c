package models

import "time"

// Uma linha por (barbearia, seção) no armazenamento relacional.
type SectionRecord struct {
	TenantID  string    `gorm:"primaryKey;size:64"`
	Section   string    `gorm:"primaryKey;size:32"`
	Payload   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
