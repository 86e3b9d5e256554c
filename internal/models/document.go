package models

import "github.com/shopspring/decimal"

func init() {
	// valores monetários vão para o arquivo como números
	decimal.MarshalJSONWithoutQuotes = true
}

type Section string

const (
	SectionClients      Section = "clients"
	SectionStaff        Section = "staff"
	SectionAppointments Section = "appointments"
	SectionLedger       Section = "ledger"
	SectionServices     Section = "services"
)

var Sections = []Section{
	SectionClients,
	SectionStaff,
	SectionAppointments,
	SectionLedger,
	SectionServices,
}

func (s Section) Valid() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// Document é o conteúdo completo do armazenamento, como gravado em disco.
type Document struct {
	Tenants      map[string]Tenant        `json:"tenants"`
	Clients      map[string][]Client      `json:"clients"`
	Staff        map[string][]Staff       `json:"staff"`
	Appointments map[string][]Appointment `json:"appointments"`
	Ledger       map[string][]LedgerEntry `json:"ledger"`
	Services     map[string][]Service     `json:"services"`
}

func NewDocument() *Document {
	return &Document{
		Tenants:      map[string]Tenant{},
		Clients:      map[string][]Client{},
		Staff:        map[string][]Staff{},
		Appointments: map[string][]Appointment{},
		Ledger:       map[string][]LedgerEntry{},
		Services:     map[string][]Service{},
	}
}
