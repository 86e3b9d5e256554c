// Package metrics registra os contadores Prometheus da aplicação no registry
// padrão, expostos em /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "barberpro"

// StoreWritesTotal conta gravações no armazenamento.
// Label section: clients, staff, appointments, ledger, services ou "tenants".
var StoreWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_writes_total",
		Help:      "Total number of successful store writes, by section.",
	},
	[]string{"section"},
)

// LoginsTotal conta tentativas de login.
// Label result: ok, invalid_credentials, account_disabled.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AppointmentTransitionsTotal conta mudanças de status aplicadas.
var AppointmentTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_transitions_total",
		Help:      "Total number of appointment status transitions, by target status.",
	},
	[]string{"to"},
)

// LedgerEntriesTotal conta lançamentos criados.
// Label type: revenue ou expense. Label origin: manual ou appointment.
var LedgerEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_entries_total",
		Help:      "Total number of ledger entries created.",
	},
	[]string{"type", "origin"},
)

// BackupsTotal conta cópias do documento enviadas ao blob storage.
// Label result: ok, error, dropped.
var BackupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backups_total",
		Help:      "Total number of store backups, by result.",
	},
	[]string{"result"},
)

// ObserveStoreWrite serve de store.WriteHook.
func ObserveStoreWrite(section string) {
	if section == "" {
		section = "tenants"
	}
	StoreWritesTotal.WithLabelValues(section).Inc()
}
