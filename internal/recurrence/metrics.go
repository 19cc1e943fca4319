package recurrence

import "github.com/prometheus/client_golang/prometheus"

// Collectors returns the metrics of the recurrence engine so that they
// can be registered together with the HTTP metrics.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		recurrencesCreated,
		installmentsGenerated,
		recurrencesDeleted,
		scopedUpdates,
		unitFallbacks,
	}
}

var recurrencesCreated = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "recurrences_created_total",
		Help: "How many recurrences have been created.",
	},
)

var installmentsGenerated = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "installments_generated_total",
		Help: "How many installment transactions have been generated for recurrences.",
	},
)

var recurrencesDeleted = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "recurrences_deleted_total",
		Help: "How many recurrences have been deleted, partitioned by mode.",
	},
	[]string{"mode"},
)

var scopedUpdates = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "transaction_scoped_updates_total",
		Help: "How many transaction updates have been applied, partitioned by effective scope.",
	},
	[]string{"scope"},
)

var unitFallbacks = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "schedule_unit_fallback_total",
		Help: "How many schedules used the month fallback because the frequency unit is unknown.",
	},
)
