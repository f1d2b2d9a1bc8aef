package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	storeOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusbuzz_store_operations_total",
			Help: "Total number of store operations by namespace, operation and result.",
		},
		[]string{"namespace", "op", "result"},
	)
	storeSeedsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusbuzz_store_seeds_total",
			Help: "Total number of collections seeded because nothing was stored yet.",
		},
		[]string{"namespace"},
	)
	storeCorruptRecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusbuzz_store_corrupt_records_total",
			Help: "Total number of stored records that failed to decode and were treated as absent.",
		},
		[]string{"namespace"},
	)
	notificationsUnread = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campusbuzz_notifications_unread_after_mutation",
			Help:    "Distribution of a user's unread notifications right after a ledger mutation, by action.",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 50},
		},
		[]string{"action"},
	)
	ledgerMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusbuzz_notification_ledger_mutations_total",
			Help: "Total number of committed notification ledger mutations by action.",
		},
		[]string{"action"},
	)
)

func init() {
	prometheus.MustRegister(
		storeOperationsTotal,
		storeSeedsTotal,
		storeCorruptRecordsTotal,
		notificationsUnread,
		ledgerMutationsTotal,
	)
}

func IncStoreOp(namespace, op string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	storeOperationsTotal.WithLabelValues(namespace, op, result).Inc()
}

func IncSeed(namespace string) {
	storeSeedsTotal.WithLabelValues(namespace).Inc()
}

func IncCorruptRecord(namespace string) {
	storeCorruptRecordsTotal.WithLabelValues(namespace).Inc()
}

// ObserveUnread records one user's unread count after a mutation.
func ObserveUnread(action string, unread int) {
	notificationsUnread.WithLabelValues(action).Observe(float64(unread))
}

func IncLedgerMutation(action string) {
	ledgerMutationsTotal.WithLabelValues(action).Inc()
}
