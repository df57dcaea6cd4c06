package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StockMetrics counts ledger, cart and checkout outcomes.
type StockMetrics struct {
	adjustments       *prometheus.CounterVec
	clamped           *prometheus.CounterVec
	retries           prometheus.Counter
	insufficientStock *prometheus.CounterVec
	checkouts         *prometheus.CounterVec
}

// NewStockMetrics registers the metrics on reg. A nil registerer yields a no-op recorder.
func NewStockMetrics(reg prometheus.Registerer) *StockMetrics {
	if reg == nil {
		return &StockMetrics{}
	}
	m := &StockMetrics{
		adjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stock_movements_total",
			Help: "Stock movements recorded by the ledger.",
		}, []string{"type", "counter"}),
		clamped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stock_counter_clamped_total",
			Help: "Ledger adjustments clamped at zero.",
		}, []string{"counter"}),
		retries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stock_tx_retries_total",
			Help: "Transactions retried after a lock conflict.",
		}),
		insufficientStock: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stock_insufficient_total",
			Help: "Requests rejected for insufficient stock.",
		}, []string{"operation"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_total",
			Help: "Checkout attempts by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.adjustments, m.clamped, m.retries, m.insufficientStock, m.checkouts)
	return m
}

func (m *StockMetrics) IncMovement(movementType, counter string) {
	if m == nil || m.adjustments == nil {
		return
	}
	m.adjustments.WithLabelValues(movementType, counter).Inc()
}

func (m *StockMetrics) IncClamped(counter string) {
	if m == nil || m.clamped == nil {
		return
	}
	m.clamped.WithLabelValues(counter).Inc()
}

func (m *StockMetrics) IncRetry() {
	if m == nil || m.retries == nil {
		return
	}
	m.retries.Inc()
}

func (m *StockMetrics) IncInsufficientStock(operation string) {
	if m == nil || m.insufficientStock == nil {
		return
	}
	m.insufficientStock.WithLabelValues(normalizeLabel(operation)).Inc()
}

func (m *StockMetrics) IncCheckout(result string) {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.WithLabelValues(normalizeLabel(result)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
