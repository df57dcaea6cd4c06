package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStockMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStockMetrics(reg)

	m.IncMovement("ORDER_RESERVATION", "RESERVED")
	m.IncMovement("ORDER_RESERVATION", "RESERVED")
	m.IncClamped("RESERVED")
	m.IncRetry()
	m.IncInsufficientStock("")
	m.IncCheckout("success")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.adjustments.WithLabelValues("ORDER_RESERVATION", "RESERVED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.clamped.WithLabelValues("RESERVED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.retries))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.insufficientStock.WithLabelValues("unknown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkouts.WithLabelValues("success")))
}

func TestStockMetrics_NilSafe(t *testing.T) {
	var m *StockMetrics
	m.IncMovement("a", "b")
	m.IncRetry()

	noop := NewStockMetrics(nil)
	noop.IncCheckout("success")
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("POST", "/cart/items", 409, 20*time.Millisecond)
	m.Observe("POST", "", 200, time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))

	var noop *HTTPMetrics
	noop.Observe("GET", "/cart", 200, time.Second)
	NewHTTPMetrics(nil).Observe("GET", "/cart", 200, time.Second)
}
