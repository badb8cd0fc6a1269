package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess    = "success"
	OutcomeEmptyCart  = "empty_cart"
	OutcomeNoUser     = "not_logged_in"
	OutcomeShortage   = "stock_shortage"
	OutcomeInvalid    = "invalid"
	OutcomeWriteError = "write_error"
	OutcomePartial    = "partial_commit"
)

// Metrics holds the shop's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	ProductOperationsCounter  *prometheus.CounterVec
	CategoryOperationsCounter *prometheus.CounterVec
	CheckoutsCounter          *prometheus.CounterVec
	OrdersCreatedCounter      prometheus.Counter
	LoginsCounter             *prometheus.CounterVec
	ProductInventoryGauge     *prometheus.GaugeVec
}

// New registers the collectors with reg. A nil reg uses the default registerer.
func New(prefix string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ProductOperationsCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_product_operations_total",
				Help: "Total number of product operations",
			},
			[]string{"operation"},
		),
		CategoryOperationsCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_category_operations_total",
				Help: "Total number of category operations",
			},
			[]string{"operation"},
		),
		CheckoutsCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_checkouts_total",
				Help: "Total number of checkout attempts by outcome",
			},
			[]string{"outcome"},
		),
		OrdersCreatedCounter: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_orders_created_total",
				Help: "Total number of persisted orders",
			},
		),
		LoginsCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_logins_total",
				Help: "Total number of login attempts by outcome",
			},
			[]string{"outcome"},
		),
		ProductInventoryGauge: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "_product_inventory",
				Help: "Current inventory level for products",
			},
			[]string{"product_id", "category"},
		),
	}
}

// RecordProductOperation increments the counter for product operations
func (m *Metrics) RecordProductOperation(operation string) {
	if m == nil {
		return
	}
	m.ProductOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordCategoryOperation increments the counter for category operations
func (m *Metrics) RecordCategoryOperation(operation string) {
	if m == nil {
		return
	}
	m.CategoryOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordCheckout counts a checkout attempt.
func (m *Metrics) RecordCheckout(outcome string) {
	if m == nil {
		return
	}
	m.CheckoutsCounter.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess || outcome == OutcomePartial {
		m.OrdersCreatedCounter.Inc()
	}
}

// RecordLogin counts a login attempt.
func (m *Metrics) RecordLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginsCounter.WithLabelValues(outcome).Inc()
}

// UpdateProductInventory updates the gauge for product inventory
func (m *Metrics) UpdateProductInventory(productID, category string, count int) {
	if m == nil {
		return
	}
	m.ProductInventoryGauge.WithLabelValues(productID, category).Set(float64(count))
}

// RemoveProductInventory drops the gauge of a deleted product.
func (m *Metrics) RemoveProductInventory(productID, category string) {
	if m == nil {
		return
	}
	m.ProductInventoryGauge.DeleteLabelValues(productID, category)
}
