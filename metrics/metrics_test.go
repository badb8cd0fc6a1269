package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCheckout(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.RecordCheckout(OutcomeSuccess)
	m.RecordCheckout(OutcomeSuccess)
	m.RecordCheckout(OutcomeShortage)
	m.RecordCheckout(OutcomePartial)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CheckoutsCounter.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CheckoutsCounter.WithLabelValues(OutcomeShortage)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.OrdersCreatedCounter))
}

func TestProductInventory(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.UpdateProductInventory("p1", "food", 10)
	m.UpdateProductInventory("p1", "food", 7)
	assert.Equal(t, 7.0, testutil.ToFloat64(m.ProductInventoryGauge.WithLabelValues("p1", "food")))

	m.RemoveProductInventory("p1", "food")
	assert.Equal(t, 0, testutil.CollectAndCount(m.ProductInventoryGauge))
}

func TestRegistersWithPrefix(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("shop", reg)
	m.RecordProductOperation("create")
	m.RecordCategoryOperation("delete")
	m.RecordLogin(OutcomeSuccess)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := []string{}
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "shop_product_operations_total")
	assert.Contains(t, names, "shop_category_operations_total")
	assert.Contains(t, names, "shop_logins_total")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordProductOperation("create")
		m.RecordCategoryOperation("create")
		m.RecordCheckout(OutcomeSuccess)
		m.RecordLogin(OutcomeSuccess)
		m.UpdateProductInventory("p1", "food", 1)
		m.RemoveProductInventory("p1", "food")
	})
}
