package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder(id, phone string) Order {
	return Order{
		OrderID:   id,
		UserName:  "张三",
		UserPhone: phone,
		Items: []OrderItem{
			{
				ProductID:      "p001",
				ProductName:    "iPhone 15 Pro",
				Price:          decimal.NewFromFloat(8999),
				Quantity:       1,
				Image:          "./assets/image/demo/iphone15pro.jpeg",
				Specifications: Specifications{"颜色": "银色"},
			},
			{
				ProductID:      "p005",
				ProductName:    "巧克力礼盒",
				Price:          decimal.NewFromFloat(199.9),
				Quantity:       2,
				Specifications: Specifications{},
			},
		},
		Subtotal:      decimal.RequireFromString("9398.8"),
		Discount:      decimal.NewFromInt(20),
		Total:         decimal.RequireFromString("9378.8"),
		Address:       Address{Name: "张三", Phone: "13800138000", Line: "北京市朝阳区建国门外大街1号"},
		PaymentMethod: PaymentCash,
		Status:        OrderStatusDelivered,
		CreatedAt:     Now(),
	}
}

func TestOrdersRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	repo := NewOrdersRepository(path, nil)

	require.NoError(t, repo.AddOrder(sampleOrder("a1", "13800138000")))
	require.NoError(t, repo.AddOrder(sampleOrder("b2", "13900139000")))

	reloaded := NewOrdersRepository(path, nil)
	assert.Equal(t, marshal(t, repo.GetAllOrders()), marshal(t, reloaded.GetAllOrders()))

	got, err := reloaded.GetByID("a1")
	require.NoError(t, err)
	assert.Equal(t, "张三", got.Address.Name)
	assert.Equal(t, "北京市朝阳区建国门外大街1号", got.Address.Line)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("9378.8")))
	assert.Equal(t, 3, got.ItemCount())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"address": "张三~13800138000~北京市朝阳区建国门外大街1号"`)
	assert.Contains(t, string(raw), `"updated_at": null`)
}

func TestOrdersRepository_LoadFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"order_id": 12}]`), 0o644))

	repo := NewOrdersRepository(path, nil)

	assert.Empty(t, repo.GetAllOrders())
	assert.Empty(t, repo.LoadOrders())
}

func TestOrdersRepository_Queries(t *testing.T) {
	repo := NewOrdersRepository(filepath.Join(t.TempDir(), "orders.json"), nil)
	require.NoError(t, repo.AddOrder(sampleOrder("a1", "13800138000")))
	require.NoError(t, repo.AddOrder(sampleOrder("b2", "13900139000")))
	require.NoError(t, repo.AddOrder(sampleOrder("c3", "13800138000")))

	testCases := []struct {
		name     string
		phone    string
		expected []string
	}{
		{name: "User with two orders", phone: "13800138000", expected: []string{"a1", "c3"}},
		{name: "User with one order", phone: "13900139000", expected: []string{"b2"}},
		{name: "Unknown phone", phone: "13700137000", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := []string{}
			for _, o := range repo.GetOrdersByUser(tc.phone) {
				got = append(got, o.OrderID)
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestOrdersRepository_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	repo := NewOrdersRepository(path, nil)
	require.NoError(t, repo.AddOrder(sampleOrder("a1", "13800138000")))
	require.NoError(t, repo.AddOrder(sampleOrder("b2", "13800138000")))

	require.NoError(t, repo.DeleteOrder("a1"))
	assert.ErrorIs(t, repo.DeleteOrder("a1"), ErrOrderNotFound)

	reloaded := NewOrdersRepository(path, nil)
	require.Equal(t, 1, reloaded.Count())
	assert.Equal(t, "b2", reloaded.GetAllOrders()[0].OrderID)
}

func TestOrdersRepository_UpdateStatusUnsupported(t *testing.T) {
	repo := NewOrdersRepository(filepath.Join(t.TempDir(), "orders.json"), nil)
	require.NoError(t, repo.AddOrder(sampleOrder("a1", "13800138000")))

	assert.ErrorIs(t, repo.UpdateStatus("a1", OrderStatusShipped), ErrStatusTransitionUnsupported)
	assert.ErrorIs(t, repo.UpdateStatus("zz", OrderStatusShipped), ErrOrderNotFound)

	got, _ := repo.GetByID("a1")
	assert.Equal(t, OrderStatusDelivered, got.Status)
}

func TestOrdersRepository_FailedAppendIsRolledBack(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	repo := NewOrdersRepository(filepath.Join(blocker, "orders.json"), nil)

	err := repo.AddOrder(sampleOrder("a1", "13800138000"))

	var pe *PersistenceError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, 0, repo.Count())
}

func TestOrdersRepository_FailedDeleteKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "orders.json")
	repo := NewOrdersRepository(path, nil)
	require.NoError(t, repo.AddOrder(sampleOrder("a1", "13800138000")))
	require.NoError(t, repo.AddOrder(sampleOrder("b2", "13800138000")))

	require.NoError(t, os.RemoveAll(filepath.Join(dir, "data")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data"), nil, 0o644))

	err := repo.DeleteOrder("a1")

	var pe *PersistenceError
	assert.True(t, errors.As(err, &pe))
	require.Equal(t, 2, repo.Count())
	assert.Equal(t, "a1", repo.GetAllOrders()[0].OrderID)
	assert.Equal(t, "b2", repo.GetAllOrders()[1].OrderID)
}
