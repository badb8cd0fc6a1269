package orders

import (
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mytheresa/go-shopping-cart/models"
)

type OrderStore interface {
	GetAllOrders() []models.Order
	GetOrdersByUser(phone string) []models.Order
	GetByID(orderID string) (*models.Order, error)
	DeleteOrder(orderID string) error
	UpdateStatus(orderID string, status models.OrderStatus) error
}

// Stats summarises a set of orders.
type Stats struct {
	Count       int
	ItemCount   int
	TotalAmount decimal.Decimal
	Delivered   int
}

type History struct {
	store OrderStore
	log   *zap.Logger
}

func NewHistory(store OrderStore, log *zap.Logger) *History {
	if log == nil {
		log = zap.NewNop()
	}
	return &History{store: store, log: log}
}

// ForUser returns the orders placed with phone, newest first.
func (h *History) ForUser(phone string) []models.Order {
	return newestFirst(h.store.GetOrdersByUser(phone))
}

// All returns every order, newest first.
func (h *History) All() []models.Order {
	return newestFirst(h.store.GetAllOrders())
}

// Recent returns at most n orders, newest first.
func (h *History) Recent(n int) []models.Order {
	all := h.All()
	if n < 0 {
		n = 0
	}
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// Get looks an order up by id.
func (h *History) Get(orderID string) (*models.Order, error) {
	return h.store.GetByID(orderID)
}

// Delete removes an order.
func (h *History) Delete(orderID string) error {
	if err := h.store.DeleteOrder(orderID); err != nil {
		return err
	}
	h.log.Info("order deleted", zap.String("order_id", orderID))
	return nil
}

// SetStatus always fails: orders are created delivered and never move.
func (h *History) SetStatus(orderID string, status models.OrderStatus) error {
	return h.store.UpdateStatus(orderID, status)
}

// StatsFor summarises the orders of one user.
func (h *History) StatsFor(phone string) Stats {
	return summarise(h.store.GetOrdersByUser(phone))
}

// Stats summarises every order.
func (h *History) Stats() Stats {
	return summarise(h.store.GetAllOrders())
}

func summarise(orders []models.Order) Stats {
	s := Stats{TotalAmount: decimal.Zero}
	for i := range orders {
		s.Count++
		s.ItemCount += orders[i].ItemCount()
		s.TotalAmount = s.TotalAmount.Add(orders[i].Total)
		if orders[i].Status == models.OrderStatusDelivered {
			s.Delivered++
		}
	}
	return s
}

// newestFirst sorts by creation time, descending. Orders created in the same
// second keep their file order.
func newestFirst(orders []models.Order) []models.Order {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt.Time)
	})
	return orders
}
