package models

import (
	"go.uber.org/zap"
)

// OrdersRepository owns the orders file. Orders are appended on checkout and
// removed one at a time; they are never edited.
type OrdersRepository struct {
	path   string
	log    *zap.Logger
	orders []Order
}

// NewOrdersRepository loads the orders file at path. Any read or parse
// failure yields an empty order list.
func NewOrdersRepository(path string, log *zap.Logger) *OrdersRepository {
	r := &OrdersRepository{path: path, log: nopIfNil(log)}
	r.orders = r.LoadOrders()
	return r
}

// LoadOrders reads the orders file without touching the repository state.
func (r *OrdersRepository) LoadOrders() []Order {
	var records []Order
	exists, err := loadJSONArray(r.path, &records)
	if !exists {
		return []Order{}
	}
	if err != nil {
		r.log.Warn("failed to load orders, starting with none", zap.String("path", r.path), zap.Error(err))
		return []Order{}
	}
	return records
}

// Path returns the file the repository persists to.
func (r *OrdersRepository) Path() string {
	return r.path
}

// AddOrder appends an order and persists the file. If the write fails the
// order is dropped again, so an unsaved order is never listed.
func (r *OrdersRepository) AddOrder(order Order) error {
	r.orders = append(r.orders, order)
	if err := r.Save(); err != nil {
		r.orders = r.orders[:len(r.orders)-1]
		return err
	}
	return nil
}

// DeleteOrder removes the order with the given id and persists the file.
// If the write fails the order is kept.
func (r *OrdersRepository) DeleteOrder(orderID string) error {
	for i, o := range r.orders {
		if o.OrderID != orderID {
			continue
		}
		previous := r.orders
		r.orders = append(append([]Order{}, r.orders[:i]...), r.orders[i+1:]...)
		if err := r.Save(); err != nil {
			r.orders = previous
			return err
		}
		return nil
	}
	return ErrOrderNotFound
}

// GetByID returns the order with the given id.
func (r *OrdersRepository) GetByID(orderID string) (*Order, error) {
	for _, o := range r.orders {
		if o.OrderID == orderID {
			found := o
			return &found, nil
		}
	}
	return nil, ErrOrderNotFound
}

// GetOrdersByUser returns the orders placed with the given phone, in file order.
func (r *OrdersRepository) GetOrdersByUser(phone string) []Order {
	out := []Order{}
	for _, o := range r.orders {
		if o.UserPhone == phone {
			out = append(out, o)
		}
	}
	return out
}

// GetAllOrders returns every order in file order. Callers sort as needed.
func (r *OrdersRepository) GetAllOrders() []Order {
	return append([]Order(nil), r.orders...)
}

// Count returns the number of orders.
func (r *OrdersRepository) Count() int {
	return len(r.orders)
}

// UpdateStatus is not supported: orders are created delivered and stay so.
func (r *OrdersRepository) UpdateStatus(orderID string, status OrderStatus) error {
	if _, err := r.GetByID(orderID); err != nil {
		return err
	}
	return ErrStatusTransitionUnsupported
}

// Save rewrites the whole orders file.
func (r *OrdersRepository) Save() error {
	if err := saveJSONArray(r.path, r.orders); err != nil {
		r.log.Error("failed to save orders", zap.String("path", r.path), zap.Error(err))
		return err
	}
	return nil
}
