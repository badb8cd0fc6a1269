package models

import (
	"github.com/shopspring/decimal"
)

// OrderStatus is the nominal lifecycle of an order. Only OrderStatusDelivered
// is ever assigned.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod tags how an order was paid.
type PaymentMethod string

const (
	PaymentWechat PaymentMethod = "wechat"
	PaymentAlipay PaymentMethod = "alipay"
	PaymentCard   PaymentMethod = "card"
	PaymentCash   PaymentMethod = "cash"
)

// DefaultPaymentMethod is cash on delivery.
const DefaultPaymentMethod = PaymentCash

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentWechat, PaymentAlipay, PaymentCard, PaymentCash:
		return true
	}
	return false
}

// OrderItem is the snapshot of one purchased line.
type OrderItem struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Image          string          `json:"image"`
	Specifications Specifications  `json:"specifications"`
}

// Subtotal is price times quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a completed checkout. Items and amounts never change after creation.
type Order struct {
	OrderID       string          `json:"order_id"`
	UserName      string          `json:"user_name"`
	UserPhone     string          `json:"user_phone"`
	Items         []OrderItem     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	Address       Address         `json:"address"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     Timestamp       `json:"created_at"`
	UpdatedAt     Timestamp       `json:"updated_at"`
}

// ItemCount sums the quantities of all items.
func (o *Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
