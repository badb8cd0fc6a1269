package checkout

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mytheresa/go-shopping-cart/app/session"
	"github.com/mytheresa/go-shopping-cart/metrics"
	"github.com/mytheresa/go-shopping-cart/models"
)

// ErrPartialCommit is wrapped by the error returned when the order was saved
// but some stock levels could not be written.
var ErrPartialCommit = errors.New("order saved but stock update incomplete")

// Shortage describes one cart line that cannot be fulfilled.
type Shortage struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

// StockShortageError lists every short line of a rejected checkout.
type StockShortageError struct {
	Shortages []Shortage
}

func (e *StockShortageError) Error() string {
	names := make([]string, len(e.Shortages))
	for i, s := range e.Shortages {
		names[i] = fmt.Sprintf("%s (requested %d, available %d)", s.ProductName, s.Requested, s.Available)
	}
	return "insufficient stock: " + strings.Join(names, ", ")
}

type ProductReader interface {
	GetByID(id string) (*models.Product, error)
}

type OrderAppender interface {
	AddOrder(order models.Order) error
}

type StockUpdater interface {
	UpdateProductStock(id string, stock int) error
}

// Request holds what the buyer chooses at checkout.
type Request struct {
	Address       models.Address
	PaymentMethod models.PaymentMethod // empty means models.DefaultPaymentMethod
}

// Checkout turns a session cart into a persisted order.
type Checkout struct {
	products ProductReader
	orders   OrderAppender
	stock    StockUpdater
	idLength int
	log      *zap.Logger
	metrics  *metrics.Metrics

	newOrderID func(length int) (string, error)
}

func NewCheckout(products ProductReader, orders OrderAppender, stock StockUpdater, idLength int, log *zap.Logger, m *metrics.Metrics) *Checkout {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checkout{
		products:   products,
		orders:     orders,
		stock:      stock,
		idLength:   idLength,
		log:        log,
		metrics:    m,
		newOrderID: GenerateOrderID,
	}
}

// PlaceOrder checks every cart line against live stock, saves the order,
// deducts stock and empties the cart.
//
// Nothing changes if the cart is empty, a line is short, the request is
// invalid or the order cannot be saved. Once the order is saved it is
// returned even if a stock write fails; the error then wraps ErrPartialCommit.
func (c *Checkout) PlaceOrder(s *session.Session, req Request) (*models.Order, error) {
	user, err := s.RequireUser()
	if err != nil {
		c.metrics.RecordCheckout(metrics.OutcomeNoUser)
		return nil, err
	}
	cart := s.Cart()
	if cart.IsEmpty() {
		c.metrics.RecordCheckout(metrics.OutcomeEmptyCart)
		return nil, models.ErrEmptyCart
	}

	payment := req.PaymentMethod
	if payment == "" {
		payment = models.DefaultPaymentMethod
	}
	if !payment.Valid() {
		c.metrics.RecordCheckout(metrics.OutcomeInvalid)
		return nil, models.NewValidationError("payment method", "unknown method "+string(payment))
	}
	if req.Address != (models.Address{}) {
		if err := req.Address.Validate(); err != nil {
			c.metrics.RecordCheckout(metrics.OutcomeInvalid)
			return nil, err
		}
	}

	lines := cart.Items()
	var shortages []Shortage
	for _, line := range lines {
		available := 0
		if p, err := c.products.GetByID(line.ProductID); err == nil {
			available = p.Stock
		}
		if available < line.Quantity {
			shortages = append(shortages, Shortage{
				ProductID:   line.ProductID,
				ProductName: line.ProductName,
				Requested:   line.Quantity,
				Available:   available,
			})
		}
	}
	if len(shortages) > 0 {
		c.metrics.RecordCheckout(metrics.OutcomeShortage)
		return nil, &StockShortageError{Shortages: shortages}
	}

	orderID, err := c.newOrderID(c.idLength)
	if err != nil {
		c.metrics.RecordCheckout(metrics.OutcomeInvalid)
		return nil, err
	}

	now := models.Now()
	items := make([]models.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = models.OrderItem{
			ProductID:      line.ProductID,
			ProductName:    line.ProductName,
			Price:          line.Price,
			Quantity:       line.Quantity,
			Image:          line.Image,
			Specifications: line.Specifications,
		}
	}
	order := models.Order{
		OrderID:       orderID,
		UserName:      user.Username,
		UserPhone:     user.Phone,
		Items:         items,
		Subtotal:      cart.Subtotal(),
		Discount:      cart.Discount(),
		Total:         cart.Total(),
		Address:       req.Address,
		PaymentMethod: payment,
		Status:        models.OrderStatusDelivered,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := c.orders.AddOrder(order); err != nil {
		c.metrics.RecordCheckout(metrics.OutcomeWriteError)
		c.log.Error("failed to save order", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}

	var stockErrs []error
	for _, line := range lines {
		p, err := c.products.GetByID(line.ProductID)
		if err != nil {
			stockErrs = append(stockErrs, fmt.Errorf("product %s: %w", line.ProductID, err))
			continue
		}
		remaining := p.Stock - line.Quantity
		if remaining < 0 {
			remaining = 0
		}
		if err := c.stock.UpdateProductStock(p.ID, remaining); err != nil {
			stockErrs = append(stockErrs, fmt.Errorf("product %s: %w", p.ID, err))
		}
	}

	cart.Clear()

	c.log.Info("order placed",
		zap.String("order_id", order.OrderID),
		zap.Int("lines", len(items)),
		zap.String("total", order.Total.String()),
	)

	if len(stockErrs) > 0 {
		c.metrics.RecordCheckout(metrics.OutcomePartial)
		c.log.Error("stock update incomplete", zap.String("order_id", order.OrderID), zap.Errors("errors", stockErrs))
		return &order, fmt.Errorf("%w: %w", ErrPartialCommit, errors.Join(stockErrs...))
	}
	c.metrics.RecordCheckout(metrics.OutcomeSuccess)
	return &order, nil
}
