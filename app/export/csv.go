package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/mytheresa/go-shopping-cart/models"
)

// orderRow is one order flattened for CSV. Columns follow the keys of the
// orders file; items are embedded as JSON.
type orderRow struct {
	OrderID       string `csv:"order_id"`
	UserName      string `csv:"user_name"`
	UserPhone     string `csv:"user_phone"`
	Items         string `csv:"items"`
	Subtotal      string `csv:"subtotal"`
	Discount      string `csv:"discount"`
	Total         string `csv:"total"`
	Address       string `csv:"address"`
	PaymentMethod string `csv:"payment_method"`
	Status        string `csv:"status"`
	CreatedAt     string `csv:"created_at"`
	UpdatedAt     string `csv:"updated_at"`
}

// OrdersCSV writes orders as CSV with a header row.
func OrdersCSV(w io.Writer, orders []models.Order) error {
	rows := make([]*orderRow, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		items, err := json.Marshal(o.Items)
		if err != nil {
			return fmt.Errorf("encode items of order %s: %w", o.OrderID, err)
		}
		rows = append(rows, &orderRow{
			OrderID:       o.OrderID,
			UserName:      o.UserName,
			UserPhone:     o.UserPhone,
			Items:         string(items),
			Subtotal:      o.Subtotal.String(),
			Discount:      o.Discount.String(),
			Total:         o.Total.String(),
			Address:       o.Address.String(),
			PaymentMethod: string(o.PaymentMethod),
			Status:        string(o.Status),
			CreatedAt:     o.CreatedAt.String(),
			UpdatedAt:     o.UpdatedAt.String(),
		})
	}
	return gocsv.Marshal(rows, w)
}
