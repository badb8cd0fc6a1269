package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tealeg/xlsx"

	"github.com/mytheresa/go-shopping-cart/models"
)

// OrdersXLSX writes a workbook with an "Orders" sheet, one row per order,
// and an "Items" sheet, one row per purchased line.
func OrdersXLSX(w io.Writer, orders []models.Order) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("create orders sheet: %w", err)
	}
	headerRow := sheet.AddRow()
	for _, h := range []string{
		"OrderID", "UserName", "UserPhone", "ItemCount", "Subtotal", "Discount", "Total",
		"Address", "PaymentMethod", "Status", "CreatedAt",
	} {
		headerRow.AddCell().SetString(h)
	}
	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(o.OrderID)
		row.AddCell().SetString(o.UserName)
		row.AddCell().SetString(o.UserPhone)
		row.AddCell().SetInt(o.ItemCount())
		row.AddCell().SetFloat(o.Subtotal.InexactFloat64())
		row.AddCell().SetFloat(o.Discount.InexactFloat64())
		row.AddCell().SetFloat(o.Total.InexactFloat64())
		row.AddCell().SetString(o.Address.String())
		row.AddCell().SetString(string(o.PaymentMethod))
		row.AddCell().SetString(string(o.Status))
		row.AddCell().SetString(o.CreatedAt.String())
	}

	items, err := file.AddSheet("Items")
	if err != nil {
		return fmt.Errorf("create items sheet: %w", err)
	}
	headerRow = items.AddRow()
	for _, h := range []string{"OrderID", "ProductID", "ProductName", "Price", "Quantity", "Subtotal"} {
		headerRow.AddCell().SetString(h)
	}
	for _, o := range orders {
		for _, it := range o.Items {
			row := items.AddRow()
			row.AddCell().SetString(o.OrderID)
			row.AddCell().SetString(it.ProductID)
			row.AddCell().SetString(it.ProductName)
			row.AddCell().SetFloat(it.Price.InexactFloat64())
			row.AddCell().SetInt(it.Quantity)
			row.AddCell().SetFloat(it.Subtotal().InexactFloat64())
		}
	}

	return file.Write(w)
}

// ProductsXLSX writes the catalog to a "Products" sheet.
func ProductsXLSX(w io.Writer, products []models.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("create products sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range []string{
		"ID", "Name", "Category", "Price", "Suggest", "Stock", "Unit",
		"Rating", "SalesCount", "Featured", "Images", "CreatedAt",
	} {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(string(p.Category))
		row.AddCell().SetFloat(p.Price.InexactFloat64())
		row.AddCell().SetFloat(p.Suggest.InexactFloat64())
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetString(p.Unit)
		row.AddCell().SetFloat(p.Rating)
		row.AddCell().SetInt(p.SalesCount)
		row.AddCell().SetBool(p.IsFeatured)
		row.AddCell().SetString(strings.Join(p.Images, ","))
		row.AddCell().SetString(p.CreatedAt.String())
	}

	return file.Write(w)
}
