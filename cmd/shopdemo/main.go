package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mytheresa/go-shopping-cart/app/accounts"
	"github.com/mytheresa/go-shopping-cart/app/catalog"
	"github.com/mytheresa/go-shopping-cart/app/categories"
	"github.com/mytheresa/go-shopping-cart/app/checkout"
	"github.com/mytheresa/go-shopping-cart/app/export"
	"github.com/mytheresa/go-shopping-cart/app/inventory"
	"github.com/mytheresa/go-shopping-cart/app/orders"
	"github.com/mytheresa/go-shopping-cart/app/session"
	"github.com/mytheresa/go-shopping-cart/config"
	"github.com/mytheresa/go-shopping-cart/logger"
	"github.com/mytheresa/go-shopping-cart/metrics"
	"github.com/mytheresa/go-shopping-cart/models"
)

type app struct {
	log        *zap.Logger
	catalog    *catalog.Catalog
	categories *categories.Categories
	inventory  *inventory.Manager
	accounts   *accounts.Accounts
	checkout   *checkout.Checkout
	history    *orders.History
}

func main() {
	var (
		list           = flag.Bool("list", false, "list products")
		category       = flag.String("category", "", "filter by category label or key")
		featured       = flag.Bool("featured", false, "list featured products only")
		offset         = flag.Int("offset", 0, "listing offset")
		limit          = flag.Int("limit", catalog.DefaultLimit, "listing page size")
		showCategories = flag.Bool("categories", false, "list categories with product counts")
		buy            = flag.String("buy", "", "check out as the demo user, e.g. p001:2,p002:1")
		coupon         = flag.String("coupon", "", "flat discount applied before checkout")
		pay            = flag.String("pay", string(models.DefaultPaymentMethod), "payment method: wechat, alipay, card or cash")
		address        = flag.String("address", "", "delivery address as name~phone~line")
		history        = flag.Bool("orders", false, "show the demo user's orders")
		exportOrders   = flag.String("export-orders", "", "write all orders to a .csv or .xlsx file")
		exportProducts = flag.String("export-products", "", "write the catalog to an .xlsx file")
		printMetrics   = flag.Bool("metrics", false, "print collected metrics before exiting")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}

	log.Info("starting shop", cfg.LogFields()...)

	registry := prometheus.NewRegistry()
	m := metrics.New(cfg.Metrics.Prefix, registry)
	a := newApp(cfg, log, m)

	code := 0
	if err := a.run(runOptions{
		list:           *list,
		filters:        filtersFrom(*category, *featured),
		offset:         *offset,
		limit:          *limit,
		showCategories: *showCategories,
		buy:            *buy,
		coupon:         *coupon,
		pay:            *pay,
		address:        *address,
		history:        *history,
		exportOrders:   *exportOrders,
		exportProducts: *exportProducts,
	}); err != nil {
		log.Error("command failed", zap.Error(err))
		code = 1
	}

	if *printMetrics {
		if err := dumpMetrics(registry); err != nil {
			log.Error("failed to gather metrics", zap.Error(err))
		}
	}
	_ = log.Sync()
	os.Exit(code)
}

func newApp(cfg *config.Config, log *zap.Logger, m *metrics.Metrics) *app {
	productsRepo := models.NewProductsRepository(cfg.ProductsPath(), log)
	categoriesRepo := models.NewCategoriesRepository(cfg.CategoriesPath(), log)
	ordersRepo := models.NewOrdersRepository(cfg.OrdersPath(), log)
	usersRepo := models.NewUsersRepository(cfg.UsersPath(), log)

	for _, p := range productsRepo.GetAllProducts() {
		m.UpdateProductInventory(p.ID, p.Category.Key(), p.Stock)
	}

	manager := inventory.NewManager(productsRepo, categoriesRepo, log, m)
	return &app{
		log:        log,
		catalog:    catalog.NewCatalog(productsRepo, log),
		categories: categories.NewCategories(categoriesRepo, productsRepo),
		inventory:  manager,
		accounts:   accounts.NewAccounts(usersRepo, log, m),
		checkout:   checkout.NewCheckout(productsRepo, ordersRepo, manager, cfg.Checkout.OrderIDLength, log, m),
		history:    orders.NewHistory(ordersRepo, log),
	}
}

type runOptions struct {
	list           bool
	filters        models.ProductFilters
	offset, limit  int
	showCategories bool
	buy            string
	coupon         string
	pay            string
	address        string
	history        bool
	exportOrders   string
	exportProducts string
}

func (a *app) run(opts runOptions) error {
	if opts.list {
		a.printProducts(opts.offset, opts.limit, opts.filters)
	}
	if opts.showCategories {
		for _, c := range a.categories.List() {
			fmt.Printf("%-12s %-10s %d products\n", c.ID, c.Name, c.ProductCount)
		}
	}

	s := session.New()
	if opts.buy != "" || opts.history {
		if err := s.DemoLogin(a.accounts); err != nil {
			return err
		}
	}
	if opts.buy != "" {
		if err := a.buy(s, opts); err != nil {
			return err
		}
	}
	if opts.history {
		a.printHistory(s.User().Phone)
	}
	if opts.exportOrders != "" {
		if err := a.exportOrders(opts.exportOrders); err != nil {
			return err
		}
	}
	if opts.exportProducts != "" {
		if err := writeFile(opts.exportProducts, func(f *os.File) error {
			return export.ProductsXLSX(f, a.inventory.Products())
		}); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printProducts(offset, limit int, filters models.ProductFilters) {
	page := a.catalog.List(offset, limit, filters)
	for _, p := range page.Products {
		fmt.Printf("%-10s %-24s %-6s ¥%-9s stock %d\n", p.ID, p.Name, p.Category.Key(), p.Price.StringFixed(2), p.Stock)
	}
	summary := a.catalog.Summary()
	fmt.Printf("showing %d of %d | catalog: %d products, %d units, value ¥%s, %d low on stock\n",
		len(page.Products), page.Total, summary.ProductCount, summary.TotalStock, summary.TotalValue.StringFixed(2), summary.LowStock)
}

func (a *app) buy(s *session.Session, opts runOptions) error {
	for _, entry := range strings.Split(opts.buy, ",") {
		id, qty, _ := strings.Cut(strings.TrimSpace(entry), ":")
		quantity := 1
		if qty != "" {
			n, err := strconv.Atoi(qty)
			if err != nil {
				return models.NewValidationError("quantity", fmt.Sprintf("%q is not a number", qty))
			}
			quantity = n
		}
		p, err := a.catalog.Product(id)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		s.Cart().AddItem(p, quantity, nil)
	}

	if opts.coupon != "" {
		value, err := decimal.NewFromString(opts.coupon)
		if err != nil {
			return models.NewValidationError("coupon", err.Error())
		}
		s.Cart().SetCoupon(value)
	}

	req := checkout.Request{PaymentMethod: models.PaymentMethod(opts.pay)}
	if opts.address != "" {
		req.Address = models.ParseAddress(opts.address)
	}

	order, err := a.checkout.PlaceOrder(s, req)
	var shortage *checkout.StockShortageError
	switch {
	case errors.As(err, &shortage):
		for _, line := range shortage.Shortages {
			fmt.Printf("not enough %s: requested %d, available %d\n", line.ProductName, line.Requested, line.Available)
		}
		return err
	case order == nil:
		return err
	}

	fmt.Printf("order %s: %d items, total ¥%s, paid by %s\n", order.OrderID, order.ItemCount(), order.Total.StringFixed(2), order.PaymentMethod)
	return err
}

func (a *app) printHistory(phone string) {
	for _, o := range a.history.ForUser(phone) {
		fmt.Printf("%s  %s  %-9s ¥%s\n", o.CreatedAt, o.OrderID, o.Status, o.Total.StringFixed(2))
	}
	stats := a.history.StatsFor(phone)
	fmt.Printf("%d orders, %d delivered, ¥%s in total\n", stats.Count, stats.Delivered, stats.TotalAmount.StringFixed(2))
}

func (a *app) exportOrders(path string) error {
	all := a.history.All()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeFile(path, func(f *os.File) error { return export.OrdersCSV(f, all) })
	case ".xlsx":
		return writeFile(path, func(f *os.File) error { return export.OrdersXLSX(f, all) })
	default:
		return models.NewValidationError("export-orders", "file must end in .csv or .xlsx")
	}
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func filtersFrom(category string, featured bool) models.ProductFilters {
	filters := models.ProductFilters{Featured: featured}
	if category != "" {
		filters.Category = models.ResolveProductCategory(category)
	}
	return filters
}

func dumpMetrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, l := range metric.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			var value float64
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				value = metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				value = metric.GetGauge().GetValue()
			default:
				continue
			}
			fmt.Printf("%s{%s} %g\n", family.GetName(), strings.Join(labels, ","), value)
		}
	}
	return nil
}
