package services

import (
	"context"
	"sort"
	"time"

	"inventory-backend/models"
	"inventory-backend/utils"
)

const topProductsLimit = 5

type DashboardOverview struct {
	TotalRevenue    float64          `json:"totalRevenue"`
	MonthlyRevenue  float64          `json:"monthlyRevenue"`
	PendingAmount   float64          `json:"pendingAmount"`
	TotalCustomers  int              `json:"totalCustomers"`
	TotalInvoices   int              `json:"totalInvoices"`
	PaidInvoices    int              `json:"paidInvoices"`
	PendingInvoices int              `json:"pendingInvoices"`
	OverdueInvoices int              `json:"overdueInvoices"`
	TotalProducts   int              `json:"totalProducts"`
	LowStockItems   int              `json:"lowStockItems"`
	InventoryValue  float64          `json:"inventoryValue"`
	TopProducts     []ProductSummary `json:"topProducts"`
}

// ProductSummary aggregates invoice lines for one product.
type ProductSummary struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Sales     int     `json:"sales"`
	Revenue   float64 `json:"revenue"`
}

type DashboardService struct {
	products  *ProductService
	customers *CustomerService
	invoices  *InvoiceService
	now       func() time.Time
}

func NewDashboardService(products *ProductService, customers *CustomerService, invoices *InvoiceService) *DashboardService {
	return &DashboardService{products: products, customers: customers, invoices: invoices, now: time.Now}
}

// Overview summarises the current collections. It works from the same
// capped lists the list endpoints return.
func (s *DashboardService) Overview(ctx context.Context) (*DashboardOverview, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}

	overview := &DashboardOverview{
		TotalCustomers: len(customers),
		TotalInvoices:  len(invoices),
		TotalProducts:  len(products),
	}
	for _, p := range products {
		if p.Stock <= p.MinStock {
			overview.LowStockItems++
		}
		overview.InventoryValue += p.Price * float64(p.Stock)
	}

	now := s.now()
	byProduct := map[string]*ProductSummary{}
	for _, inv := range invoices {
		switch inv.Status {
		case models.StatusPaid:
			overview.PaidInvoices++
			overview.TotalRevenue += inv.TotalAmount
			if date, err := utils.ParseDate(inv.Date); err == nil && utils.SameMonth(date, now) {
				overview.MonthlyRevenue += inv.TotalAmount
			}
		case models.StatusPending:
			overview.PendingInvoices++
			overview.PendingAmount += inv.TotalAmount
		case models.StatusOverdue:
			overview.OverdueInvoices++
			overview.PendingAmount += inv.TotalAmount
		}

		for _, item := range inv.Items {
			summary, ok := byProduct[item.ProductID]
			if !ok {
				summary = &ProductSummary{ProductID: item.ProductID, Name: item.Name}
				byProduct[item.ProductID] = summary
			}
			summary.Sales += item.Quantity
			summary.Revenue += item.Amount
		}
	}

	overview.TopProducts = make([]ProductSummary, 0, len(byProduct))
	for _, summary := range byProduct {
		overview.TopProducts = append(overview.TopProducts, *summary)
	}
	sort.Slice(overview.TopProducts, func(i, j int) bool {
		a, b := overview.TopProducts[i], overview.TopProducts[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.ProductID < b.ProductID
	})
	if len(overview.TopProducts) > topProductsLimit {
		overview.TopProducts = overview.TopProducts[:topProductsLimit]
	}
	return overview, nil
}
