package services

import (
	"context"
	"testing"
	"time"

	"inventory-backend/models"
)

func TestDashboardOverview(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	svc.Dashboard.now = fixedClock(time.Date(2024, 7, 30, 12, 0, 0, 0, time.UTC))

	if _, err := svc.Seed.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	overview, err := svc.Dashboard.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.TotalProducts != 4 || overview.TotalCustomers != 3 || overview.TotalInvoices != 1 {
		t.Errorf("totals = %d/%d/%d", overview.TotalProducts, overview.TotalCustomers, overview.TotalInvoices)
	}
	if overview.PendingInvoices != 1 || overview.PendingAmount != 5897.64 {
		t.Errorf("pending = %d/%v, want 1/5897.64", overview.PendingInvoices, overview.PendingAmount)
	}
	if overview.TotalRevenue != 0 {
		t.Errorf("TotalRevenue = %v, want 0", overview.TotalRevenue)
	}
	if overview.InventoryValue != 388825 {
		t.Errorf("InventoryValue = %v, want 388825", overview.InventoryValue)
	}
	if overview.LowStockItems != 0 {
		t.Errorf("LowStockItems = %d, want 0", overview.LowStockItems)
	}
	if len(overview.TopProducts) != 1 {
		t.Fatalf("len(TopProducts) = %d, want 1", len(overview.TopProducts))
	}
	top := overview.TopProducts[0]
	if top.Name != "Wireless Bluetooth Headphones" || top.Sales != 2 || top.Revenue != 4998 {
		t.Errorf("top = %+v", top)
	}

	invoices, _ := svc.Invoices.List(ctx)
	if _, err := svc.Invoices.Update(ctx, invoices[0].ID, models.InvoiceUpdate{Status: ptr(models.StatusPaid)}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	products, _ := svc.Products.List(ctx)
	if _, err := svc.Products.Update(ctx, products[0].ID, models.ProductUpdate{Stock: ptr(10)}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	overview, err = svc.Dashboard.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.PaidInvoices != 1 || overview.PendingInvoices != 0 || overview.PendingAmount != 0 {
		t.Errorf("after payment = %d paid, %d pending, %v due", overview.PaidInvoices, overview.PendingInvoices, overview.PendingAmount)
	}
	if overview.TotalRevenue != 5897.64 || overview.MonthlyRevenue != 5897.64 {
		t.Errorf("revenue = %v/%v, want 5897.64", overview.TotalRevenue, overview.MonthlyRevenue)
	}
	if overview.LowStockItems != 1 {
		t.Errorf("LowStockItems = %d, want 1", overview.LowStockItems)
	}
}

func TestDashboardOverviewEmpty(t *testing.T) {
	svc, _ := newTestServices(t)
	overview, err := svc.Dashboard.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.TopProducts == nil || len(overview.TopProducts) != 0 {
		t.Errorf("TopProducts = %#v, want empty list", overview.TopProducts)
	}
}
