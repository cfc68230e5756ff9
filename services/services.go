package services

import (
	"inventory-backend/store"

	"github.com/bwmarrin/snowflake"
)

// Services bundles the entity services over one set of collections.
type Services struct {
	Products  *ProductService
	Customers *CustomerService
	Companies *CompanyService
	Invoices  *InvoiceService
	Status    *StatusService
	Seed      *SeedService
	Dashboard *DashboardService
	Overdue   *OverdueService
}

func New(collections *store.Collections, skuNode *snowflake.Node) *Services {
	products := NewProductService(collections.Products, skuNode)
	customers := NewCustomerService(collections.Customers)
	invoices := NewInvoiceService(collections.Invoices)
	return &Services{
		Products:  products,
		Customers: customers,
		Companies: NewCompanyService(collections.Companies),
		Invoices:  invoices,
		Status:    NewStatusService(collections.StatusChecks),
		Seed:      NewSeedService(collections),
		Dashboard: NewDashboardService(products, customers, invoices),
		Overdue:   NewOverdueService(invoices),
	}
}
