package services

import (
	"context"
	"fmt"
	"time"

	"inventory-backend/models"
	"inventory-backend/store"
	"inventory-backend/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SeedCounts reports how many records each collection received.
type SeedCounts struct {
	Products  int `json:"products"`
	Customers int `json:"customers"`
	Companies int `json:"companies"`
	Invoices  int `json:"invoices"`
}

type SeedService struct {
	collections *store.Collections
	now         func() time.Time
}

func NewSeedService(collections *store.Collections) *SeedService {
	return &SeedService{collections: collections, now: time.Now}
}

// Seed empties the four business collections and fills them with a fixed
// sample data set. Identifiers are fresh on every call.
func (s *SeedService) Seed(ctx context.Context) (*SeedCounts, error) {
	c := s.collections
	if _, err := c.Products.DeleteMany(ctx, nil); err != nil {
		return nil, fmt.Errorf("clear products: %w", err)
	}
	if _, err := c.Customers.DeleteMany(ctx, nil); err != nil {
		return nil, fmt.Errorf("clear customers: %w", err)
	}
	if _, err := c.Companies.DeleteMany(ctx, nil); err != nil {
		return nil, fmt.Errorf("clear companies: %w", err)
	}
	if _, err := c.Invoices.DeleteMany(ctx, nil); err != nil {
		return nil, fmt.Errorf("clear invoices: %w", err)
	}

	products := sampleProducts()
	customers := sampleCustomers()
	companies := []models.Company{{
		ID:        uuid.NewString(),
		Name:      "My Business Inc",
		Email:     "contact@mybusiness.com",
		Phone:     "+91 9999888877",
		Address:   "Corporate Office, Business Hub, Chennai 600001",
		GSTIN:     "33AAPFU0939F1ZY",
		CreatedAt: utils.Timestamp(s.now()),
	}}
	invoice := sampleInvoice(customers[0], products[0])

	if err := c.Products.InsertMany(ctx, products); err != nil {
		return nil, fmt.Errorf("seed products: %w", err)
	}
	if err := c.Customers.InsertMany(ctx, customers); err != nil {
		return nil, fmt.Errorf("seed customers: %w", err)
	}
	if err := c.Companies.InsertMany(ctx, companies); err != nil {
		return nil, fmt.Errorf("seed companies: %w", err)
	}
	if err := c.Invoices.InsertOne(ctx, &invoice); err != nil {
		return nil, fmt.Errorf("seed invoices: %w", err)
	}

	return &SeedCounts{
		Products:  len(products),
		Customers: len(customers),
		Companies: len(companies),
		Invoices:  1,
	}, nil
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: uuid.NewString(), Name: "Wireless Bluetooth Headphones", SKU: "WBH-001", Category: "Electronics", Price: 2499, Stock: 50, MinStock: 10, Unit: "piece", HSN: "85183000", GSTRate: 18, Supplier: "Audio Tech Supplies", LastUpdated: "2024-07-25"},
		{ID: uuid.NewString(), Name: "Smart LED Bulb", SKU: "SLB-002", Category: "Electronics", Price: 899, Stock: 100, MinStock: 20, Unit: "piece", HSN: "85395000", GSTRate: 18, Supplier: "Lighting Solutions", LastUpdated: "2024-07-25"},
		{ID: uuid.NewString(), Name: "Office Chair", SKU: "OC-003", Category: "Furniture", Price: 5999, Stock: 25, MinStock: 5, Unit: "piece", HSN: "94013000", GSTRate: 18, Supplier: "Furniture Hub", LastUpdated: "2024-07-25"},
		{ID: uuid.NewString(), Name: "Notebook - A4", SKU: "NB-004", Category: "Stationery", Price: 120, Stock: 200, MinStock: 50, Unit: "piece", HSN: "48201000", GSTRate: 12, Supplier: "Paper Works", LastUpdated: "2024-07-25"},
	}
}

func sampleCustomers() []models.Customer {
	date := func(s string) *string { return &s }
	return []models.Customer{
		{ID: uuid.NewString(), Name: "Acme Corporation", Email: "billing@acme.com", Phone: "+91 9876543210", Address: "789 Industrial Area, Delhi 110001", GSTIN: "07AAPFU0939F1ZV", Outstanding: 5000, TotalBusiness: 25000, LastInvoice: date("2024-07-20"), Status: models.StatusActive},
		{ID: uuid.NewString(), Name: "Tech Solutions Pvt Ltd", Email: "accounts@techsol.com", Phone: "+91 8765432109", Address: "456 Tech Park, Bangalore 560001", GSTIN: "29AAPFU0939F1ZW", Outstanding: 0, TotalBusiness: 15000, LastInvoice: date("2024-07-15"), Status: models.StatusActive},
		{ID: uuid.NewString(), Name: "Global Enterprises", Email: "info@global.com", Phone: "+91 7654321098", Address: "123 Business District, Mumbai 400001", GSTIN: "27AAPFU0939F1ZX", Outstanding: 2500, TotalBusiness: 50000, LastInvoice: date("2024-07-22"), Status: models.StatusActive},
	}
}

// sampleInvoice bills two units of product to customer.
func sampleInvoice(customer models.Customer, product models.Product) models.Invoice {
	items := []models.InvoiceItem{{
		ProductID: product.ID,
		Name:      product.Name,
		SKU:       product.SKU,
		Category:  product.Category,
		Quantity:  2,
		Price:     product.Price,
		Unit:      product.Unit,
		HSN:       product.HSN,
		GSTRate:   product.GSTRate,
		Amount:    product.Price * 2,
	}}
	totals := CalculateTotals(items)
	return models.Invoice{
		ID:              uuid.NewString(),
		InvoiceNumber:   "INV-001",
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		CustomerGSTIN:   customer.GSTIN,
		Date:            "2024-07-20",
		DueDate:         "2024-08-19",
		Items:           datatypes.JSONSlice[models.InvoiceItem](items),
		Amount:          totals.Amount,
		GSTAmount:       totals.GSTAmount,
		TotalAmount:     totals.TotalAmount,
		Notes:           "Payment due in 30 days",
		Status:          models.StatusPending,
	}
}
