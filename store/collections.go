package store

import (
	"inventory-backend/models"

	"gorm.io/gorm"
)

// Collections groups the record sets the API serves.
type Collections struct {
	Products     Collection[models.Product]
	Customers    Collection[models.Customer]
	Companies    Collection[models.Company]
	Invoices     Collection[models.Invoice]
	StatusChecks Collection[models.StatusCheck]
}

// Models lists the record types to migrate.
func Models() []interface{} {
	return []interface{}{
		&models.Product{},
		&models.Customer{},
		&models.Company{},
		&models.Invoice{},
		&models.StatusCheck{},
	}
}

// NewGormCollections binds every collection to db.
func NewGormCollections(db *gorm.DB) *Collections {
	return &Collections{
		Products:     NewGormCollection[models.Product](db, "products"),
		Customers:    NewGormCollection[models.Customer](db, "customers"),
		Companies:    NewGormCollection[models.Company](db, "companies"),
		Invoices:     NewGormCollection[models.Invoice](db, "invoices"),
		StatusChecks: NewGormCollection[models.StatusCheck](db, "status_checks"),
	}
}

// NewMemoryCollections returns empty in-process collections.
func NewMemoryCollections() (*Collections, error) {
	products, err := NewMemoryCollection[models.Product]("products")
	if err != nil {
		return nil, err
	}
	customers, err := NewMemoryCollection[models.Customer]("customers")
	if err != nil {
		return nil, err
	}
	companies, err := NewMemoryCollection[models.Company]("companies")
	if err != nil {
		return nil, err
	}
	invoices, err := NewMemoryCollection[models.Invoice]("invoices")
	if err != nil {
		return nil, err
	}
	statusChecks, err := NewMemoryCollection[models.StatusCheck]("status_checks")
	if err != nil {
		return nil, err
	}
	return &Collections{
		Products:     products,
		Customers:    customers,
		Companies:    companies,
		Invoices:     invoices,
		StatusChecks: statusChecks,
	}, nil
}
