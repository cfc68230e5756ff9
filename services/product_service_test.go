package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"inventory-backend/models"
	"inventory-backend/store"
)

func TestProductServiceCreateDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	svc.Products.now = fixedClock(time.Date(2024, 7, 25, 15, 0, 0, 0, time.UTC))

	product, err := svc.Products.Create(ctx, models.ProductCreate{
		Name:     "Smart LED Bulb",
		Category: "Electronics",
		Price:    ptr(899.0),
		Stock:    ptr(100),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if product.ID == "" {
		t.Error("ID is empty")
	}
	if !strings.HasPrefix(product.SKU, "SKU-") {
		t.Errorf("SKU = %q, want SKU- prefix", product.SKU)
	}
	if product.MinStock != 5 || product.Unit != "piece" || product.GSTRate != 18 {
		t.Errorf("defaults = (%d, %q, %d), want (5, piece, 18)", product.MinStock, product.Unit, product.GSTRate)
	}
	if product.HSN != "" || product.Supplier != "" {
		t.Errorf("hsn/supplier = %q/%q, want empty", product.HSN, product.Supplier)
	}
	if product.LastUpdated != "2024-07-25" {
		t.Errorf("LastUpdated = %q, want 2024-07-25", product.LastUpdated)
	}

	stored, err := svc.Products.Get(ctx, product.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *stored != *product {
		t.Errorf("stored = %+v, want %+v", *stored, *product)
	}
}

func TestProductServiceCreateKeepsExplicitValues(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	product, err := svc.Products.Create(ctx, models.ProductCreate{
		Name:     "Notebook",
		SKU:      ptr("NB-004"),
		Category: "Stationery",
		Price:    ptr(0.0),
		Stock:    ptr(0),
		MinStock: ptr(0),
		Unit:     ptr("box"),
		GSTRate:  ptr(0),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if product.SKU != "NB-004" {
		t.Errorf("SKU = %q, want NB-004", product.SKU)
	}
	if product.MinStock != 0 || product.GSTRate != 0 || product.Unit != "box" {
		t.Errorf("got (%d, %d, %q), want (0, 0, box)", product.MinStock, product.GSTRate, product.Unit)
	}
}

func TestProductServiceGeneratedSKUsAreUnique(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		product, err := svc.Products.Create(ctx, models.ProductCreate{
			Name: "Widget", Category: "Misc", Price: ptr(1.0), Stock: ptr(1),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if seen[product.SKU] {
			t.Fatalf("duplicate SKU %q", product.SKU)
		}
		seen[product.SKU] = true
	}
}

func TestProductServiceUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	svc.Products.now = fixedClock(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))

	product, err := svc.Products.Create(ctx, models.ProductCreate{
		Name: "Office Chair", Category: "Furniture", Price: ptr(5999.0), Stock: ptr(25), Supplier: "Furniture Hub",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc.Products.now = fixedClock(time.Date(2024, 7, 25, 9, 0, 0, 0, time.UTC))
	updated, err := svc.Products.Update(ctx, product.ID, models.ProductUpdate{
		Price:    ptr(5499.0),
		Supplier: ptr(""),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Price != 5499 {
		t.Errorf("Price = %v, want 5499", updated.Price)
	}
	if updated.Supplier != "" {
		t.Errorf("Supplier = %q, want empty", updated.Supplier)
	}
	if updated.Name != "Office Chair" || updated.Stock != 25 || updated.SKU != product.SKU {
		t.Errorf("untouched fields changed: %+v", *updated)
	}
	if updated.LastUpdated != "2024-07-25" {
		t.Errorf("LastUpdated = %q, want 2024-07-25", updated.LastUpdated)
	}
}

func TestProductServiceUpdateWithNoFieldsStampsDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	svc.Products.now = fixedClock(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))
	product, err := svc.Products.Create(ctx, models.ProductCreate{
		Name: "Bulb", Category: "Electronics", Price: ptr(10.0), Stock: ptr(3),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc.Products.now = fixedClock(time.Date(2024, 7, 2, 9, 0, 0, 0, time.UTC))
	updated, err := svc.Products.Update(ctx, product.ID, models.ProductUpdate{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.LastUpdated != "2024-07-02" {
		t.Errorf("LastUpdated = %q, want 2024-07-02", updated.LastUpdated)
	}
	if updated.Price != 10 || updated.Name != "Bulb" {
		t.Errorf("fields changed: %+v", *updated)
	}
}

func TestProductServiceMissingRecord(t *testing.T) {
	ctx := context.Background()
	svc, collections := newTestServices(t)

	_, err := svc.Products.Get(ctx, "does-not-exist")
	assertNotFound(t, err, "Product")

	_, err = svc.Products.Update(ctx, "does-not-exist", models.ProductUpdate{Name: ptr("ghost")})
	assertNotFound(t, err, "Product")

	err = svc.Products.Delete(ctx, "does-not-exist")
	assertNotFound(t, err, "Product")

	docs, err := collections.Products.Find(ctx, nil, 0)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("update of missing record stored %d documents", len(docs))
	}
}

func TestProductServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	product, err := svc.Products.Create(ctx, models.ProductCreate{
		Name: "Bulb", Category: "Electronics", Price: ptr(10.0), Stock: ptr(3),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Products.Delete(ctx, product.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, err = svc.Products.Get(ctx, product.ID)
	assertNotFound(t, err, "Product")

	err = svc.Products.Delete(ctx, product.ID)
	assertNotFound(t, err, "Product")
}

func assertNotFound(t *testing.T, err error, entity string) {
	t.Helper()
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %T, want *NotFoundError", err)
	}
	if want := entity + " not found"; nf.Error() != want {
		t.Errorf("message = %q, want %q", nf.Error(), want)
	}
}
