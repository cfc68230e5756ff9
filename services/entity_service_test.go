package services

import (
	"context"
	"testing"
	"time"

	"inventory-backend/models"
)

func TestCustomerServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	customer, err := svc.Customers.Create(ctx, models.CustomerCreate{
		Name:  "Tech Solutions Pvt Ltd",
		Email: "accounts@techsol.com",
		Phone: "+91 8765432109",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if customer.Status != models.StatusActive || customer.Outstanding != 0 || customer.LastInvoice != nil {
		t.Errorf("defaults = %+v", *customer)
	}

	updated, err := svc.Customers.Update(ctx, customer.ID, models.CustomerUpdate{
		Status:  ptr(models.StatusInactive),
		Address: ptr("456 Tech Park, Bangalore 560001"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != models.StatusInactive || updated.Address != "456 Tech Park, Bangalore 560001" {
		t.Errorf("updated = %+v", *updated)
	}
	if updated.Email != customer.Email {
		t.Errorf("Email = %q, want %q", updated.Email, customer.Email)
	}

	list, err := svc.Customers.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != customer.ID {
		t.Errorf("List = %+v", list)
	}

	if err := svc.Customers.Delete(ctx, customer.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, err = svc.Customers.Get(ctx, customer.ID)
	assertNotFound(t, err, "Customer")
}

func TestCompanyServiceCreatedAtIsFixed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	created := time.Date(2024, 7, 25, 10, 0, 0, 123456789, time.UTC)
	svc.Companies.now = fixedClock(created)

	company, err := svc.Companies.Create(ctx, models.CompanyCreate{
		Name:  "My Business Inc",
		Email: "contact@mybusiness.com",
		Phone: "+91 9999888877",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !company.CreatedAt.Equal(created.Truncate(time.Microsecond)) {
		t.Errorf("CreatedAt = %v, want %v", company.CreatedAt, created.Truncate(time.Microsecond))
	}

	svc.Companies.now = fixedClock(created.Add(48 * time.Hour))
	updated, err := svc.Companies.Update(ctx, company.ID, models.CompanyUpdate{Logo: ptr("https://example.com/logo.png")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.CreatedAt.Equal(company.CreatedAt) {
		t.Errorf("CreatedAt changed to %v", updated.CreatedAt)
	}
	if updated.Logo != "https://example.com/logo.png" || updated.Name != "My Business Inc" {
		t.Errorf("updated = %+v", *updated)
	}

	_, err = svc.Companies.Update(ctx, "missing", models.CompanyUpdate{Name: ptr("x")})
	assertNotFound(t, err, "Company")
}

func TestStatusServiceCreateAndList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	for _, name := range []string{"web", "mobile"} {
		if _, err := svc.Status.Create(ctx, models.StatusCheckCreate{ClientName: name}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	checks, err := svc.Status.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(checks) != 2 || checks[0].ClientName != "web" || checks[1].ClientName != "mobile" {
		t.Errorf("List = %+v", checks)
	}
	if checks[0].Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}
