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

type InvoiceService struct {
	records[models.Invoice]
}

func NewInvoiceService(invoices store.Collection[models.Invoice]) *InvoiceService {
	return &InvoiceService{records: records[models.Invoice]{coll: invoices, entity: "Invoice"}}
}

// Create stores the invoice with totals computed from its items. The
// customer fields are kept as given; they are not looked up.
func (s *InvoiceService) Create(ctx context.Context, input models.InvoiceCreate) (*models.Invoice, error) {
	items := models.ItemsFromInput(input.Items)
	totals := CalculateTotals(items)

	invoice := models.Invoice{
		ID:              uuid.NewString(),
		InvoiceNumber:   input.InvoiceNumber,
		CustomerID:      input.CustomerID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		CustomerGSTIN:   input.CustomerGSTIN,
		Date:            input.Date,
		DueDate:         input.DueDate,
		Items:           datatypes.JSONSlice[models.InvoiceItem](items),
		Amount:          totals.Amount,
		GSTAmount:       totals.GSTAmount,
		TotalAmount:     totals.TotalAmount,
		Notes:           input.Notes,
		Status:          models.StatusDraft,
	}
	if input.Status != nil {
		invoice.Status = *input.Status
	}

	if err := s.coll.InsertOne(ctx, &invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return &invoice, nil
}

func (s *InvoiceService) Get(ctx context.Context, id string) (*models.Invoice, error) {
	return s.get(ctx, id)
}

func (s *InvoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	return s.list(ctx)
}

// Update applies the provided fields. Totals are recomputed only when the
// update replaces the items.
func (s *InvoiceService) Update(ctx context.Context, id string, input models.InvoiceUpdate) (*models.Invoice, error) {
	set := input.Changes()
	if input.Items != nil {
		for column, value := range CalculateTotals(models.ItemsFromInput(*input.Items)).Columns() {
			set[column] = value
		}
	}
	return s.update(ctx, id, set)
}

func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

// MarkOverdue flags every pending invoice due before today and returns how
// many were changed. Invoices whose due date does not parse are skipped.
func (s *InvoiceService) MarkOverdue(ctx context.Context, today time.Time) (int, error) {
	pending, err := s.coll.Find(ctx, store.Filter{"status": string(models.StatusPending)}, store.DefaultListLimit)
	if err != nil {
		return 0, fmt.Errorf("find pending invoices: %w", err)
	}
	marked := 0
	for _, invoice := range pending {
		due, err := utils.ParseDate(invoice.DueDate)
		if err != nil || utils.DaysBetween(due, today) <= 0 {
			continue
		}
		set := map[string]interface{}{"status": string(models.StatusOverdue)}
		if _, err := s.coll.UpdateOne(ctx, store.ByID(invoice.ID), set); err != nil {
			return marked, fmt.Errorf("mark invoice %s overdue: %w", invoice.ID, err)
		}
		marked++
	}
	return marked, nil
}
