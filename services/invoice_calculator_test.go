package services

import (
	"testing"

	"inventory-backend/models"
)

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name  string
		items []models.InvoiceItem
		want  InvoiceTotals
	}{
		{
			name:  "no items",
			items: nil,
			want:  InvoiceTotals{},
		},
		{
			name:  "single line",
			items: []models.InvoiceItem{{Quantity: 2, Price: 2499, GSTRate: 18, Amount: 4998}},
			want:  InvoiceTotals{Amount: 4998, GSTAmount: 899.64, TotalAmount: 5897.64},
		},
		{
			name: "mixed rates",
			items: []models.InvoiceItem{
				{Amount: 100, GSTRate: 18},
				{Amount: 50, GSTRate: 5},
				{Amount: 10, GSTRate: 0},
			},
			want: InvoiceTotals{Amount: 160, GSTAmount: 20.5, TotalAmount: 180.5},
		},
		{
			name:  "amount is not recomputed from price",
			items: []models.InvoiceItem{{Quantity: 3, Price: 10, GSTRate: 10, Amount: 25}},
			want:  InvoiceTotals{Amount: 25, GSTAmount: 2.5, TotalAmount: 27.5},
		},
		{
			name: "cents do not drift",
			items: []models.InvoiceItem{
				{Amount: 0.1, GSTRate: 18},
				{Amount: 0.2, GSTRate: 18},
			},
			want: InvoiceTotals{Amount: 0.3, GSTAmount: 0.054, TotalAmount: 0.354},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotals(tt.items)
			if got != tt.want {
				t.Errorf("CalculateTotals() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInvoiceTotalsColumns(t *testing.T) {
	cols := InvoiceTotals{Amount: 1, GSTAmount: 2, TotalAmount: 3}.Columns()
	want := map[string]float64{"amount": 1, "gst_amount": 2, "total_amount": 3}
	if len(cols) != len(want) {
		t.Fatalf("Columns() has %d entries, want %d", len(cols), len(want))
	}
	for k, v := range want {
		if cols[k] != v {
			t.Errorf("Columns()[%q] = %v, want %v", k, cols[k], v)
		}
	}
}
