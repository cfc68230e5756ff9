package services

import (
	"inventory-backend/models"

	"github.com/shopspring/decimal"
)

// InvoiceTotals are the derived money fields of an invoice.
type InvoiceTotals struct {
	Amount      float64 `json:"amount"`
	GSTAmount   float64 `json:"gstAmount"`
	TotalAmount float64 `json:"totalAmount"`
}

var hundred = decimal.NewFromInt(100)

// CalculateTotals sums line amounts and per-line GST in item order. Each
// line's amount is taken as given, not recomputed from price and quantity.
func CalculateTotals(items []models.InvoiceItem) InvoiceTotals {
	amount := decimal.Zero
	gst := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Amount)
		amount = amount.Add(line)
		gst = gst.Add(line.Mul(decimal.NewFromInt(int64(item.GSTRate))).Div(hundred))
	}
	return InvoiceTotals{
		Amount:      amount.InexactFloat64(),
		GSTAmount:   gst.InexactFloat64(),
		TotalAmount: amount.Add(gst).InexactFloat64(),
	}
}

// Columns returns the totals as an update set.
func (t InvoiceTotals) Columns() map[string]interface{} {
	return map[string]interface{}{
		"amount":       t.Amount,
		"gst_amount":   t.GSTAmount,
		"total_amount": t.TotalAmount,
	}
}
