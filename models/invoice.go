package models

import (
	"gorm.io/datatypes"
)

// InvoiceItem is a line on an invoice. Product fields are a snapshot taken
// when the line was written.
type InvoiceItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Unit      string  `json:"unit"`
	HSN       string  `json:"hsn"`
	GSTRate   int     `json:"gstRate"`
	Amount    float64 `json:"amount"`
}

type Invoice struct {
	ID              string `json:"id" gorm:"primaryKey;size:36"`
	InvoiceNumber   string `json:"invoiceNumber" gorm:"size:64;index"`
	CustomerID      string `json:"customerId" gorm:"size:36;index"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	CustomerGSTIN   string `json:"customerGSTIN" gorm:"column:customer_gstin"`
	Date            string `json:"date" gorm:"size:10"`
	DueDate         string `json:"dueDate" gorm:"size:10"`

	Items datatypes.JSONSlice[InvoiceItem] `json:"items"`

	Amount      float64 `json:"amount"`
	GSTAmount   float64 `json:"gstAmount" gorm:"column:gst_amount"`
	TotalAmount float64 `json:"totalAmount"`

	Notes  string `json:"notes"`
	Status Status `json:"status" gorm:"size:16;index"`
}

// InvoiceItemInput defines the structure for an invoice item. Amount and
// GSTRate must be present; the rest fall back to defaults.
type InvoiceItemInput struct {
	ProductID string   `json:"productId" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	SKU       string   `json:"sku" binding:"required"`
	Category  *string  `json:"category"`
	Quantity  *int     `json:"quantity" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
	Unit      *string  `json:"unit"`
	HSN       string   `json:"hsn"`
	GSTRate   *int     `json:"gstRate" binding:"required,min=0"`
	Amount    *float64 `json:"amount" binding:"required"`
}

// Item converts the input into a stored line.
func (in InvoiceItemInput) Item() InvoiceItem {
	item := InvoiceItem{
		ProductID: in.ProductID,
		Name:      in.Name,
		SKU:       in.SKU,
		Category:  "General",
		Quantity:  *in.Quantity,
		Price:     *in.Price,
		Unit:      "piece",
		HSN:       in.HSN,
		GSTRate:   *in.GSTRate,
		Amount:    *in.Amount,
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	return item
}

// ItemsFromInput converts a slice of inputs, always returning a non-nil slice.
func ItemsFromInput(inputs []InvoiceItemInput) []InvoiceItem {
	items := make([]InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, in.Item())
	}
	return items
}

// InvoiceCreate defines the expected JSON structure for creating an invoice.
// Totals are never accepted from the caller.
type InvoiceCreate struct {
	InvoiceNumber   string             `json:"invoiceNumber" binding:"required"`
	CustomerID      string             `json:"customerId" binding:"required"`
	CustomerName    string             `json:"customerName" binding:"required"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerAddress string             `json:"customerAddress"`
	CustomerGSTIN   string             `json:"customerGSTIN"`
	Date            string             `json:"date" binding:"required"`
	DueDate         string             `json:"dueDate" binding:"required"`
	Items           []InvoiceItemInput `json:"items" binding:"required,dive"`
	Notes           string             `json:"notes"`
	Status          *Status            `json:"status" binding:"omitempty,oneof=draft pending paid overdue"`
}

// InvoiceUpdate defines the expected JSON structure for updating an invoice
type InvoiceUpdate struct {
	InvoiceNumber   *string             `json:"invoiceNumber"`
	CustomerID      *string             `json:"customerId"`
	CustomerName    *string             `json:"customerName"`
	CustomerEmail   *string             `json:"customerEmail"`
	CustomerPhone   *string             `json:"customerPhone"`
	CustomerAddress *string             `json:"customerAddress"`
	CustomerGSTIN   *string             `json:"customerGSTIN"`
	Date            *string             `json:"date"`
	DueDate         *string             `json:"dueDate"`
	Items           *[]InvoiceItemInput `json:"items" binding:"omitempty,dive"`
	Notes           *string             `json:"notes"`
	Status          *Status             `json:"status" binding:"omitempty,oneof=draft pending paid overdue"`
}

// Changes returns the columns explicitly set in the update. Items are
// returned as a JSON column value; totals are added by the caller.
func (u InvoiceUpdate) Changes() map[string]interface{} {
	set := map[string]interface{}{}
	if u.InvoiceNumber != nil {
		set["invoice_number"] = *u.InvoiceNumber
	}
	if u.CustomerID != nil {
		set["customer_id"] = *u.CustomerID
	}
	if u.CustomerName != nil {
		set["customer_name"] = *u.CustomerName
	}
	if u.CustomerEmail != nil {
		set["customer_email"] = *u.CustomerEmail
	}
	if u.CustomerPhone != nil {
		set["customer_phone"] = *u.CustomerPhone
	}
	if u.CustomerAddress != nil {
		set["customer_address"] = *u.CustomerAddress
	}
	if u.CustomerGSTIN != nil {
		set["customer_gstin"] = *u.CustomerGSTIN
	}
	if u.Date != nil {
		set["date"] = *u.Date
	}
	if u.DueDate != nil {
		set["due_date"] = *u.DueDate
	}
	if u.Items != nil {
		set["items"] = datatypes.JSONSlice[InvoiceItem](ItemsFromInput(*u.Items))
	}
	if u.Notes != nil {
		set["notes"] = *u.Notes
	}
	if u.Status != nil {
		set["status"] = string(*u.Status)
	}
	return set
}
