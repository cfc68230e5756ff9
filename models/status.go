package models

// Status is shared by customers and invoices. Customers only use
// StatusActive and StatusInactive; invoices use draft, pending, paid and
// overdue.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDraft    Status = "draft"
	StatusPaid     Status = "paid"
	StatusPending  Status = "pending"
	StatusOverdue  Status = "overdue"
)
