// controllers/invoice.go
package controllers

import (
	"net/http"

	"inventory-backend/models"
	"inventory-backend/services"
	"inventory-backend/utils"

	"github.com/gin-gonic/gin"
)

type InvoiceController struct {
	Invoices *services.InvoiceService
}

// CreateInvoice creates a new invoice with totals computed from its items
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	var input models.InvoiceCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindError(c, err)
		return
	}

	invoice, err := ic.Invoices.Create(c.Request.Context(), input)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// GetInvoices retrieves all invoices
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	invoices, err := ic.Invoices.List(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific invoice by ID
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	invoice, err := ic.Invoices.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Database error")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice updates an existing invoice. Totals are recomputed only
// when the request carries a new items list.
func (ic *InvoiceController) UpdateInvoice(c *gin.Context) {
	var input models.InvoiceUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindError(c, err)
		return
	}

	invoice, err := ic.Invoices.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice deletes an invoice
func (ic *InvoiceController) DeleteInvoice(c *gin.Context) {
	if err := ic.Invoices.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete invoice")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
