// controllers/customer.go
package controllers

import (
	"net/http"

	"inventory-backend/models"
	"inventory-backend/services"
	"inventory-backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Customers *services.CustomerService
}

// CreateCustomer creates a new active customer
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var input models.CustomerCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindError(c, err)
		return
	}

	customer, err := cc.Customers.Create(c.Request.Context(), input)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// GetCustomers retrieves all customers
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := cc.Customers.List(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	customer, err := cc.Customers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Database error")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var input models.CustomerUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindError(c, err)
		return
	}

	customer, err := cc.Customers.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer deletes a customer; its invoices are left as they are
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	if err := cc.Customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
