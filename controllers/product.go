// controllers/product.go
package controllers

import (
	"net/http"

	"inventory-backend/models"
	"inventory-backend/services"
	"inventory-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Products *services.ProductService
}

// CreateProduct creates a new product, generating a SKU when none is given
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input models.ProductCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindError(c, err)
		return
	}

	product, err := pc.Products.Create(c.Request.Context(), input)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetProducts retrieves all products
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, err := pc.Products.List(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct retrieves a specific product by ID
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Database error")
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct updates the provided fields of an existing product
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var input models.ProductUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindError(c, err)
		return
	}

	product, err := pc.Products.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product. Invoices referencing it are kept.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.Products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
