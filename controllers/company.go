package controllers

import (
	"net/http"

	"inventory-backend/models"
	"inventory-backend/services"
	"inventory-backend/utils"

	"github.com/gin-gonic/gin"
)

type CompanyController struct {
	Companies *services.CompanyService
}

func (cp *CompanyController) CreateCompany(c *gin.Context) {
	var input models.CompanyCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindError(c, err)
		return
	}

	company, err := cp.Companies.Create(c.Request.Context(), input)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create company")
		return
	}

	c.JSON(http.StatusOK, company)
}

func (cp *CompanyController) GetCompanies(c *gin.Context) {
	companies, err := cp.Companies.List(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve companies")
		return
	}

	c.JSON(http.StatusOK, companies)
}

func (cp *CompanyController) GetCompany(c *gin.Context) {
	company, err := cp.Companies.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Database error")
		return
	}

	c.JSON(http.StatusOK, company)
}

// UpdateCompany changes profile fields; createdAt is never touched
func (cp *CompanyController) UpdateCompany(c *gin.Context) {
	var input models.CompanyUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindError(c, err)
		return
	}

	company, err := cp.Companies.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update company")
		return
	}

	c.JSON(http.StatusOK, company)
}

func (cp *CompanyController) DeleteCompany(c *gin.Context) {
	if err := cp.Companies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete company")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}
