package routes

import (
	"time"

	"inventory-backend/config"
	"inventory-backend/controllers"
	"inventory-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(server config.ServerConfig, svc *services.Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if server.AllowsAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = server.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	r.Use(config.PerformanceLogger())

	products := &controllers.ProductController{Products: svc.Products}
	customers := &controllers.CustomerController{Customers: svc.Customers}
	companies := &controllers.CompanyController{Companies: svc.Companies}
	invoices := &controllers.InvoiceController{Invoices: svc.Invoices}
	status := &controllers.StatusController{Status: svc.Status}
	seed := &controllers.SeedController{Seed: svc.Seed}
	dashboard := &controllers.DashboardController{Dashboard: svc.Dashboard}

	api := r.Group("/api")
	{
		api.GET("/", controllers.Root)
		api.POST("/status", status.CreateStatusCheck)
		api.GET("/status", status.GetStatusChecks)

		// Product routes
		productRoutes := api.Group("/products")
		{
			productRoutes.POST("", products.CreateProduct)
			productRoutes.GET("", products.GetProducts)
			productRoutes.GET("/:id", products.GetProduct)
			productRoutes.PUT("/:id", products.UpdateProduct)
			productRoutes.DELETE("/:id", products.DeleteProduct)
		}

		// Customer routes
		customerRoutes := api.Group("/customers")
		{
			customerRoutes.POST("", customers.CreateCustomer)
			customerRoutes.GET("", customers.GetCustomers)
			customerRoutes.GET("/:id", customers.GetCustomer)
			customerRoutes.PUT("/:id", customers.UpdateCustomer)
			customerRoutes.DELETE("/:id", customers.DeleteCustomer)
		}

		// Company routes
		companyRoutes := api.Group("/companies")
		{
			companyRoutes.POST("", companies.CreateCompany)
			companyRoutes.GET("", companies.GetCompanies)
			companyRoutes.GET("/:id", companies.GetCompany)
			companyRoutes.PUT("/:id", companies.UpdateCompany)
			companyRoutes.DELETE("/:id", companies.DeleteCompany)
		}

		// Invoice routes
		invoiceRoutes := api.Group("/invoices")
		{
			invoiceRoutes.POST("", invoices.CreateInvoice)
			invoiceRoutes.GET("", invoices.GetInvoices)
			invoiceRoutes.GET("/:id", invoices.GetInvoice)
			invoiceRoutes.PUT("/:id", invoices.UpdateInvoice)
			invoiceRoutes.DELETE("/:id", invoices.DeleteInvoice)
		}

		api.POST("/seed", seed.SeedDatabase)
		api.GET("/dashboard", dashboard.GetDashboardOverview)
	}

	return r
}
