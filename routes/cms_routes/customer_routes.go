package cms_routes

import (
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/controllers/cms/customer_controller"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/customers")
	customer.Use(middleware.AdminAuthMiddleware())

	// ════════════════════════════════════════════════════════════
	// Read Routes (any admin role, viewers included)
	// ════════════════════════════════════════════════════════════
	customer.GET("", customer_controller.GetCustomers)
	customer.GET("/stats", customer_controller.GetCustomerStats)
	customer.GET("/export", customer_controller.ExportCustomersCSV)
	customer.GET("/report", customer_controller.DownloadCustomerReportPDF)
	customer.GET("/:id", customer_controller.GetCustomerDetailsByID)
	customer.GET("/:id/orders", customer_controller.GetCustomerOrders)

	// ════════════════════════════════════════════════════════════
	// Write Routes (admin, super_admin)
	// ════════════════════════════════════════════════════════════
	write := customer.Group("")
	write.Use(middleware.RequireWriteRoleMiddleware())
	{
		write.PATCH("/:id", customer_controller.UpdateCustomerDetails)
	}
}
