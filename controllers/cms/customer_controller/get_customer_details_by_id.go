package customer_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const recentOrdersLimit = 5

// GetCustomerDetailsByID godoc
// @Summary Get customer details
// @Description One enriched guest plus their five most recent orders
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.CustomerDetailResponse}
// @Failure 401 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/customers/{id} [get]
func GetCustomerDetailsByID(c *gin.Context) {
	customerID := c.Param("id")
	log.Printf("[admin.customer-details] start id=%s", customerID)

	id, err := uuid.Parse(customerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	snap, ok := loadSnapshot(c, "admin.customer-details")
	if !ok {
		return
	}

	customer, found := snap.Find(id.String())
	if !found {
		log.Printf("[admin.customer-details] not found id=%s", customerID)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer retrieved successfully", models.CustomerDetailResponse{
		Customer:     customer,
		RecentOrders: intelligence.RecentOrders(snap.Orders, customer.CustomerRecord, recentOrdersLimit),
	}))
}
