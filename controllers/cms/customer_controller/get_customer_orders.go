package customer_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCustomerOrders godoc
// @Summary Get customer orders
// @Description Every order attributed to the guest by id or email, newest first
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Success 200 {object} models.ApiResponse{data=[]intelligence.OrderRecord,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/customers/{id}/orders [get]
func GetCustomerOrders(c *gin.Context) {
	customerID := c.Param("id")
	log.Printf("[admin.customer-orders] start id=%s", customerID)

	id, err := uuid.Parse(customerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}
	page, limit := parsePagination(c)

	snap, ok := loadSnapshot(c, "admin.customer-orders")
	if !ok {
		return
	}

	customer, found := snap.Find(id.String())
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		return
	}

	orders := intelligence.RecentOrders(snap.Orders, customer.CustomerRecord, 0)
	out, meta := paginate(orders, page, limit)

	log.Printf("[admin.customer-orders] respond 200 id=%s total=%d", customerID, meta.Total)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customer orders retrieved successfully", out, meta))
}
