package customer_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/services"
	"github.com/gin-gonic/gin"
)

// GetCustomers godoc
// @Summary Get customers (CMS)
// @Description Enriched guest list with lifecycle status, lifetime value and order counts. Search, status and segment filters apply in that order, then the sort.
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param q query string false "Search name, email or tags"
// @Param status query string false "Filter by status" Enums(all,vip,blacklisted,active,engaged,at-risk,inactive,prospect)
// @Param segment query string false "Filter by segment" Enums(all,vip,highLtv,repeat,new,dormant)
// @Param sort query string false "Sort order" Enums(recent,ltv,orders,name) default(recent)
// @Success 200 {object} models.ApiResponse{data=[]intelligence.EnrichedCustomer,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/customers [get]
func GetCustomers(c *gin.Context) {
	log.Printf("[admin.customers] start path=%s method=%s rawQuery=%s",
		c.FullPath(), c.Request.Method, c.Request.URL.RawQuery)

	page, limit := parsePagination(c)
	opts, ok := parseViewOptions(c)
	if !ok {
		return
	}

	snap, ok := loadSnapshot(c, "admin.customers")
	if !ok {
		return
	}

	view := intelligence.View(snap.Customers, opts, services.GetCustomerService().Now())
	out, meta := paginate(view, page, limit)

	log.Printf("[admin.customers] respond 200 total=%d page=%d", meta.Total, page)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Customers retrieved successfully",
		out,
		meta,
	))
}
