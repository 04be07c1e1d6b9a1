package customer_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/gin-gonic/gin"
)

// GetCustomerStats godoc
// @Summary Get customer intelligence stats
// @Description Headline metrics (total, VIP count, average orders, average lifetime value) and the segment breakdown over every guest
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CustomerIntelligenceStats}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/customers/stats [get]
func GetCustomerStats(c *gin.Context) {
	log.Printf("[admin.customer-stats] start")

	snap, ok := loadSnapshot(c, "admin.customer-stats")
	if !ok {
		return
	}

	stats := models.CustomerIntelligenceStats{
		Metrics:     intelligence.SummarizeMetrics(snap.Customers),
		Segments:    intelligence.SummarizeSegments(snap.Customers),
		GeneratedAt: snap.GeneratedAt,
	}

	log.Printf("[admin.customer-stats] respond 200 total=%d vip=%d", stats.Metrics.Total, stats.Metrics.VipCount)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer stats retrieved successfully", stats))
}
