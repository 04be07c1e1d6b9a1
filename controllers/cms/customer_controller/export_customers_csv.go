package customer_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/services"
	"github.com/gin-gonic/gin"
)

// ExportCustomersCSV godoc
// @Summary Export customers as CSV
// @Description Every guest in the filtered view, unpaginated. Columns: Name, Email, Status, Orders, Lifetime Value, Last Order, Joined.
// @Tags Admin - Customers
// @Produce text/csv
// @Security BearerAuth
// @Param q query string false "Search name, email or tags"
// @Param status query string false "Filter by status"
// @Param segment query string false "Filter by segment"
// @Param sort query string false "Sort order"
// @Success 200 {file} file "CSV file"
// @Failure 401 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/customers/export [get]
func ExportCustomersCSV(c *gin.Context) {
	log.Printf("[admin.customers-export] start rawQuery=%s", c.Request.URL.RawQuery)

	opts, ok := parseViewOptions(c)
	if !ok {
		return
	}

	snap, ok := loadSnapshot(c, "admin.customers-export")
	if !ok {
		return
	}

	now := services.GetCustomerService().Now()
	view := intelligence.View(snap.Customers, opts, now)

	var buf bytes.Buffer
	if err := intelligence.WriteCSV(&buf, view); err != nil {
		log.Printf("[admin.customers-export] ERROR write csv err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to export customers"))
		return
	}

	filename := fmt.Sprintf("customers-%s.csv", now.Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())

	log.Printf("[admin.customers-export] respond 200 rows=%d", len(view))
}
