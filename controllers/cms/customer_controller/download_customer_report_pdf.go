package customer_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/services"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

const reportTopCustomers = 20

// DownloadCustomerReportPDF godoc
// @Summary Download customer intelligence report
// @Description PDF with headline metrics, the segment breakdown and the first 20 guests of the filtered view
// @Tags Admin - Customers
// @Produce application/pdf
// @Security BearerAuth
// @Param q query string false "Search name, email or tags"
// @Param status query string false "Filter by status"
// @Param segment query string false "Filter by segment"
// @Param sort query string false "Sort order"
// @Success 200 {file} file "PDF file"
// @Failure 401 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/customers/report [get]
func DownloadCustomerReportPDF(c *gin.Context) {
	log.Printf("[admin.customers-report] start rawQuery=%s", c.Request.URL.RawQuery)

	opts, ok := parseViewOptions(c)
	if !ok {
		return
	}

	snap, ok := loadSnapshot(c, "admin.customers-report")
	if !ok {
		return
	}

	now := services.GetCustomerService().Now()
	view := intelligence.View(snap.Customers, opts, now)
	if len(view) > reportTopCustomers {
		view = view[:reportTopCustomers]
	}

	pdfBuffer, err := generateCustomerReportPDF(
		intelligence.SummarizeMetrics(snap.Customers),
		intelligence.SummarizeSegments(snap.Customers),
		view,
		now,
	)
	if err != nil {
		log.Printf("[admin.customers-report] ERROR failed to generate PDF: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate report"))
		return
	}

	filename := fmt.Sprintf("customer-report-%s.pdf", now.Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[admin.customers-report] respond 200 rows=%d bytes=%d", len(view), pdfBuffer.Len())
}

func generateCustomerReportPDF(metrics intelligence.MetricsSummary, segments []intelligence.SegmentBucket, top []intelligence.EnrichedCustomer, generatedAt time.Time) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("CUSTOMER INTELLIGENCE", props.Text{
				Size:  20,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Generated %s", generatedAt.Format("Jan 02, 2006 15:04 MST")), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Headline metrics
	headline := []struct{ label, value string }{
		{"Guests", fmt.Sprintf("%d", metrics.Total)},
		{"VIP", fmt.Sprintf("%d", metrics.VipCount)},
		{"Avg orders", fmt.Sprintf("%.1f", metrics.AvgOrders)},
		{"Avg lifetime value", fmt.Sprintf("$%.2f", metrics.AvgLifetimeValue)},
	}
	m.Row(6, func() {
		for _, h := range headline {
			m.Col(3, func() {
				m.Text(h.label, props.Text{Size: 8, Color: mediumGray})
			})
		}
	})
	m.Row(10, func() {
		for _, h := range headline {
			m.Col(3, func() {
				m.Text(h.value, props.Text{Size: 14, Style: consts.Bold, Color: darkGray})
			})
		}
	})

	m.Row(8, func() {})

	// Segments
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text("SEGMENTS", props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
	})
	for _, s := range segments {
		m.Row(6, func() {
			m.Col(8, func() {
				m.Text(s.Name, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", s.Count), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d%%", s.Percent), props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	// Top guests
	m.Row(8, func() {
		m.Col(4, func() {
			m.Text("Guest", props.Text{Size: 9, Style: consts.Bold, Color: darkGray})
		})
		m.Col(3, func() {
			m.Text("Status", props.Text{Size: 9, Style: consts.Bold, Color: darkGray})
		})
		m.Col(2, func() {
			m.Text("Orders", props.Text{Size: 9, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(3, func() {
			m.Text("Lifetime value", props.Text{Size: 9, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})
	for _, cust := range top {
		m.Row(6, func() {
			m.Col(4, func() {
				m.Text(cust.DisplayName, props.Text{Size: 8, Color: darkGray})
			})
			m.Col(3, func() {
				m.Text(intelligence.StatusLabel(cust.Status), props.Text{Size: 8, Color: mediumGray})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", cust.OrdersCount), props.Text{Size: 8, Color: darkGray, Align: consts.Right})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("$%.2f", cust.LifetimeValue), props.Text{Size: 8, Color: darkGray, Align: consts.Right})
			})
		})
	}
	if len(top) == 0 {
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text("No guests match the current filters.", props.Text{Size: 8, Color: mediumGray})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
