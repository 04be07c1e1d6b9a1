package customer_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/config"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/services"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// loadSnapshot writes a retryable 500 and returns false when the store is unreachable.
func loadSnapshot(c *gin.Context, tag string) (*services.CustomerSnapshot, bool) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, err := services.GetCustomerService().Snapshot(ctx)
	if err != nil {
		log.Printf("[%s] ERROR snapshot failed err=%v", tag, err)
		c.JSON(http.StatusInternalServerError, models.StoreErrorResponse(c, "Failed to load customers"))
		return nil, false
	}
	return snap, true
}

// parseViewOptions reads q, status, segment and sort. It writes a 400 and returns
// false on an unknown value.
func parseViewOptions(c *gin.Context) (intelligence.ViewOptions, bool) {
	status, ok := intelligence.ParseStatusFilter(c.Query("status"))
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status"))
		return intelligence.ViewOptions{}, false
	}
	segment, ok := intelligence.ParseSegmentFilter(c.Query("segment"))
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid segment"))
		return intelligence.ViewOptions{}, false
	}
	sortKey, ok := intelligence.ParseSortKey(c.Query("sort"))
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid sort"))
		return intelligence.ViewOptions{}, false
	}

	return intelligence.ViewOptions{
		Search:  strings.TrimSpace(c.Query("q")),
		Status:  status,
		Segment: segment,
		Sort:    sortKey,
	}, true
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	return page, limit
}

// paginate slices one page out of items and builds the meta block.
func paginate[T any](items []T, page, limit int) ([]T, *models.Pagination) {
	total := len(items)
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	start := (page - 1) * limit
	if start >= total {
		return []T{}, meta
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], meta
}
