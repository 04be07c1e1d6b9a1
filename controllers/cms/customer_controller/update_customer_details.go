package customer_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/config"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateCustomerDetails godoc
// @Summary Update customer flags
// @Description Toggle VIP and blacklist flags and replace tags. Blacklisting requires a reason; lifting a blacklist clears it.
// @Tags Admin - Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID (UUID)"
// @Param customer body models.UpdateCustomerRequest true "Customer update data"
// @Success 200 {object} models.ApiResponse{data=intelligence.EnrichedCustomer}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Failure 404 {object} models.ApiResponse "Customer not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/customers/{id} [patch]
func UpdateCustomerDetails(c *gin.Context) {
	log.Printf("[admin.update-customer] start path=%s method=%s admin=%s",
		c.FullPath(), c.Request.Method, c.GetString("adminEmail"))

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	var input models.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	updated, err := services.GetCustomerService().UpdateCustomer(ctx, customerID, input)
	switch {
	case errors.Is(err, services.ErrBlacklistReasonRequired), errors.Is(err, services.ErrNoFieldsToUpdate):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	case errors.Is(err, services.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		return
	case err != nil:
		log.Printf("[admin.update-customer] ERROR id=%s err=%v", customerID, err)
		c.JSON(http.StatusInternalServerError, models.StoreErrorResponse(c, "Failed to update customer"))
		return
	}

	log.Printf("[admin.update-customer] respond 200 id=%s status=%s", customerID, updated.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer updated successfully", updated))
}
