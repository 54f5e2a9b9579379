// File: /controllers/fipe_controller.go
package controllers

import (
	"errors"
	"net/http"

	"automanager-api/models"
	"automanager-api/services"
	"automanager-api/utils"
	"github.com/gin-gonic/gin"
)

// FipeController proxies the external FIPE price table. Lookup results are an
// enrichment only; when the upstream is unreachable the caller gets a 502 and
// nothing else in the application is affected.
type FipeController struct {
	fipeService *services.FipeService
}

func NewFipeController(fipeService *services.FipeService) *FipeController {
	return &FipeController{fipeService: fipeService}
}

func (fc *FipeController) GetBrands(c *gin.Context) {
	vehicleType, ok := fc.vehicleType(c)
	if !ok {
		return
	}

	brands, err := fc.fipeService.GetBrands(vehicleType)
	if err != nil {
		fc.sendFipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, brands)
}

func (fc *FipeController) GetModels(c *gin.Context) {
	vehicleType, ok := fc.vehicleType(c)
	if !ok {
		return
	}

	fipeModels, err := fc.fipeService.GetModels(vehicleType, c.Param("brandId"))
	if err != nil {
		fc.sendFipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, fipeModels)
}

func (fc *FipeController) GetYears(c *gin.Context) {
	vehicleType, ok := fc.vehicleType(c)
	if !ok {
		return
	}

	years, err := fc.fipeService.GetYears(vehicleType, c.Param("brandId"), c.Param("modelId"))
	if err != nil {
		fc.sendFipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, years)
}

func (fc *FipeController) GetPrice(c *gin.Context) {
	vehicleType, ok := fc.vehicleType(c)
	if !ok {
		return
	}

	price, err := fc.fipeService.GetPrice(vehicleType, c.Param("brandId"), c.Param("modelId"), c.Param("yearId"))
	if err != nil {
		fc.sendFipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, price)
}

func (fc *FipeController) vehicleType(c *gin.Context) (string, bool) {
	vehicleType := c.Param("vehicleType")
	if !services.IsValidFipeVehicleType(vehicleType) {
		utils.SendDomainError(c, &models.ValidationError{
			Field:   "vehicleType",
			Message: "Vehicle type must be cars, motorcycles or trucks",
		})
		return "", false
	}
	return vehicleType, true
}

func (fc *FipeController) sendFipeError(c *gin.Context, err error) {
	var unavailable *services.ErrPriceReferenceUnavailable
	if errors.As(err, &unavailable) {
		utils.SendError(c, http.StatusBadGateway, "Price reference service unavailable")
		return
	}
	utils.SendDomainError(c, err)
}
