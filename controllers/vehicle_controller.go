// File: /controllers/vehicle_controller.go
package controllers

import (
	"net/http"
	"time"

	"automanager-api/models"
	"automanager-api/repositories"
	"automanager-api/services"
	"automanager-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleController struct {
	db           *gorm.DB
	repo         *repositories.VehicleRepository
	saleService  *services.SaleService
	statsService *services.StatsService
}

func NewVehicleController(db *gorm.DB, saleService *services.SaleService, statsService *services.StatsService) *VehicleController {
	return &VehicleController{
		db:           db,
		repo:         repositories.NewVehicleRepository(db),
		saleService:  saleService,
		statsService: statsService,
	}
}

type CreateVehicleRequest struct {
	Plate            string  `json:"plate" binding:"required"`
	Brand            string  `json:"brand" binding:"required"`
	Model            string  `json:"model" binding:"required"`
	Color            string  `json:"color" binding:"required"`
	YearFab          *int    `json:"year_fab"`
	YearModel        *int    `json:"year_model"`
	Condition        *string `json:"condition"`
	Mileage          *int    `json:"mileage"`
	AcquisitionPrice *int64  `json:"acquisition_price"`
	Price            *int64  `json:"price"`
	Status           string  `json:"status"`
	OwnerID          *string `json:"owner_id"`
	FipeCode         *string `json:"fipe_code"`
	FipePrice        *string `json:"fipe_price"`
	Notes            *string `json:"notes"`
}

type UpdateVehicleRequest struct {
	Plate            *string `json:"plate"`
	Brand            *string `json:"brand"`
	Model            *string `json:"model"`
	Color            *string `json:"color"`
	YearFab          *int    `json:"year_fab"`
	YearModel        *int    `json:"year_model"`
	Condition        *string `json:"condition"`
	Mileage          *int    `json:"mileage"`
	AcquisitionPrice *int64  `json:"acquisition_price"`
	Price            *int64  `json:"price"`
	Status           *string `json:"status"`
	OwnerID          *string `json:"owner_id"`
	FipeCode         *string `json:"fipe_code"`
	FipePrice        *string `json:"fipe_price"`
	Notes            *string `json:"notes"`
}

func (vc *VehicleController) GetVehicles(c *gin.Context) {
	filters := repositories.VehicleFilters{
		Status:  c.Query("status"),
		OwnerID: c.Query("owner_id"),
		Search:  c.Query("search"),
	}

	vehicles, err := vc.repo.List(filters)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

func (vc *VehicleController) GetVehicle(c *gin.Context) {
	vehicle, err := vc.repo.FindByID(c.Param("id"))
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidPlate(req.Plate) {
		utils.SendDomainError(c, &models.ValidationError{Field: "plate", Message: "Invalid plate"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusAwaitingPrep
	}
	if !models.IsValidStatus(status) {
		utils.SendDomainError(c, &models.ValidationError{Field: "status", Message: "Unknown vehicle status"})
		return
	}
	if status == models.StatusSold {
		utils.SendDomainError(c, &models.InvalidTransitionError{
			Message: "A vehicle cannot be created as sold; use the sale operation",
		})
		return
	}

	vehicle := models.Vehicle{
		ID:               uuid.New().String(),
		Plate:            req.Plate,
		Brand:            req.Brand,
		Model:            req.Model,
		Color:            req.Color,
		YearFab:          req.YearFab,
		YearModel:        req.YearModel,
		Condition:        req.Condition,
		Mileage:          req.Mileage,
		AcquisitionPrice: req.AcquisitionPrice,
		Price:            req.Price,
		Status:           status,
		OwnerID:          req.OwnerID,
		FipeCode:         req.FipeCode,
		FipePrice:        req.FipePrice,
		Notes:            req.Notes,
		EntryDate:        time.Now(),
	}

	if err := vc.repo.Create(&vehicle); err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (vc *VehicleController) UpdateVehicle(c *gin.Context) {
	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	current, err := vc.repo.FindByID(c.Param("id"))
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Plate != nil {
		if !utils.IsValidPlate(*req.Plate) {
			utils.SendDomainError(c, &models.ValidationError{Field: "plate", Message: "Invalid plate"})
			return
		}
		updates["plate"] = *req.Plate
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.YearFab != nil {
		updates["year_fab"] = *req.YearFab
	}
	if req.YearModel != nil {
		updates["year_model"] = *req.YearModel
	}
	if req.Condition != nil {
		updates["condition"] = *req.Condition
	}
	if req.Mileage != nil {
		updates["mileage"] = *req.Mileage
	}
	if req.AcquisitionPrice != nil {
		updates["acquisition_price"] = *req.AcquisitionPrice
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.OwnerID != nil {
		updates["owner_id"] = *req.OwnerID
	}
	if req.FipeCode != nil {
		updates["fipe_code"] = *req.FipeCode
	}
	if req.FipePrice != nil {
		updates["fipe_price"] = *req.FipePrice
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if req.Status != nil {
		if !models.IsValidStatus(*req.Status) {
			utils.SendDomainError(c, &models.ValidationError{Field: "status", Message: "Unknown vehicle status"})
			return
		}
		if !models.CanTransition(current.Status, *req.Status) {
			utils.SendDomainError(c, &models.InvalidTransitionError{
				Message: "Sold status can only be set through the sale operation",
			})
			return
		}
		if *req.Status != current.Status {
			updates["status"] = *req.Status
		}
	}

	updated, err := vc.repo.Update(current.ID, updates)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (vc *VehicleController) DeleteVehicle(c *gin.Context) {
	if _, err := vc.repo.FindByID(c.Param("id")); err != nil {
		utils.SendDomainError(c, err)
		return
	}

	if err := vc.repo.Delete(c.Param("id")); err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SellVehicle is the only path into the Sold status.
func (vc *VehicleController) SellVehicle(c *gin.Context) {
	var input services.SaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	vehicle, err := vc.saleService.SellVehicle(c.Param("id"), input)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// GetVehicleProfit exposes the per-vehicle profit figure, estimated from the
// asking price while the vehicle is unsold.
func (vc *VehicleController) GetVehicleProfit(c *gin.Context) {
	profit, err := vc.statsService.VehicleProfit(c.Param("id"))
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle_id": c.Param("id"), "profit": profit})
}
