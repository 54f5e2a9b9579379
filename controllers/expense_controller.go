// File: /controllers/expense_controller.go
package controllers

import (
	"net/http"
	"time"

	"automanager-api/models"
	"automanager-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseController struct {
	db *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{db: db}
}

type CreateExpenseRequest struct {
	VehicleID   string     `json:"vehicle_id" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Amount      int64      `json:"amount" binding:"required"`
	Date        *time.Time `json:"date"`
}

func (ec *ExpenseController) GetExpensesByVehicle(c *gin.Context) {
	var expenses []models.Expense
	err := ec.db.Where("vehicle_id = ?", c.Param("id")).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch expenses")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if req.Amount <= 0 {
		utils.SendDomainError(c, &models.InvalidAmountError{
			Field:   "amount",
			Message: "Expense amount must be greater than zero",
		})
		return
	}

	var vehicle models.Vehicle
	if err := ec.db.First(&vehicle, "id = ?", req.VehicleID).Error; err != nil {
		utils.SendDomainError(c, &models.NotFoundError{Resource: "Vehicle"})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	expense := models.Expense{
		ID:          uuid.New().String(),
		VehicleID:   req.VehicleID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
	}

	if err := ec.db.Create(&expense).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	if err := ec.db.Delete(&models.Expense{}, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}
