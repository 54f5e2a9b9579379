// File: /controllers/store_expense_controller.go
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

type StoreExpenseController struct {
	db *gorm.DB
}

func NewStoreExpenseController(db *gorm.DB) *StoreExpenseController {
	return &StoreExpenseController{db: db}
}

type CreateStoreExpenseRequest struct {
	Description string     `json:"description" binding:"required"`
	Category    string     `json:"category" binding:"required"`
	Amount      int64      `json:"amount" binding:"required"`
	Date        *time.Time `json:"date"`
}

func (sc *StoreExpenseController) GetStoreExpenses(c *gin.Context) {
	var expenses []models.StoreExpense
	if err := sc.db.Order("date DESC").Find(&expenses).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch store expenses")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

func (sc *StoreExpenseController) CreateStoreExpense(c *gin.Context) {
	var req CreateStoreExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !models.IsValidStoreExpenseCategory(req.Category) {
		utils.SendDomainError(c, &models.ValidationError{Field: "category", Message: "Unknown store expense category"})
		return
	}
	if req.Amount <= 0 {
		utils.SendDomainError(c, &models.InvalidAmountError{
			Field:   "amount",
			Message: "Expense amount must be greater than zero",
		})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	expense := models.StoreExpense{
		ID:          uuid.New().String(),
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
	}

	if err := sc.db.Create(&expense).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create store expense")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func (sc *StoreExpenseController) DeleteStoreExpense(c *gin.Context) {
	if err := sc.db.Delete(&models.StoreExpense{}, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete store expense")
		return
	}

	c.Status(http.StatusNoContent)
}
