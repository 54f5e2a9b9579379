// File: /controllers/intermediary_controller.go
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

type IntermediaryController struct {
	db *gorm.DB
}

func NewIntermediaryController(db *gorm.DB) *IntermediaryController {
	return &IntermediaryController{db: db}
}

type CreateIntermediaryRequest struct {
	Name      string     `json:"name" binding:"required"`
	Document  string     `json:"document" binding:"required"`
	BirthDate *time.Time `json:"birth_date"`
	PhotoURL  *string    `json:"photo_url"`
}

type UpdateIntermediaryRequest struct {
	Name      *string    `json:"name"`
	Document  *string    `json:"document"`
	BirthDate *time.Time `json:"birth_date"`
	PhotoURL  *string    `json:"photo_url"`
}

func (ic *IntermediaryController) GetIntermediaries(c *gin.Context) {
	var intermediaries []models.Intermediary
	if err := ic.db.Order("name ASC").Find(&intermediaries).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch intermediaries")
		return
	}

	c.JSON(http.StatusOK, intermediaries)
}

func (ic *IntermediaryController) GetIntermediary(c *gin.Context) {
	var intermediary models.Intermediary
	if err := ic.db.First(&intermediary, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendDomainError(c, &models.NotFoundError{Resource: "Intermediary"})
		return
	}

	c.JSON(http.StatusOK, intermediary)
}

func (ic *IntermediaryController) CreateIntermediary(c *gin.Context) {
	var req CreateIntermediaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	intermediary := models.Intermediary{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Document:  req.Document,
		BirthDate: req.BirthDate,
		PhotoURL:  req.PhotoURL,
	}

	if err := ic.db.Create(&intermediary).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create intermediary")
		return
	}

	c.JSON(http.StatusCreated, intermediary)
}

func (ic *IntermediaryController) UpdateIntermediary(c *gin.Context) {
	var intermediary models.Intermediary
	if err := ic.db.First(&intermediary, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendDomainError(c, &models.NotFoundError{Resource: "Intermediary"})
		return
	}

	var req UpdateIntermediaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Document != nil {
		updates["document"] = *req.Document
	}
	if req.BirthDate != nil {
		updates["birth_date"] = *req.BirthDate
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}

	if len(updates) > 0 {
		if err := ic.db.Model(&intermediary).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update intermediary")
			return
		}
	}

	c.JSON(http.StatusOK, intermediary)
}

func (ic *IntermediaryController) DeleteIntermediary(c *gin.Context) {
	if err := ic.db.Delete(&models.Intermediary{}, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete intermediary")
		return
	}

	c.Status(http.StatusNoContent)
}
