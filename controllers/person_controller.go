// File: /controllers/person_controller.go
package controllers

import (
	"net/http"

	"automanager-api/models"
	"automanager-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PersonController struct {
	db *gorm.DB
}

func NewPersonController(db *gorm.DB) *PersonController {
	return &PersonController{db: db}
}

type CreatePersonRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    *string `json:"email"`
	Phone    string  `json:"phone" binding:"required"`
	Document *string `json:"document"`
	Type     string  `json:"type" binding:"required"`
}

type UpdatePersonRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Document *string `json:"document"`
	Type     *string `json:"type"`
}

func (pc *PersonController) GetPeople(c *gin.Context) {
	query := pc.db.Order("name ASC")

	if personType := c.Query("type"); personType != "" {
		query = query.Where("type = ?", personType)
	}
	if search := c.Query("search"); search != "" {
		term := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR document LIKE ?", term, term, term)
	}

	var people []models.Person
	if err := query.Find(&people).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch people")
		return
	}

	c.JSON(http.StatusOK, people)
}

func (pc *PersonController) GetPerson(c *gin.Context) {
	var person models.Person
	if err := pc.db.First(&person, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendDomainError(c, &models.NotFoundError{Resource: "Person"})
		return
	}

	c.JSON(http.StatusOK, person)
}

// SearchByDocument finds a person by CPF/CNPJ regardless of punctuation.
// Returns null rather than 404 so the caller can fall through to creation.
func (pc *PersonController) SearchByDocument(c *gin.Context) {
	document := utils.NormalizeDocument(c.Query("document"))
	if len(document) < 3 {
		c.JSON(http.StatusOK, nil)
		return
	}

	var people []models.Person
	if err := pc.db.Where("document IS NOT NULL").Find(&people).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to search people")
		return
	}

	for i := range people {
		if people[i].Document != nil && utils.NormalizeDocument(*people[i].Document) == document {
			c.JSON(http.StatusOK, people[i])
			return
		}
	}

	c.JSON(http.StatusOK, nil)
}

func (pc *PersonController) CreatePerson(c *gin.Context) {
	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !models.IsValidPersonType(req.Type) {
		utils.SendDomainError(c, &models.ValidationError{Field: "type", Message: "Unknown person type"})
		return
	}
	if req.Email != nil && *req.Email != "" && !utils.IsValidEmail(*req.Email) {
		utils.SendDomainError(c, &models.ValidationError{Field: "email", Message: "Invalid email address"})
		return
	}

	person := models.Person{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Document: req.Document,
		Type:     req.Type,
	}

	if err := pc.db.Create(&person).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create person")
		return
	}

	c.JSON(http.StatusCreated, person)
}

func (pc *PersonController) UpdatePerson(c *gin.Context) {
	var person models.Person
	if err := pc.db.First(&person, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendDomainError(c, &models.NotFoundError{Resource: "Person"})
		return
	}

	var req UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		if *req.Email != "" && !utils.IsValidEmail(*req.Email) {
			utils.SendDomainError(c, &models.ValidationError{Field: "email", Message: "Invalid email address"})
			return
		}
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Document != nil {
		updates["document"] = *req.Document
	}
	if req.Type != nil {
		if !models.IsValidPersonType(*req.Type) {
			utils.SendDomainError(c, &models.ValidationError{Field: "type", Message: "Unknown person type"})
			return
		}
		updates["type"] = *req.Type
	}

	if len(updates) > 0 {
		if err := pc.db.Model(&person).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update person")
			return
		}
	}

	c.JSON(http.StatusOK, person)
}

func (pc *PersonController) DeletePerson(c *gin.Context) {
	if err := pc.db.Delete(&models.Person{}, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete person")
		return
	}

	c.Status(http.StatusNoContent)
}
