// File: /controllers/image_controller.go
package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"automanager-api/models"
	"automanager-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxImageSize = 10 << 20 // 10 MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type ImageController struct {
	db        *gorm.DB
	uploadDir string
}

func NewImageController(db *gorm.DB, uploadDir string) *ImageController {
	return &ImageController{db: db, uploadDir: uploadDir}
}

func (ic *ImageController) GetVehicleImages(c *gin.Context) {
	var images []models.VehicleImage
	err := ic.db.Where("vehicle_id = ?", c.Param("id")).
		Order("created_at DESC").
		Find(&images).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch images")
		return
	}

	c.JSON(http.StatusOK, images)
}

func (ic *ImageController) UploadVehicleImages(c *gin.Context) {
	vehicleID := c.Param("id")

	var vehicle models.Vehicle
	if err := ic.db.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		utils.SendDomainError(c, &models.NotFoundError{Resource: "Vehicle"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.SendValidationError(c, "Invalid multipart form")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.SendValidationError(c, "No images uploaded")
		return
	}

	var results []models.VehicleImage
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExts[ext] {
			utils.SendValidationError(c, "Only jpg, png, gif and webp images are allowed")
			return
		}
		if file.Size > maxImageSize {
			utils.SendValidationError(c, "Image exceeds the 10MB size limit")
			return
		}

		storedName := uuid.New().String() + ext
		dst := filepath.Join(ic.uploadDir, storedName)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to store image")
			return
		}

		image := models.VehicleImage{
			ID:        uuid.New().String(),
			VehicleID: vehicleID,
			FileName:  file.Filename,
			FilePath:  "/uploads/" + storedName,
		}
		if err := ic.db.Create(&image).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to save image record")
			return
		}
		results = append(results, image)
	}

	c.JSON(http.StatusCreated, results)
}

func (ic *ImageController) DeleteImage(c *gin.Context) {
	var image models.VehicleImage
	if err := ic.db.First(&image, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendDomainError(c, &models.NotFoundError{Resource: "Image"})
		return
	}

	if err := ic.db.Delete(&image).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete image")
		return
	}

	ic.removeFile(image.FilePath)
	c.Status(http.StatusNoContent)
}

func (ic *ImageController) DeleteAllVehicleImages(c *gin.Context) {
	var images []models.VehicleImage
	if err := ic.db.Where("vehicle_id = ?", c.Param("id")).Find(&images).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch images")
		return
	}

	if err := ic.db.Where("vehicle_id = ?", c.Param("id")).Delete(&models.VehicleImage{}).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete images")
		return
	}

	for _, image := range images {
		ic.removeFile(image.FilePath)
	}

	c.Status(http.StatusNoContent)
}

// ServeImage streams an uploaded file. The filename is flattened with
// path.Base so no traversal outside the upload dir is possible.
func (ic *ImageController) ServeImage(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	fullPath := filepath.Join(ic.uploadDir, filename)

	if _, err := os.Stat(fullPath); err != nil {
		utils.SendDomainError(c, &models.NotFoundError{Resource: "File"})
		return
	}

	c.File(fullPath)
}

func (ic *ImageController) removeFile(filePath string) {
	filename := filepath.Base(filePath)
	_ = os.Remove(filepath.Join(ic.uploadDir, filename))
}
