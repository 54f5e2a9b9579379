package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"automanager-api/models"
	"automanager-api/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupVehicleRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Person{},
		&models.Vehicle{},
		&models.Expense{},
		&models.StoreExpense{},
		&models.Intermediary{},
		&models.VehicleImage{},
	)
	require.NoError(t, err)

	saleService := services.NewSaleService(db, nil)
	statsService := services.NewStatsService(db)
	controller := NewVehicleController(db, saleService, statsService)

	router := gin.New()
	router.GET("/vehicles", controller.GetVehicles)
	router.POST("/vehicles", controller.CreateVehicle)
	router.GET("/vehicles/:id", controller.GetVehicle)
	router.PUT("/vehicles/:id", controller.UpdateVehicle)
	router.DELETE("/vehicles/:id", controller.DeleteVehicle)
	router.POST("/vehicles/:id/sell", controller.SellVehicle)
	router.GET("/vehicles/:id/profit", controller.GetVehicleProfit)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createTestVehicle(t *testing.T, router *gin.Engine, plate string) models.Vehicle {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/vehicles", gin.H{
		"plate": plate,
		"brand": "Honda",
		"model": "Civic",
		"color": "Black",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var vehicle models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicle))
	return vehicle
}

func TestCreateVehicleEndpoint(t *testing.T) {
	t.Run("creates with default status", func(t *testing.T) {
		router, _ := setupVehicleRouter(t)

		vehicle := createTestVehicle(t, router, "ABC-1234")
		assert.Equal(t, models.StatusAwaitingPrep, vehicle.Status)
		assert.NotEmpty(t, vehicle.ID)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		router, _ := setupVehicleRouter(t)

		w := doJSON(t, router, http.MethodPost, "/vehicles", gin.H{"plate": "ABC-1234"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a duplicate plate with 409", func(t *testing.T) {
		router, _ := setupVehicleRouter(t)

		createTestVehicle(t, router, "ABC-1234")

		w := doJSON(t, router, http.MethodPost, "/vehicles", gin.H{
			"plate": "ABC-1234",
			"brand": "Toyota",
			"model": "Corolla",
			"color": "Silver",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects creation directly in sold status", func(t *testing.T) {
		router, _ := setupVehicleRouter(t)

		w := doJSON(t, router, http.MethodPost, "/vehicles", gin.H{
			"plate":  "ABC-1234",
			"brand":  "Honda",
			"model":  "Civic",
			"color":  "Black",
			"status": models.StatusSold,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "sale operation")
	})
}

func TestUpdateVehicleEndpoint(t *testing.T) {
	t.Run("applies a valid status transition", func(t *testing.T) {
		router, _ := setupVehicleRouter(t)
		vehicle := createTestVehicle(t, router, "ABC-1234")

		w := doJSON(t, router, http.MethodPut, "/vehicles/"+vehicle.ID, gin.H{
			"status": models.StatusAvailable,
			"color":  "Red",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated models.Vehicle
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, models.StatusAvailable, updated.Status)
		assert.Equal(t, "Red", updated.Color)
	})

	t.Run("never allows setting sold through update", func(t *testing.T) {
		router, db := setupVehicleRouter(t)
		vehicle := createTestVehicle(t, router, "ABC-1234")

		w := doJSON(t, router, http.MethodPut, "/vehicles/"+vehicle.ID, gin.H{
			"status": models.StatusSold,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid status transition")

		var stored models.Vehicle
		require.NoError(t, db.First(&stored, "id = ?", vehicle.ID).Error)
		assert.Equal(t, models.StatusAwaitingPrep, stored.Status)
	})

	t.Run("rejects status changes on a sold vehicle", func(t *testing.T) {
		router, _ := setupVehicleRouter(t)
		vehicle := createTestVehicle(t, router, "ABC-1234")

		w := doJSON(t, router, http.MethodPost, "/vehicles/"+vehicle.ID+"/sell", gin.H{
			"sale_price": 5000000,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(t, router, http.MethodPut, "/vehicles/"+vehicle.ID, gin.H{
			"status": models.StatusAvailable,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("changing the plate to another vehicle's returns 409", func(t *testing.T) {
		router, _ := setupVehicleRouter(t)
		createTestVehicle(t, router, "ABC-1234")
		other := createTestVehicle(t, router, "XYZ-9876")

		w := doJSON(t, router, http.MethodPut, "/vehicles/"+other.ID, gin.H{
			"plate": "ABC-1234",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown vehicle returns 404", func(t *testing.T) {
		router, _ := setupVehicleRouter(t)

		w := doJSON(t, router, http.MethodPut, "/vehicles/missing", gin.H{"color": "Blue"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSellVehicleEndpoint(t *testing.T) {
	t.Run("sells and returns the sold vehicle", func(t *testing.T) {
		router, _ := setupVehicleRouter(t)
		vehicle := createTestVehicle(t, router, "ABC-1234")

		w := doJSON(t, router, http.MethodPost, "/vehicles/"+vehicle.ID+"/sell", gin.H{
			"sale_price":   6000000,
			"sale_mileage": 42000,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var sold models.Vehicle
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sold))
		assert.Equal(t, models.StatusSold, sold.Status)
		require.NotNil(t, sold.SalePrice)
		assert.Equal(t, int64(6000000), *sold.SalePrice)
	})

	t.Run("rejects a zero sale price", func(t *testing.T) {
		router, _ := setupVehicleRouter(t)
		vehicle := createTestVehicle(t, router, "ABC-1234")

		w := doJSON(t, router, http.MethodPost, "/vehicles/"+vehicle.ID+"/sell", gin.H{
			"sale_price": 0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("selling twice returns 404 for the second buyer", func(t *testing.T) {
		router, _ := setupVehicleRouter(t)
		vehicle := createTestVehicle(t, router, "ABC-1234")

		w := doJSON(t, router, http.MethodPost, "/vehicles/"+vehicle.ID+"/sell", gin.H{
			"sale_price": 5000000,
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodPost, "/vehicles/"+vehicle.ID+"/sell", gin.H{
			"sale_price": 5500000,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("sale with trade-in returns the linked trade-in id", func(t *testing.T) {
		router, db := setupVehicleRouter(t)
		vehicle := createTestVehicle(t, router, "ABC-1234")

		w := doJSON(t, router, http.MethodPost, "/vehicles/"+vehicle.ID+"/sell", gin.H{
			"sale_price": 8000000,
			"trade_in_vehicle": gin.H{
				"plate": "XYZ-9876",
				"brand": "Toyota",
				"model": "Corolla",
				"color": "Silver",
			},
			"trade_in_value": 3000000,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var sold models.Vehicle
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sold))
		require.NotNil(t, sold.TradeInVehicleID)

		var tradeIn models.Vehicle
		require.NoError(t, db.First(&tradeIn, "id = ?", *sold.TradeInVehicleID).Error)
		assert.Equal(t, models.StatusAwaitingPrep, tradeIn.Status)
	})
}

func TestVehicleProfitEndpoint(t *testing.T) {
	router, db := setupVehicleRouter(t)
	vehicle := createTestVehicle(t, router, "ABC-1234")

	w := doJSON(t, router, http.MethodPost, "/vehicles/"+vehicle.ID+"/sell", gin.H{
		"sale_price": 6000000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.Create(&models.Expense{
		ID:          "expense-1",
		VehicleID:   vehicle.ID,
		Description: "Detailing",
		Amount:      500000,
	}).Error)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/vehicles/%s/profit", vehicle.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		VehicleID string `json:"vehicle_id"`
		Profit    int64  `json:"profit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, vehicle.ID, resp.VehicleID)
	assert.Equal(t, int64(5500000), resp.Profit)
}

func TestDeleteVehicleEndpoint(t *testing.T) {
	router, db := setupVehicleRouter(t)
	vehicle := createTestVehicle(t, router, "ABC-1234")

	w := doJSON(t, router, http.MethodDelete, "/vehicles/"+vehicle.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Vehicle{}).Count(&count).Error)
	assert.Zero(t, count)

	w = doJSON(t, router, http.MethodDelete, "/vehicles/"+vehicle.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
