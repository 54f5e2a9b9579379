package services

import (
	"errors"
	"testing"
	"time"

	"automanager-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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

	return db
}

func seedVehicle(t *testing.T, db *gorm.DB, plate, status string, price *int64) *models.Vehicle {
	t.Helper()

	vehicle := &models.Vehicle{
		ID:        uuid.New().String(),
		Plate:     plate,
		Brand:     "Honda",
		Model:     "Civic",
		Color:     "Black",
		Status:    status,
		Price:     price,
		EntryDate: time.Now(),
	}
	require.NoError(t, db.Create(vehicle).Error)
	return vehicle
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func TestSellVehicle(t *testing.T) {
	t.Run("marks the vehicle sold and records sale fields", func(t *testing.T) {
		db := setupServiceTestDB(t)
		service := NewSaleService(db, nil)

		vehicle := seedVehicle(t, db, "ABC-1234", models.StatusAvailable, int64Ptr(6000000))

		saleDate := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
		mileage := 42000
		sold, err := service.SellVehicle(vehicle.ID, SaleInput{
			SalePrice:   6000000,
			SaleDate:    &saleDate,
			SaleMileage: &mileage,
		})
		require.NoError(t, err)

		assert.Equal(t, models.StatusSold, sold.Status)
		require.NotNil(t, sold.SalePrice)
		assert.Equal(t, int64(6000000), *sold.SalePrice)
		require.NotNil(t, sold.SaleDate)
		assert.True(t, sold.SaleDate.Equal(saleDate))
		require.NotNil(t, sold.SaleMileage)
		assert.Equal(t, 42000, *sold.SaleMileage)
	})

	t.Run("rejects a non-positive sale price without touching the vehicle", func(t *testing.T) {
		db := setupServiceTestDB(t)
		service := NewSaleService(db, nil)

		vehicle := seedVehicle(t, db, "ABC-1234", models.StatusAvailable, nil)

		_, err := service.SellVehicle(vehicle.ID, SaleInput{SalePrice: 0})
		var amountErr *models.InvalidAmountError
		require.ErrorAs(t, err, &amountErr)
		assert.Equal(t, "sale_price", amountErr.Field)

		var stored models.Vehicle
		require.NoError(t, db.First(&stored, "id = ?", vehicle.ID).Error)
		assert.Equal(t, models.StatusAvailable, stored.Status)
		assert.Nil(t, stored.SalePrice)
	})

	t.Run("returns not found for an unknown vehicle", func(t *testing.T) {
		db := setupServiceTestDB(t)
		service := NewSaleService(db, nil)

		_, err := service.SellVehicle(uuid.New().String(), SaleInput{SalePrice: 100})
		var notFound *models.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("refuses to sell an already sold vehicle", func(t *testing.T) {
		db := setupServiceTestDB(t)
		service := NewSaleService(db, nil)

		vehicle := seedVehicle(t, db, "ABC-1234", models.StatusAvailable, nil)

		first, err := service.SellVehicle(vehicle.ID, SaleInput{SalePrice: 5000000})
		require.NoError(t, err)
		assert.Equal(t, models.StatusSold, first.Status)

		_, err = service.SellVehicle(vehicle.ID, SaleInput{SalePrice: 5500000})
		var notFound *models.NotFoundError
		require.ErrorAs(t, err, &notFound)

		// The original sale record must survive untouched.
		var stored models.Vehicle
		require.NoError(t, db.First(&stored, "id = ?", vehicle.ID).Error)
		require.NotNil(t, stored.SalePrice)
		assert.Equal(t, int64(5000000), *stored.SalePrice)
	})

	t.Run("defaults the sale date to now when omitted", func(t *testing.T) {
		db := setupServiceTestDB(t)
		service := NewSaleService(db, nil)

		vehicle := seedVehicle(t, db, "ABC-1234", models.StatusAvailable, nil)

		before := time.Now().Add(-time.Minute)
		sold, err := service.SellVehicle(vehicle.ID, SaleInput{SalePrice: 100})
		require.NoError(t, err)
		require.NotNil(t, sold.SaleDate)
		assert.True(t, sold.SaleDate.After(before))
	})
}

func TestSellVehicleWithTradeIn(t *testing.T) {
	t.Run("registers the trade-in as a new vehicle awaiting prep", func(t *testing.T) {
		db := setupServiceTestDB(t)
		service := NewSaleService(db, nil)

		vehicle := seedVehicle(t, db, "ABC-1234", models.StatusAvailable, nil)

		sold, err := service.SellVehicle(vehicle.ID, SaleInput{
			SalePrice: 8000000,
			TradeInVehicle: &TradeInInput{
				Plate:            "XYZ-9876",
				Brand:            "Toyota",
				Model:            "Corolla",
				Color:            "Silver",
				AcquisitionPrice: int64Ptr(3000000),
				Notes:            strPtr("Accepted as partial payment"),
			},
			TradeInValue: int64Ptr(3000000),
		})
		require.NoError(t, err)

		require.NotNil(t, sold.TradeInVehicleID)
		require.NotNil(t, sold.TradeInValue)
		assert.Equal(t, int64(3000000), *sold.TradeInValue)

		var tradeIn models.Vehicle
		require.NoError(t, db.First(&tradeIn, "id = ?", *sold.TradeInVehicleID).Error)
		assert.Equal(t, "XYZ-9876", tradeIn.Plate)
		assert.Equal(t, models.StatusAwaitingPrep, tradeIn.Status)
		assert.Nil(t, tradeIn.SalePrice)
	})

	t.Run("rejects a trade-in missing required fields", func(t *testing.T) {
		db := setupServiceTestDB(t)
		service := NewSaleService(db, nil)

		vehicle := seedVehicle(t, db, "ABC-1234", models.StatusAvailable, nil)

		_, err := service.SellVehicle(vehicle.ID, SaleInput{
			SalePrice: 100,
			TradeInVehicle: &TradeInInput{
				Plate: "XYZ-9876",
				Brand: "Toyota",
			},
		})
		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("rolls back the entire sale when the trade-in plate already exists", func(t *testing.T) {
		db := setupServiceTestDB(t)
		service := NewSaleService(db, nil)

		vehicle := seedVehicle(t, db, "ABC-1234", models.StatusAvailable, nil)
		seedVehicle(t, db, "XYZ-9876", models.StatusAvailable, nil)

		_, err := service.SellVehicle(vehicle.ID, SaleInput{
			SalePrice: 8000000,
			TradeInVehicle: &TradeInInput{
				Plate: "XYZ-9876",
				Brand: "Toyota",
				Model: "Corolla",
				Color: "Silver",
			},
		})
		var dupErr *models.DuplicateKeyError
		require.ErrorAs(t, err, &dupErr)

		// The target vehicle must still be sellable and no third vehicle created.
		var stored models.Vehicle
		require.NoError(t, db.First(&stored, "id = ?", vehicle.ID).Error)
		assert.Equal(t, models.StatusAvailable, stored.Status)
		assert.Nil(t, stored.SalePrice)

		var count int64
		require.NoError(t, db.Model(&models.Vehicle{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})
}

func TestSellVehicleWithIntermediary(t *testing.T) {
	db := setupServiceTestDB(t)
	service := NewSaleService(db, nil)

	intermediary := models.Intermediary{
		ID:       uuid.New().String(),
		Name:     "Pedro Almeida",
		Document: "12345678900",
	}
	require.NoError(t, db.Create(&intermediary).Error)

	vehicle := seedVehicle(t, db, "ABC-1234", models.StatusAvailable, nil)

	sold, err := service.SellVehicle(vehicle.ID, SaleInput{
		SalePrice:              7000000,
		IntermediaryID:         &intermediary.ID,
		IntermediaryCommission: int64Ptr(200000),
	})
	require.NoError(t, err)

	require.NotNil(t, sold.IntermediaryID)
	assert.Equal(t, intermediary.ID, *sold.IntermediaryID)
	require.NotNil(t, sold.IntermediaryCommission)
	assert.Equal(t, int64(200000), *sold.IntermediaryCommission)
}

func TestValidateTradeIn(t *testing.T) {
	err := validateTradeIn(&TradeInInput{Plate: "A", Brand: "B", Model: "C", Color: "D"})
	assert.NoError(t, err)

	err = validateTradeIn(&TradeInInput{Plate: "A", Brand: "B", Model: "C"})
	var validationErr *models.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "trade_in_vehicle.color", validationErr.Field)
}
