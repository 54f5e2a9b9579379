// File: /services/sale_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"automanager-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleService executes the compound "mark as sold" operation: sale field
// capture, optional trade-in vehicle intake and optional intermediary
// commission, committed as one database transaction.
type SaleService struct {
	db           *gorm.DB
	emailService *EmailService
}

func NewSaleService(db *gorm.DB, emailService *EmailService) *SaleService {
	return &SaleService{
		db:           db,
		emailService: emailService,
	}
}

type TradeInInput struct {
	Plate            string  `json:"plate"`
	Brand            string  `json:"brand"`
	Model            string  `json:"model"`
	Color            string  `json:"color"`
	YearFab          *int    `json:"year_fab"`
	YearModel        *int    `json:"year_model"`
	Condition        *string `json:"condition"`
	Mileage          *int    `json:"mileage"`
	AcquisitionPrice *int64  `json:"acquisition_price"`
	Price            *int64  `json:"price"`
	FipeCode         *string `json:"fipe_code"`
	FipePrice        *string `json:"fipe_price"`
	OwnerID          *string `json:"owner_id"`
	Notes            *string `json:"notes"`
}

type SaleInput struct {
	SalePrice              int64         `json:"sale_price" binding:"required"`
	BuyerID                *string       `json:"buyer_id"`
	SaleDate               *time.Time    `json:"sale_date"`
	SaleMileage            *int          `json:"sale_mileage"`
	TradeInVehicle         *TradeInInput `json:"trade_in_vehicle"`
	TradeInValue           *int64        `json:"trade_in_value"`
	IntermediaryID         *string       `json:"intermediary_id"`
	IntermediaryCommission *int64        `json:"intermediary_commission"`
}

// SellVehicle transitions the target vehicle to Sold. When a trade-in
// descriptor is present a brand-new vehicle enters inventory in the same
// transaction; if anything fails, neither write survives.
func (s *SaleService) SellVehicle(vehicleID string, input SaleInput) (*models.Vehicle, error) {
	if input.SalePrice <= 0 {
		return nil, &models.InvalidAmountError{
			Field:   "sale_price",
			Message: "Sale price must be greater than zero",
		}
	}

	if input.TradeInVehicle != nil {
		if err := validateTradeIn(input.TradeInVehicle); err != nil {
			return nil, err
		}
	}

	var sold models.Vehicle

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Resource: "Vehicle"}
			}
			return &models.InternalStoreError{Err: err}
		}

		if vehicle.Status == models.StatusSold {
			// Sold is terminal; a concurrent sale that lost the race lands here.
			return &models.NotFoundError{Resource: "Sellable vehicle"}
		}

		saleDate := time.Now()
		if input.SaleDate != nil {
			saleDate = *input.SaleDate
		}

		var tradeInID *string
		if input.TradeInVehicle != nil {
			created, err := s.createTradeIn(tx, input.TradeInVehicle)
			if err != nil {
				return err
			}
			tradeInID = &created.ID
		}

		updates := map[string]interface{}{
			"status":                  models.StatusSold,
			"sale_price":              input.SalePrice,
			"sale_date":               saleDate,
			"buyer_id":                input.BuyerID,
			"sale_mileage":            input.SaleMileage,
			"trade_in_vehicle_id":     tradeInID,
			"trade_in_value":          input.TradeInValue,
			"intermediary_id":         input.IntermediaryID,
			"intermediary_commission": input.IntermediaryCommission,
		}

		// Guard on status so two concurrent sales of the same vehicle cannot
		// both commit: the row is only updated while still unsold.
		res := tx.Model(&models.Vehicle{}).
			Where("id = ? AND status <> ?", vehicleID, models.StatusSold).
			Updates(updates)
		if res.Error != nil {
			return &models.InternalStoreError{Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return &models.NotFoundError{Resource: "Sellable vehicle"}
		}

		if err := tx.First(&sold, "id = ?", vehicleID).Error; err != nil {
			return &models.InternalStoreError{Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyBuyer(&sold)

	return &sold, nil
}

func validateTradeIn(tradeIn *TradeInInput) error {
	required := map[string]string{
		"trade_in_vehicle.plate": tradeIn.Plate,
		"trade_in_vehicle.brand": tradeIn.Brand,
		"trade_in_vehicle.model": tradeIn.Model,
		"trade_in_vehicle.color": tradeIn.Color,
	}
	for field, value := range required {
		if value == "" {
			return &models.ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%s is required", field),
			}
		}
	}
	return nil
}

// createTradeIn inserts the trade-in as a brand-new inventory item. Status is
// always AwaitingPrep regardless of the descriptor: trade-ins never link to
// existing vehicles, so the self-referential link cannot form a cycle.
func (s *SaleService) createTradeIn(tx *gorm.DB, input *TradeInInput) (*models.Vehicle, error) {
	var existing models.Vehicle
	err := tx.First(&existing, "plate = ?", input.Plate).Error
	if err == nil {
		return nil, &models.DuplicateKeyError{
			Field:   "trade_in_vehicle.plate",
			Message: "A vehicle with the trade-in plate is already registered",
		}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &models.InternalStoreError{Err: err}
	}

	tradeIn := models.Vehicle{
		ID:               uuid.New().String(),
		Plate:            input.Plate,
		Brand:            input.Brand,
		Model:            input.Model,
		Color:            input.Color,
		YearFab:          input.YearFab,
		YearModel:        input.YearModel,
		Condition:        input.Condition,
		Mileage:          input.Mileage,
		AcquisitionPrice: input.AcquisitionPrice,
		Price:            input.Price,
		FipeCode:         input.FipeCode,
		FipePrice:        input.FipePrice,
		OwnerID:          input.OwnerID,
		Notes:            input.Notes,
		Status:           models.StatusAwaitingPrep,
		EntryDate:        time.Now(),
	}

	if err := tx.Create(&tradeIn).Error; err != nil {
		return nil, &models.InternalStoreError{Err: err}
	}
	return &tradeIn, nil
}

// notifyBuyer sends a sale receipt when the buyer has an email address.
// Best effort only: a mail failure never affects the committed sale.
func (s *SaleService) notifyBuyer(vehicle *models.Vehicle) {
	if s.emailService == nil || vehicle.BuyerID == nil {
		return
	}

	var buyer models.Person
	if err := s.db.First(&buyer, "id = ?", *vehicle.BuyerID).Error; err != nil {
		return
	}
	if buyer.Email == nil || *buyer.Email == "" {
		return
	}

	go func() {
		if err := s.emailService.SendSaleReceipt(*buyer.Email, buyer.Name, vehicle); err != nil {
			fmt.Printf("Warning: Could not send sale receipt to %s: %v\n", *buyer.Email, err)
		}
	}()
}
