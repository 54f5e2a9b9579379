// File: /models/vehicle.go
package models

import (
	"time"
)

// Vehicle statuses. Sold is terminal and is only reachable through the sale
// operation, never through a direct status update.
const (
	StatusAwaitingPrep  = "AwaitingPrep"
	StatusAvailable     = "Available"
	StatusInMaintenance = "InMaintenance"
	StatusReserved      = "Reserved"
	StatusSold          = "Sold"
)

var VehicleStatuses = []string{
	StatusAwaitingPrep,
	StatusAvailable,
	StatusInMaintenance,
	StatusReserved,
	StatusSold,
}

func IsValidStatus(status string) bool {
	for _, s := range VehicleStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CanTransition reports whether a direct status update from one status to
// another is allowed. All non-terminal statuses are freely inter-transitionable;
// Sold cannot be entered or left this way.
func CanTransition(from, to string) bool {
	if !IsValidStatus(from) || !IsValidStatus(to) {
		return false
	}
	if from == StatusSold || to == StatusSold {
		return false
	}
	return true
}

type Vehicle struct {
	ID               string  `json:"id" gorm:"primaryKey;size:191"`
	Plate            string  `json:"plate" gorm:"uniqueIndex;not null;size:20"`
	Brand            string  `json:"brand" gorm:"not null;size:100"`
	Model            string  `json:"model" gorm:"not null;size:100"`
	Color            string  `json:"color" gorm:"not null;size:50"`
	YearFab          *int    `json:"year_fab"`
	YearModel        *int    `json:"year_model"`
	Condition        *string `json:"condition" gorm:"size:100"`
	Mileage          *int    `json:"mileage"`
	AcquisitionPrice *int64  `json:"acquisition_price"` // internal cost in cents
	Price            *int64  `json:"price"`             // asking price in cents
	Status           string  `json:"status" gorm:"not null;size:30;default:'AwaitingPrep'"`
	OwnerID          *string `json:"owner_id" gorm:"size:191"`

	// Sale fields, populated only when Status = Sold
	BuyerID                *string    `json:"buyer_id" gorm:"size:191"`
	SalePrice              *int64     `json:"sale_price"` // cents
	SaleDate               *time.Time `json:"sale_date"`
	SaleMileage            *int       `json:"sale_mileage"`
	TradeInVehicleID       *string    `json:"trade_in_vehicle_id" gorm:"size:191"`
	TradeInValue           *int64     `json:"trade_in_value"` // cents
	IntermediaryID         *string    `json:"intermediary_id" gorm:"size:191"`
	IntermediaryCommission *int64     `json:"intermediary_commission"` // cents

	// FIPE reference data, opaque enrichment from the price lookup service
	FipeCode  *string `json:"fipe_code" gorm:"size:50"`
	FipePrice *string `json:"fipe_price" gorm:"size:50"`

	EntryDate time.Time `json:"entry_date"`
	Notes     *string   `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner        *Person       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Buyer        *Person       `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	Intermediary *Intermediary `json:"intermediary,omitempty" gorm:"foreignKey:IntermediaryID"`
	Expenses     []Expense     `json:"expenses,omitempty" gorm:"foreignKey:VehicleID"`
	Images       []VehicleImage `json:"images,omitempty" gorm:"foreignKey:VehicleID"`
}
