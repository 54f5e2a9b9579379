// File: /models/store_expense.go
package models

import (
	"time"
)

// Store expense categories, a closed set of fixed operating costs.
const (
	CategoryRent           = "Rent"
	CategoryInternet       = "Internet"
	CategoryWater          = "Water"
	CategoryEnergy         = "Energy"
	CategoryCleaning       = "Cleaning"
	CategoryOfficeSupplies = "OfficeSupplies"
	CategoryPhone          = "Phone"
	CategoryInsurance      = "Insurance"
	CategoryTaxes          = "Taxes"
	CategorySalaries       = "Salaries"
	CategoryOther          = "Other"
)

var StoreExpenseCategories = []string{
	CategoryRent,
	CategoryInternet,
	CategoryWater,
	CategoryEnergy,
	CategoryCleaning,
	CategoryOfficeSupplies,
	CategoryPhone,
	CategoryInsurance,
	CategoryTaxes,
	CategorySalaries,
	CategoryOther,
}

func IsValidStoreExpenseCategory(category string) bool {
	for _, c := range StoreExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// StoreExpense is an operating cost not attributable to any vehicle.
type StoreExpense struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	Description string    `json:"description" gorm:"not null;size:255"`
	Category    string    `json:"category" gorm:"not null;size:50"`
	Amount      int64     `json:"amount" gorm:"not null"` // cents
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}
