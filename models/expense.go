// File: /models/expense.go
package models

import (
	"time"
)

// Expense is a cost attached to a specific vehicle. The vehicle owns its
// expenses: deleting the vehicle deletes them too.
type Expense struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	VehicleID   string    `json:"vehicle_id" gorm:"not null;index;size:191"`
	Description string    `json:"description" gorm:"not null;size:255"`
	Amount      int64     `json:"amount" gorm:"not null"` // cents
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`

	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}
