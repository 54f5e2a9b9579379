// File: /models/vehicle_image.go
package models

import (
	"time"
)

type VehicleImage struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	VehicleID string    `json:"vehicle_id" gorm:"not null;index;size:191"`
	FileName  string    `json:"file_name" gorm:"not null;size:255"`
	FilePath  string    `json:"file_path" gorm:"not null;size:500"`
	CreatedAt time.Time `json:"created_at"`
}
