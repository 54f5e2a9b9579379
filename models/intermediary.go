// File: /models/intermediary.go
package models

import (
	"time"
)

// Intermediary is a third-party broker who may facilitate a sale in exchange
// for a commission. Referenced by vehicles, never owned by them.
type Intermediary struct {
	ID        string     `json:"id" gorm:"primaryKey;size:191"`
	Name      string     `json:"name" gorm:"not null;size:255"`
	Document  string     `json:"document" gorm:"not null;size:30"`
	BirthDate *time.Time `json:"birth_date"`
	PhotoURL  *string    `json:"photo_url" gorm:"size:500"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
