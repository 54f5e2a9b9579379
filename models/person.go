// File: /models/person.go
package models

import (
	"time"
)

const (
	PersonTypeOwner  = "Owner"
	PersonTypeClient = "Client"
)

var PersonTypes = []string{PersonTypeOwner, PersonTypeClient}

func IsValidPersonType(personType string) bool {
	for _, t := range PersonTypes {
		if t == personType {
			return true
		}
	}
	return false
}

type Person struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Email     *string   `json:"email" gorm:"size:255"`
	Phone     string    `json:"phone" gorm:"not null;size:30"`
	Document  *string   `json:"document" gorm:"size:30"` // CPF/CNPJ
	Type      string    `json:"type" gorm:"not null;size:20"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vehicles []Vehicle `json:"vehicles,omitempty" gorm:"foreignKey:OwnerID"`
}
