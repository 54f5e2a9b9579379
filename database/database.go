// File: /database/database.go
package database

import (
	"fmt"
	"time"

	"automanager-api/models"
	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.Person{},
		&models.Vehicle{},
		&models.Expense{},
		&models.StoreExpense{},
		&models.Intermediary{},
		&models.VehicleImage{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// MySQL's default utf8mb4 collation compares case-insensitively; plate
	// matching and the plate unique index must be case-sensitive exact.
	if db.Dialector.Name() == "mysql" {
		err := db.Exec("ALTER TABLE vehicles MODIFY plate VARCHAR(20) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL").Error
		if err != nil {
			return fmt.Errorf("failed to set plate collation: %w", err)
		}
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Composite indexes for the dashboard rollup queries

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_vehicles_status_sale_date ON vehicles(status, sale_date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for vehicles: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_vehicles_entry_date ON vehicles(entry_date DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for vehicles entry_date: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_expenses_vehicle_date ON expenses(vehicle_id, date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for expenses: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_store_expenses_date ON store_expenses(date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for store_expenses: %v\n", err)
	}

	return nil
}

// SeedData populates the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	var peopleCount int64
	db.Model(&models.Person{}).Count(&peopleCount)

	if peopleCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	owner1 := models.Person{
		ID:       uuid.New().String(),
		Name:     "João Silva",
		Email:    strPtr("joao@email.com"),
		Phone:    "11999998888",
		Document: strPtr("123.456.789-00"),
		Type:     models.PersonTypeOwner,
	}
	owner2 := models.Person{
		ID:       uuid.New().String(),
		Name:     "Maria Oliveira",
		Email:    strPtr("maria@email.com"),
		Phone:    "11988887777",
		Document: strPtr("987.654.321-99"),
		Type:     models.PersonTypeOwner,
	}
	client := models.Person{
		ID:       uuid.New().String(),
		Name:     "Carlos Santos",
		Email:    strPtr("carlos@email.com"),
		Phone:    "11977776666",
		Document: strPtr("111.222.333-44"),
		Type:     models.PersonTypeClient,
	}

	for _, person := range []*models.Person{&owner1, &owner2, &client} {
		if err := db.Create(person).Error; err != nil {
			fmt.Printf("Warning: Could not create seed person %s: %v\n", person.Name, err)
		}
	}

	vehicle1 := models.Vehicle{
		ID:        uuid.New().String(),
		Plate:     "ABC-1234",
		Brand:     "Honda",
		Model:     "Civic EX",
		Color:     "Prata",
		YearFab:   intPtr(2020),
		YearModel: intPtr(2020),
		Price:     int64Ptr(8500000),
		Status:    models.StatusAvailable,
		OwnerID:   &owner1.ID,
		EntryDate: time.Now(),
		Notes:     strPtr("Carro em ótimo estado, único dono."),
	}
	vehicle2 := models.Vehicle{
		ID:        uuid.New().String(),
		Plate:     "XYZ-9876",
		Brand:     "Toyota",
		Model:     "Corolla XEi",
		Color:     "Preto",
		YearFab:   intPtr(2021),
		YearModel: intPtr(2021),
		Price:     int64Ptr(11000000),
		Status:    models.StatusAwaitingPrep,
		OwnerID:   &owner2.ID,
		EntryDate: time.Now(),
		Notes:     strPtr("Precisa de polimento."),
	}

	for _, vehicle := range []*models.Vehicle{&vehicle1, &vehicle2} {
		if err := db.Create(vehicle).Error; err != nil {
			fmt.Printf("Warning: Could not create seed vehicle %s: %v\n", vehicle.Plate, err)
		}
	}

	expenses := []models.Expense{
		{
			ID:          uuid.New().String(),
			VehicleID:   vehicle1.ID,
			Description: "Lavagem completa",
			Amount:      15000,
			Date:        time.Now(),
		},
		{
			ID:          uuid.New().String(),
			VehicleID:   vehicle1.ID,
			Description: "Troca de óleo",
			Amount:      35000,
			Date:        time.Now(),
		},
	}

	for _, expense := range expenses {
		if err := db.Create(&expense).Error; err != nil {
			fmt.Printf("Warning: Could not create seed expense %s: %v\n", expense.Description, err)
		}
	}

	fmt.Println("Database seeded with sample people, vehicles and expenses")
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }
