package repositories

import (
	"errors"
	"time"

	"automanager-api/models"
	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// VehicleFilters narrows a vehicle listing. Zero values mean no filter.
type VehicleFilters struct {
	Status  string
	OwnerID string
	Search  string
}

// List returns vehicles ordered by entry date, newest first, with owners preloaded.
func (r *VehicleRepository) List(filters VehicleFilters) ([]models.Vehicle, error) {
	query := r.db.Preload("Owner").Order("entry_date DESC")

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.OwnerID != "" {
		query = query.Where("owner_id = ?", filters.OwnerID)
	}
	if filters.Search != "" {
		term := "%" + filters.Search + "%"
		query = query.Where(
			"plate LIKE ? OR model LIKE ? OR brand LIKE ? OR color LIKE ?",
			term, term, term, term,
		)
	}

	var vehicles []models.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		return nil, &models.InternalStoreError{Err: err}
	}
	return vehicles, nil
}

// FindByID loads a vehicle with its owner, buyer and expenses.
func (r *VehicleRepository) FindByID(id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.Preload("Owner").Preload("Buyer").
		Preload("Expenses", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		First(&vehicle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "Vehicle"}
		}
		return nil, &models.InternalStoreError{Err: err}
	}
	return &vehicle, nil
}

// FindByPlate does a case-sensitive exact match on the plate.
func (r *VehicleRepository) FindByPlate(plate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, "plate = ?", plate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "Vehicle"}
		}
		return nil, &models.InternalStoreError{Err: err}
	}
	return &vehicle, nil
}

// Create inserts a new vehicle, rejecting duplicate plates.
func (r *VehicleRepository) Create(vehicle *models.Vehicle) error {
	var existing models.Vehicle
	err := r.db.First(&existing, "plate = ?", vehicle.Plate).Error
	if err == nil {
		return &models.DuplicateKeyError{Field: "plate", Message: "A vehicle with this plate is already registered"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.InternalStoreError{Err: err}
	}

	if vehicle.Status == "" {
		vehicle.Status = models.StatusAwaitingPrep
	}
	if vehicle.EntryDate.IsZero() {
		vehicle.EntryDate = time.Now()
	}

	if err := r.db.Create(vehicle).Error; err != nil {
		return &models.InternalStoreError{Err: err}
	}
	return nil
}

// Update applies a partial field merge to an existing vehicle. A plate change
// is checked against existing plates so a collision surfaces as a duplicate,
// not as a raw unique-index failure.
func (r *VehicleRepository) Update(id string, updates map[string]interface{}) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "Vehicle"}
		}
		return nil, &models.InternalStoreError{Err: err}
	}

	if plate, ok := updates["plate"].(string); ok && plate != vehicle.Plate {
		var existing models.Vehicle
		err := r.db.First(&existing, "plate = ? AND id <> ?", plate, vehicle.ID).Error
		if err == nil {
			return nil, &models.DuplicateKeyError{Field: "plate", Message: "A vehicle with this plate is already registered"}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.InternalStoreError{Err: err}
		}
	}

	if len(updates) > 0 {
		if err := r.db.Model(&vehicle).Updates(updates).Error; err != nil {
			return nil, &models.InternalStoreError{Err: err}
		}
	}
	return &vehicle, nil
}

// Delete hard-deletes a vehicle and everything it owns: expenses and image
// records go with it, in one transaction. Sold vehicles may be deleted too,
// e.g. to correct a data-entry error.
func (r *VehicleRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.Expense{}).Error; err != nil {
			return &models.InternalStoreError{Err: err}
		}
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.VehicleImage{}).Error; err != nil {
			return &models.InternalStoreError{Err: err}
		}
		if err := tx.Delete(&models.Vehicle{}, "id = ?", id).Error; err != nil {
			return &models.InternalStoreError{Err: err}
		}
		return nil
	})
}
