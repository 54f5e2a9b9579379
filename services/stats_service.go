// File: /services/stats_service.go
package services

import (
	"errors"
	"time"

	"automanager-api/models"
	"gorm.io/gorm"
)

// StatsService is the read side of the dealership's finances. It recomputes
// every figure from the store on each call and never mutates anything.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type DashboardStats struct {
	TotalVehicles         int64 `json:"total_vehicles"`
	TotalAvailable        int64 `json:"total_available"`
	TotalSold             int64 `json:"total_sold"`
	TotalExpenses         int64 `json:"total_expenses"`
	TotalVehicleExpenses  int64 `json:"total_vehicle_expenses"`
	TotalStoreExpenses    int64 `json:"total_store_expenses"`
	CurrentMonthSales     int64 `json:"current_month_sales"`
	CurrentMonthRevenue   int64 `json:"current_month_revenue"`
	PreviousMonthSales    int64 `json:"previous_month_sales"`
	PreviousMonthRevenue  int64 `json:"previous_month_revenue"`
	CurrentMonthExpenses  int64 `json:"current_month_expenses"`
	PreviousMonthExpenses int64 `json:"previous_month_expenses"`
}

// monthRange returns [start of target month, start of next month) relative to
// the wall clock. Offset 0 is the current month, -1 the previous one.
func monthRange(offset int) (time.Time, time.Time) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month()+time.Month(offset)+1, 1, 0, 0, 0, 0, now.Location())
	return start, end
}

// VehicleProfit returns the vehicle's profit in cents: sale price (or asking
// price while unsold, as an estimate) minus the sum of its expenses.
func (s *StatsService) VehicleProfit(vehicleID string) (int64, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &models.NotFoundError{Resource: "Vehicle"}
		}
		return 0, &models.InternalStoreError{Err: err}
	}

	var revenue int64
	if vehicle.Status == models.StatusSold && vehicle.SalePrice != nil {
		revenue = *vehicle.SalePrice
	} else if vehicle.Price != nil {
		revenue = *vehicle.Price
	}

	var spent int64
	err := s.db.Model(&models.Expense{}).
		Where("vehicle_id = ?", vehicleID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&spent).Error
	if err != nil {
		return 0, &models.InternalStoreError{Err: err}
	}

	return revenue - spent, nil
}

// MonthlySales returns the count and summed sale price of vehicles sold in the
// calendar month at the given offset.
func (s *StatsService) MonthlySales(offset int) (count int64, revenue int64, err error) {
	start, end := monthRange(offset)

	err = s.db.Model(&models.Vehicle{}).
		Where("status = ? AND sale_date >= ? AND sale_date < ?", models.StatusSold, start, end).
		Count(&count).Error
	if err != nil {
		return 0, 0, &models.InternalStoreError{Err: err}
	}

	err = s.db.Model(&models.Vehicle{}).
		Where("status = ? AND sale_date >= ? AND sale_date < ?", models.StatusSold, start, end).
		Select("COALESCE(SUM(sale_price), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, 0, &models.InternalStoreError{Err: err}
	}
	return count, revenue, nil
}

// MonthlyExpenses sums vehicle and store expenses dated in the calendar month
// at the given offset, regardless of which vehicle they belong to.
func (s *StatsService) MonthlyExpenses(offset int) (int64, error) {
	start, end := monthRange(offset)

	var vehicleExpenses int64
	err := s.db.Model(&models.Expense{}).
		Where("date >= ? AND date < ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&vehicleExpenses).Error
	if err != nil {
		return 0, &models.InternalStoreError{Err: err}
	}

	var storeExpenses int64
	err = s.db.Model(&models.StoreExpense{}).
		Where("date >= ? AND date < ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&storeExpenses).Error
	if err != nil {
		return 0, &models.InternalStoreError{Err: err}
	}

	return vehicleExpenses + storeExpenses, nil
}

// NetProfit is all-time revenue (summed sale prices) minus all-time expenses.
// Acquisition prices and trade-in values are informational and intentionally
// not netted out; only explicit expense rows count.
func (s *StatsService) NetProfit() (int64, error) {
	var revenue int64
	err := s.db.Model(&models.Vehicle{}).
		Where("status = ?", models.StatusSold).
		Select("COALESCE(SUM(sale_price), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, &models.InternalStoreError{Err: err}
	}

	stats, err := s.totalExpenses()
	if err != nil {
		return 0, err
	}
	return revenue - stats, nil
}

func (s *StatsService) totalExpenses() (int64, error) {
	var vehicleExpenses int64
	err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&vehicleExpenses).Error
	if err != nil {
		return 0, &models.InternalStoreError{Err: err}
	}

	var storeExpenses int64
	err = s.db.Model(&models.StoreExpense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&storeExpenses).Error
	if err != nil {
		return 0, &models.InternalStoreError{Err: err}
	}
	return vehicleExpenses + storeExpenses, nil
}

// Dashboard recomputes the full dashboard snapshot from current store contents.
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.Vehicle{}).Count(&stats.TotalVehicles).Error; err != nil {
		return nil, &models.InternalStoreError{Err: err}
	}
	if err := s.db.Model(&models.Vehicle{}).Where("status = ?", models.StatusAvailable).Count(&stats.TotalAvailable).Error; err != nil {
		return nil, &models.InternalStoreError{Err: err}
	}
	if err := s.db.Model(&models.Vehicle{}).Where("status = ?", models.StatusSold).Count(&stats.TotalSold).Error; err != nil {
		return nil, &models.InternalStoreError{Err: err}
	}

	err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalVehicleExpenses).Error
	if err != nil {
		return nil, &models.InternalStoreError{Err: err}
	}
	err = s.db.Model(&models.StoreExpense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalStoreExpenses).Error
	if err != nil {
		return nil, &models.InternalStoreError{Err: err}
	}
	stats.TotalExpenses = stats.TotalVehicleExpenses + stats.TotalStoreExpenses

	if stats.CurrentMonthSales, stats.CurrentMonthRevenue, err = s.MonthlySales(0); err != nil {
		return nil, err
	}
	if stats.PreviousMonthSales, stats.PreviousMonthRevenue, err = s.MonthlySales(-1); err != nil {
		return nil, err
	}
	if stats.CurrentMonthExpenses, err = s.MonthlyExpenses(0); err != nil {
		return nil, err
	}
	if stats.PreviousMonthExpenses, err = s.MonthlyExpenses(-1); err != nil {
		return nil, err
	}

	return stats, nil
}
